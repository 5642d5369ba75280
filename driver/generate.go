// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"github.com/pairgen/pairgen/constraint"
	cliUtils "github.com/pairgen/pairgen/driver/cli"
	"github.com/pairgen/pairgen/export"
	"github.com/pairgen/pairgen/gen"
	"github.com/pairgen/pairgen/param"
)

var GenerateCmd = cli.Command{
	Action:    doGenerate,
	Name:      "generate",
	Usage:     "Generate a pairwise test case table from a session config",
	ArgsUsage: "<config file>",
	Flags: []cli.Flag{
		cliUtils.AlgorithmFlag,
		cliUtils.FormatFlag,
		cliUtils.OutputFlag,
		cliUtils.VerboseFlag,
	},
}

var algorithms = map[string]gen.CaseGenerator{
	"greedy": gen.NewGreedy(),
}

func doGenerate(context *cli.Context) error {
	registry, set, err := loadSession(context.Args().Get(0), cliUtils.VerboseFlag.Fetch(context))
	if err != nil {
		return err
	}

	generator, ok := algorithms[cliUtils.AlgorithmFlag.Fetch(context)]
	if !ok {
		return fmt.Errorf("invalid algorithm, use one of: %v", maps.Keys(algorithms))
	}
	format, err := cliUtils.FormatFlag.Fetch(context)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if path := cliUtils.OutputFlag.Fetch(context); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	ctx, cancel := signal.NotifyContext(context.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	summary, err := runGenerate(ctx, generator, registry, set, format, out)
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

// runGenerate runs the generator and writes the resulting table in the
// requested format, returning the run's summary statistics.
func runGenerate(
	ctx context.Context,
	generator gen.CaseGenerator,
	registry *param.Registry,
	set *constraint.Set,
	format string,
	out io.Writer,
) (export.Summary, error) {
	result, err := generator.Generate(ctx, registry, set)
	if err != nil {
		return export.Summary{}, err
	}

	rows := export.Table(result, registry)
	switch format {
	case "csv":
		err = export.WriteCSV(out, rows)
	case "tsv":
		err = export.WriteTSV(out, rows)
	default:
		err = writePlainTable(out, rows)
	}
	if err != nil {
		return export.Summary{}, err
	}
	return export.Summarize(result, registry), nil
}

// writePlainTable renders rows as fixed-width columns for terminal use.
func writePlainTable(out io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		if _, err := fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

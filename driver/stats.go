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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	cliUtils "github.com/pairgen/pairgen/driver/cli"
	"github.com/pairgen/pairgen/export"
)

var StatsCmd = cli.Command{
	Action:    doStats,
	Name:      "stats",
	Usage:     "Print summary statistics of a generation run without the table",
	ArgsUsage: "<config file>",
	Flags: []cli.Flag{
		cliUtils.AlgorithmFlag,
		cliUtils.VerboseFlag,
	},
}

func doStats(context *cli.Context) error {
	registry, set, err := loadSession(context.Args().Get(0), cliUtils.VerboseFlag.Fetch(context))
	if err != nil {
		return err
	}

	generator, ok := algorithms[cliUtils.AlgorithmFlag.Fetch(context)]
	if !ok {
		return fmt.Errorf("invalid algorithm, use one of: %v", maps.Keys(algorithms))
	}

	ctx, cancel := signal.NotifyContext(context.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := generator.Generate(ctx, registry, set)
	if err != nil {
		return err
	}
	printSummary(export.Summarize(result, registry))
	return nil
}

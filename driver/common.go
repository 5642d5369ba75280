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
	"log/slog"
	"os"

	"github.com/dsnet/golib/unitconv"

	"github.com/pairgen/pairgen/config"
	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/export"
	"github.com/pairgen/pairgen/param"
)

// loadSession reads the session description from the given file and builds
// the registry and constraint set. In verbose mode every rejected
// configuration entry is logged individually; otherwise only the joined
// error reports them.
func loadSession(path string, verbose bool) (*param.Registry, *constraint.Set, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("missing session config file argument")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelError
	if verbose {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg.Build(logger)
}

func printSummary(summary export.Summary) {
	fmt.Printf("Test cases:            %d\n", summary.TotalCases)
	fmt.Printf("Parameters:            %d (%.1f values on average)\n",
		summary.Parameters, summary.AverageValuesPerParameter)
	fmt.Printf("Coverable pairs:       %d\n", summary.CoverablePairs)
	fmt.Printf("Uncoverable pairs:     %d\n", summary.UncoverablePairs)
	fmt.Printf("Full combinations:     %s\n",
		unitconv.FormatPrefix(float64(summary.FullCombinations), unitconv.SI, 1))
	fmt.Printf("Reduction:             %.1f%%\n", summary.ReductionPercent)
}

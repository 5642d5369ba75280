// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type algorithmFlagType struct {
	cli.StringFlag
}

var AlgorithmFlag = &algorithmFlagType{
	cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "case generation algorithm to use",
		Value:   "greedy",
	},
}

func (f *algorithmFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type formatFlagType struct {
	cli.StringFlag
}

var FormatFlag = &formatFlagType{
	cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format, one of csv, tsv, or table",
		Value:   "table",
	},
}

func (f *formatFlagType) Fetch(context *cli.Context) (string, error) {
	format := context.String(f.Name)
	switch format {
	case "csv", "tsv", "table":
		return format, nil
	}
	return "", fmt.Errorf("invalid output format %q, use one of csv, tsv, or table", format)
}

type outputFlagType struct {
	cli.StringFlag
}

var OutputFlag = &outputFlagType{
	cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Usage:     "write the resulting table to the given file instead of stdout",
		TakesFile: true,
	},
}

func (f *outputFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type verboseFlagType struct {
	cli.BoolFlag
}

var VerboseFlag = &verboseFlagType{
	cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log rejected configuration entries in detail",
	},
}

func (f *verboseFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

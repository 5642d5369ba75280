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

	"github.com/urfave/cli/v2"

	cliUtils "github.com/pairgen/pairgen/driver/cli"
	"github.com/pairgen/pairgen/gen"
)

var PairsCmd = cli.Command{
	Action:    doPairs,
	Name:      "pairs",
	Usage:     "List the value pairs of a session, flagging uncoverable ones",
	ArgsUsage: "<config file>",
	Flags: []cli.Flag{
		cliUtils.VerboseFlag,
	},
}

func doPairs(context *cli.Context) error {
	registry, set, err := loadSession(context.Args().Get(0), cliUtils.VerboseFlag.Fetch(context))
	if err != nil {
		return err
	}

	universe := gen.BuildUniverse(registry, set)
	for _, pair := range universe.Coverable {
		fmt.Printf("%v\n", pair)
	}
	for _, pair := range universe.Uncoverable {
		fmt.Printf("%v - uncoverable\n", pair)
	}
	fmt.Printf("%d pairs, %d of them uncoverable\n",
		len(universe.Coverable)+len(universe.Uncoverable), len(universe.Uncoverable))
	return nil
}

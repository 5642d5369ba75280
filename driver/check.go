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
)

var CheckCmd = cli.Command{
	Action:    doCheck,
	Name:      "check",
	Usage:     "Validate a session config, reporting every invalid entry",
	ArgsUsage: "<config file>",
}

func doCheck(context *cli.Context) error {
	// Always verbose; reporting problems is the point of this command.
	registry, set, err := loadSession(context.Args().Get(0), true)
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d parameters, %d constraints\n", registry.Size(), set.Size())
	return nil
}

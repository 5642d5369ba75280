// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package export renders generation results into tabular formats and
// computes the summary statistics reported alongside them.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pairgen/pairgen/gen"
	"github.com/pairgen/pairgen/param"
)

// Table renders the generated cases as rows of strings: a header with a
// leading case-number column followed by the parameter names in registry
// order, then one row per test case. The empty sentinel renders as an
// empty cell.
func Table(result gen.Result, registry *param.Registry) [][]string {
	names := registry.Names()

	header := make([]string, 0, len(names)+1)
	header = append(header, "Test Case #")
	header = append(header, names...)

	rows := make([][]string, 0, len(result.Cases)+1)
	rows = append(rows, header)
	for i, testCase := range result.Cases {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, name := range names {
			row = append(row, testCase[name])
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the given table in RFC 4180 CSV form.
func WriteCSV(writer io.Writer, rows [][]string) error {
	return write(csv.NewWriter(writer), rows)
}

// WriteTSV writes the given table with tab-separated columns.
func WriteTSV(writer io.Writer, rows [][]string) error {
	out := csv.NewWriter(writer)
	out.Comma = '\t'
	return write(out, rows)
}

func write(out *csv.Writer, rows [][]string) error {
	if err := out.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package export

import (
	"github.com/pairgen/pairgen/gen"
	"github.com/pairgen/pairgen/param"
)

// Summary are the headline figures of a generation run, computed from the
// result after the fact.
type Summary struct {
	TotalCases                int
	Parameters                int
	CoverablePairs            int
	UncoverablePairs          int
	FullCombinations          uint64
	ReductionPercent          float64
	AverageValuesPerParameter float64
}

// Summarize computes the summary statistics for a generation result. The
// reduction percentage relates the emitted case count to the full
// combinatorial product of the registry.
func Summarize(result gen.Result, registry *param.Registry) Summary {
	res := Summary{
		TotalCases:       len(result.Cases),
		Parameters:       registry.Size(),
		CoverablePairs:   len(result.Universe.Coverable),
		UncoverablePairs: len(result.Universe.Uncoverable),
		FullCombinations: registry.Combinations(),
	}

	if res.FullCombinations > 0 {
		res.ReductionPercent = (1 - float64(res.TotalCases)/float64(res.FullCombinations)) * 100
	}

	totalValues := 0
	for _, p := range registry.Parameters() {
		totalValues += len(p.Values)
	}
	if res.Parameters > 0 {
		res.AverageValuesPerParameter = float64(totalValues) / float64(res.Parameters)
	}
	return res
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"fmt"

	"github.com/pairgen/pairgen/common"
)

// Selection is one parameter set to one of its declared values.
type Selection struct {
	Parameter string
	Value     string
}

func (s Selection) String() string {
	return fmt.Sprintf("%s=%s", s.Parameter, s.Value)
}

// Pair is the atomic unit of coverage: two selections on two different
// parameters. Pairs are normalized to registry order, First's parameter
// preceding Second's, so that each unordered pair has a single
// representation usable as a map key.
type Pair struct {
	First  Selection
	Second Selection
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// Pairs lists all coverage pairs realized by the given assignment, with
// parameters taken in the given registry order. Parameters that are
// undecided or set to the empty sentinel realize no pairs.
func Pairs(a common.Assignment, order []string) []Pair {
	selected := make([]Selection, 0, len(order))
	for _, name := range order {
		value, decided := a[name]
		if !decided || value == common.EmptyValue {
			continue
		}
		selected = append(selected, Selection{Parameter: name, Value: value})
	}

	res := make([]Pair, 0, len(selected)*(len(selected)-1)/2)
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			res = append(res, Pair{First: selected[i], Second: selected[j]})
		}
	}
	return res
}

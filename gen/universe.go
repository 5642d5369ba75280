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
	"errors"

	"github.com/pairgen/pairgen/common"
	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/param"
)

// Universe is the set of all parameter-value pairs derived from a
// registry, split into those generation has to cover and those no valid
// assignment can realize. Both lists are ordered by registry and value
// declaration order.
type Universe struct {
	Coverable   []Pair
	Uncoverable []Pair
}

// BuildUniverse enumerates every pair of values of two different
// parameters and classifies it by constraint propagation: a pair whose two
// fixed values, together with the values they force, contradict the
// constraint set can never appear in a valid test case and is recorded as
// uncoverable. The check is local propagation only; it applies directly
// forced values but does not search over alternatives.
func BuildUniverse(registry *param.Registry, set *constraint.Set) Universe {
	params := registry.Parameters()

	var res Universe
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			for _, v1 := range params[i].Values {
				for _, v2 := range params[j].Values {
					pair := Pair{
						First:  Selection{Parameter: params[i].Name, Value: v1},
						Second: Selection{Parameter: params[j].Name, Value: v2},
					}
					_, err := set.Propagate(common.Assignment{
						params[i].Name: v1,
						params[j].Name: v2,
					})
					switch {
					case err == nil:
						res.Coverable = append(res.Coverable, pair)
					case errors.Is(err, constraint.ErrUnsatisfiable):
						res.Uncoverable = append(res.Uncoverable, pair)
					}
				}
			}
		}
	}
	return res
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package constraint

import "github.com/pairgen/pairgen/common"

const (
	// ErrUnknownParameter is returned when a constraint references a
	// parameter that is not present in the registry.
	ErrUnknownParameter = common.ConstErr("unknown parameter")

	// ErrUnknownValue is returned when a condition compares against a value
	// that is not declared for its parameter.
	ErrUnknownValue = common.ConstErr("unknown value")

	// ErrUnsatisfiable is returned by constraint propagation when the forced
	// consequences of an assignment contradict each other.
	ErrUnsatisfiable = common.ConstErr("unsatisfiable constraints")
)

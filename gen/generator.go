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

//go:generate mockgen -source generator.go -destination generator_mock.go -package gen

import (
	"context"

	"github.com/pairgen/pairgen/common"
	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/param"
)

// Result is the outcome of a generation run: the ordered test cases plus
// the pair universe they were generated against. Summary figures like
// reduction rates are derived from these by the caller, not in here.
type Result struct {
	// Cases are complete assignments, one entry per registered parameter,
	// in generation order.
	Cases []common.Assignment

	// Universe is the classification of all pairs for this run; its
	// uncoverable list is reported to the user for diagnostics.
	Universe Universe
}

// CaseGenerator produces a sequence of test cases covering all coverable
// value pairs of the given registry under the given constraint set.
//
// Implementations are deterministic: the same registry and constraint set
// yield the same ordered case sequence. The context is checked between
// test cases only; cancelling it fails the run with ErrCancelled.
type CaseGenerator interface {
	Generate(ctx context.Context, registry *param.Registry, set *constraint.Set) (Result, error)
}

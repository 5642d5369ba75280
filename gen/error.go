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

import "github.com/pairgen/pairgen/common"

const (
	// ErrInternalViolation is returned when a completed test case fails the
	// final constraint check. It marks a defect in the generation logic, not
	// a problem with the user's input.
	ErrInternalViolation = common.ConstErr("generated test case violates constraints")

	// ErrStalled is returned when generation can no longer make coverage
	// progress. This indicates a contradiction in the constraint set that
	// was not caught by pair pruning.
	ErrStalled = common.ConstErr("generation stalled without coverage progress")

	// ErrCancelled is returned when the caller's context is cancelled
	// between two test cases. It is a cooperative stop, not a fault.
	ErrCancelled = common.ConstErr("generation cancelled")
)

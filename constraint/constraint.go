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

import (
	"fmt"

	"github.com/pairgen/pairgen/common"
)

// Comparison is the operator of a constraint condition.
type Comparison int

const (
	Equals Comparison = iota
	NotEquals
)

func (c Comparison) String() string {
	switch c {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// Requirement is the demand a constraint action places on its target
// parameter.
type Requirement int

const (
	MustBeEmpty Requirement = iota
	MustNotBeEmpty
)

func (r Requirement) String() string {
	switch r {
	case MustBeEmpty:
		return "must be empty"
	case MustNotBeEmpty:
		return "must not be empty"
	}
	return fmt.Sprintf("Requirement(%d)", int(r))
}

// Condition compares one parameter against a literal value.
type Condition struct {
	Parameter  string
	Comparison Comparison
	Value      string
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s '%s'", c.Parameter, c.Comparison, c.Value)
}

// Action demands that a target parameter is, or is not, left empty.
type Action struct {
	Parameter   string
	Requirement Requirement
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s", a.Parameter, a.Requirement)
}

// Constraint is a single implication rule: whenever the condition holds on
// an assignment, the action's requirement has to hold as well. Constraints
// are stored in structured form; the textual grammar is only used at parse
// time.
type Constraint struct {
	Condition   Condition
	Action      Action
	Description string
}

func (c Constraint) String() string {
	return fmt.Sprintf("IF %s THEN %s", c.Condition, c.Action)
}

// ConditionMet evaluates the constraint's condition on the given
// assignment. The second result reports whether the condition could be
// decided at all; a condition on a still-undecided parameter is not
// determinable and thus never considered met.
func (c Constraint) ConditionMet(a common.Assignment) (met bool, determinable bool) {
	value, decided := a[c.Condition.Parameter]
	if !decided {
		return false, false
	}
	switch c.Condition.Comparison {
	case Equals:
		return value == c.Condition.Value, true
	case NotEquals:
		return value != c.Condition.Value, true
	}
	return false, false
}

// ActionHolds evaluates the constraint's action requirement on the given
// assignment. A requirement on a still-undecided parameter does not hold.
func (c Constraint) ActionHolds(a common.Assignment) bool {
	value, decided := a[c.Action.Parameter]
	if !decided {
		return false
	}
	switch c.Action.Requirement {
	case MustBeEmpty:
		return value == common.EmptyValue
	case MustNotBeEmpty:
		return value != common.EmptyValue
	}
	return false
}

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
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pairgen/pairgen/common"
	"github.com/pairgen/pairgen/param"
)

// propagationCacheSize bounds the number of memoized propagation results.
// Generation runs over the same constraint set re-propagate identical
// partial assignments many times; see Set.Propagate.
const propagationCacheSize = 1 << 12

// Item is one raw constraint in the configuration interchange format.
type Item struct {
	Text        string
	Description string
}

// Set holds the accepted constraints of a session, validated against a
// parameter registry. The zero value is not usable; create instances with
// NewSet. A Set is not safe for concurrent modification.
type Set struct {
	registry    *param.Registry
	constraints []Constraint
	propagation *lru.Cache[string, propagationResult]

	// Registry revision the memoized propagation results were computed
	// against; a mismatch invalidates them all.
	revision uint64
}

// NewSet creates an empty constraint set bound to the given registry.
func NewSet(registry *param.Registry) *Set {
	cache, err := lru.New[string, propagationResult](propagationCacheSize)
	if err != nil {
		panic(fmt.Sprintf("invalid propagation cache size: %v", err))
	}
	return &Set{registry: registry, propagation: cache, revision: registry.Revision()}
}

// Add parses the given constraint text and, if it is well-formed and only
// references registered parameters and declared values, stores it. The
// returned error wraps ErrParse, ErrUnknownParameter, or ErrUnknownValue.
// A constraint may reference the same parameter in condition and action;
// a degenerate one merely renders the condition's value uncoverable.
func (s *Set) Add(text string, description string) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	if !s.registry.Has(parsed.Condition.Parameter) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, parsed.Condition.Parameter)
	}
	if !s.registry.Has(parsed.Action.Parameter) {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, parsed.Action.Parameter)
	}
	if !s.registry.HasValue(parsed.Condition.Parameter, parsed.Condition.Value) {
		return fmt.Errorf("%w: parameter %q has no value %q",
			ErrUnknownValue, parsed.Condition.Parameter, parsed.Condition.Value)
	}
	parsed.Description = description
	s.constraints = append(s.constraints, parsed)
	s.propagation.Purge()
	return nil
}

// AddAll adds a batch of raw constraints. Unlike Add, it does not stop at
// the first failure; every invalid item is reported, identified by its
// text, in a single joined error. Valid items are added even when others
// in the batch fail.
func (s *Set) AddAll(items []Item) error {
	var errs []error
	for _, item := range items {
		if err := s.Add(item.Text, item.Description); err != nil {
			errs = append(errs, fmt.Errorf("constraint %q: %w", item.Text, err))
		}
	}
	return errors.Join(errs...)
}

// Remove deletes the constraint at the given position, reporting whether
// the position was valid.
func (s *Set) Remove(position int) bool {
	if position < 0 || position >= len(s.constraints) {
		return false
	}
	s.constraints = append(s.constraints[:position], s.constraints[position+1:]...)
	s.propagation.Purge()
	return true
}

// Constraints lists all accepted constraints in insertion order.
func (s *Set) Constraints() []Constraint {
	return append([]Constraint(nil), s.constraints...)
}

// Size returns the number of accepted constraints.
func (s *Set) Size() int {
	return len(s.constraints)
}

// Registry exposes the parameter registry this set validates against.
func (s *Set) Registry() *param.Registry {
	return s.registry
}

// ActionTarget reports whether the named parameter is the target of any
// constraint's action. Only such parameters may take the empty sentinel
// in a test case.
func (s *Set) ActionTarget(name string) bool {
	for _, c := range s.constraints {
		if c.Action.Parameter == name {
			return true
		}
	}
	return false
}

// Satisfied reports whether the given assignment satisfies every
// constraint: for each constraint whose condition is met, the action's
// requirement holds. Constraints whose condition is not determinable on
// the assignment are treated as not met.
func (s *Set) Satisfied(a common.Assignment) bool {
	return len(s.Violations(a)) == 0
}

// Violations lists the constraints the given assignment violates, in
// insertion order.
func (s *Set) Violations(a common.Assignment) []Constraint {
	var res []Constraint
	for _, c := range s.constraints {
		met, determinable := c.ConditionMet(a)
		if !determinable || !met {
			continue
		}
		if !c.ActionHolds(a) {
			res = append(res, c)
		}
	}
	return res
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use
// of this software will be governed by the GNU Lesser General Public Licence v3
//

package constraint

import (
	"fmt"

	"github.com/pairgen/pairgen/common"
)

type propagationResult struct {
	forced common.Assignment
	err    error
}

// Propagate extends a partial assignment by all values forced by the
// constraint set and returns the extended copy. A constraint whose
// condition is met on the (growing) assignment fixes its action's target:
// to the empty sentinel for a must-be-empty requirement, or to the first
// declared value of the target parameter for a must-not-be-empty
// requirement. Forcing a value can meet further conditions; propagation
// runs to a fixpoint.
//
// If a forced value contradicts an already decided one, Propagate returns
// an error wrapping ErrUnsatisfiable. This is local propagation only;
// there is no backtracking over the choice of forced non-empty values.
//
// Results are memoized per assignment signature; the memo is invalidated
// whenever the set or the underlying registry changes.
func (s *Set) Propagate(a common.Assignment) (common.Assignment, error) {
	if rev := s.registry.Revision(); rev != s.revision {
		s.propagation.Purge()
		s.revision = rev
	}

	key := a.Signature()
	if cached, ok := s.propagation.Get(key); ok {
		if cached.err != nil {
			return nil, cached.err
		}
		return cached.forced.Clone(), nil
	}

	forced, err := s.propagate(a)
	if err != nil {
		s.propagation.Add(key, propagationResult{err: err})
		return nil, err
	}
	s.propagation.Add(key, propagationResult{forced: forced.Clone()})
	return forced, nil
}

func (s *Set) propagate(a common.Assignment) (common.Assignment, error) {
	res := a.Clone()
	for changed := true; changed; {
		changed = false
		for _, c := range s.constraints {
			met, determinable := c.ConditionMet(res)
			if !determinable || !met {
				continue
			}
			target := c.Action.Parameter
			value, decided := res[target]
			switch c.Action.Requirement {
			case MustBeEmpty:
				if !decided {
					res[target] = common.EmptyValue
					changed = true
				} else if value != common.EmptyValue {
					return nil, fmt.Errorf("%w: %s forces %s to be empty, but it is %q",
						ErrUnsatisfiable, c, target, value)
				}
			case MustNotBeEmpty:
				if !decided {
					p, ok := s.registry.Get(target)
					if !ok {
						// The registry validated the constraint on Add; the
						// target can only be missing after a later Remove.
						return nil, fmt.Errorf("%w: %s targets removed parameter %q",
							ErrUnsatisfiable, c, target)
					}
					res[target] = p.Values[0]
					changed = true
				} else if value == common.EmptyValue {
					return nil, fmt.Errorf("%w: %s forces %s to take a value, but it is empty",
						ErrUnsatisfiable, c, target)
				}
			}
		}
	}
	return res, nil
}

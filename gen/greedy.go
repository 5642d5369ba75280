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
	"context"
	"fmt"

	"github.com/pairgen/pairgen/common"
	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/param"
)

// extraCaseBudget is the slack on top of the theoretical case maximum (one
// case per coverable pair) before a run is aborted as stalled.
const extraCaseBudget = 8

// Greedy emits test cases in rounds: every round searches the complete
// constraint-satisfying assignments, parameters in registry order and
// values in declared order, and emits the first one that realizes the
// most still-uncovered pairs. Candidates are enumerated lazily; a partial
// assignment whose constraint consequences conflict cuts its whole
// subtree, and a round ends as soon as some candidate realizes the
// maximum number of pairs a single case can hold.
//
// The construction is fully deterministic.
type Greedy struct{}

// NewGreedy creates a greedy pairwise case generator.
func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Generate(ctx context.Context, registry *param.Registry, set *constraint.Set) (Result, error) {
	universe := BuildUniverse(registry, set)
	covered := newLedger(universe.Coverable)
	order := registry.Names()
	params := registry.Parameters()
	res := Result{Universe: universe}

	if covered.remaining() == 0 {
		// Nothing to cover. A non-empty registry still yields a single
		// smoke case, so that even a one-parameter session produces a
		// usable test.
		if registry.Size() == 0 {
			return res, nil
		}
		only := newCaseSearch(set, params, covered, order, 0).run()
		if only == nil {
			return Result{}, fmt.Errorf("%w: no complete assignment satisfies the constraint set", ErrStalled)
		}
		res.Cases = append(res.Cases, only)
		return res, nil
	}

	maxGain := len(params) * (len(params) - 1) / 2
	maxCases := covered.remaining() + extraCaseBudget
	for covered.remaining() > 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		if len(res.Cases) >= maxCases {
			return Result{}, fmt.Errorf("%w: case budget of %d exhausted with %d pairs left",
				ErrStalled, maxCases, covered.remaining())
		}

		testCase := newCaseSearch(set, params, covered, order, maxGain).run()
		if testCase == nil {
			return Result{}, fmt.Errorf("%w: %d pairs left that no complete assignment realizes",
				ErrStalled, covered.remaining())
		}
		if !set.Satisfied(testCase) {
			return Result{}, fmt.Errorf("%w: %v", ErrInternalViolation, testCase)
		}

		// A case incidentally covers more pairs than the one it was
		// selected for; all of them count.
		covered.markCovered(Pairs(testCase, order))
		res.Cases = append(res.Cases, testCase)
	}
	return res, nil
}

// caseSearch is one round's scan for the complete assignment realizing
// the most uncovered pairs. Under the first-maximum tie rule the scan can
// stop as soon as some candidate reaches targetGain, the most a single
// case can realize; with targetGain zero the first complete assignment
// wins, which serves the smoke case of a registry without coverable
// pairs.
type caseSearch struct {
	set        *constraint.Set
	params     []param.Parameter
	covered    *ledger
	order      []string
	candidates [][]string
	targetGain int
	best       common.Assignment
	bestGain   int
}

func newCaseSearch(set *constraint.Set, params []param.Parameter, covered *ledger, order []string, targetGain int) *caseSearch {
	candidates := make([][]string, len(params))
	for i, p := range params {
		candidates[i] = p.Values
		// The empty sentinel is a choice only for parameters some
		// constraint may force to be empty, and always the last resort.
		if set.ActionTarget(p.Name) {
			candidates[i] = append(append([]string(nil), p.Values...), common.EmptyValue)
		}
	}
	return &caseSearch{
		set:        set,
		params:     params,
		covered:    covered,
		order:      order,
		candidates: candidates,
		targetGain: targetGain,
		bestGain:   -1,
	}
}

func (s *caseSearch) run() common.Assignment {
	s.descend(common.Assignment{}, 0)
	if s.bestGain < s.initialFloor() {
		return nil
	}
	return s.best
}

// initialFloor is the least gain a candidate must realize to be kept: a
// regular round must make progress, the smoke search merely needs any
// complete assignment.
func (s *caseSearch) initialFloor() int {
	if s.targetGain == 0 {
		return 0
	}
	return 1
}

// descend extends the partial assignment by the parameter at the given
// depth, one candidate value at a time, and recurses. Values whose
// propagated consequences conflict are skipped along with their entire
// subtree. Reports whether the search is finished early because
// targetGain was reached.
func (s *caseSearch) descend(partial common.Assignment, depth int) bool {
	if depth == len(s.params) {
		gain := 0
		for _, pair := range Pairs(partial, s.order) {
			if s.covered.isUncovered(pair) {
				gain++
			}
		}
		if gain > s.bestGain {
			s.bestGain, s.best = gain, partial.Clone()
		}
		return s.bestGain >= s.targetGain
	}

	name := s.params[depth].Name
	for _, value := range s.candidates[depth] {
		partial[name] = value
		if _, err := s.set.Propagate(partial); err == nil {
			if s.descend(partial, depth+1) {
				delete(partial, name)
				return true
			}
		}
		delete(partial, name)
	}
	return false
}

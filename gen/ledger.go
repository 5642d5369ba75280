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

// ledger tracks which coverable pairs have been realized by emitted test
// cases. Each generation run owns a fresh ledger; it never outlives the
// run that created it.
type ledger struct {
	uncovered map[Pair]struct{}
}

func newLedger(coverable []Pair) *ledger {
	uncovered := make(map[Pair]struct{}, len(coverable))
	for _, pair := range coverable {
		uncovered[pair] = struct{}{}
	}
	return &ledger{uncovered: uncovered}
}

func (l *ledger) isUncovered(pair Pair) bool {
	_, ok := l.uncovered[pair]
	return ok
}

// markCovered records all given pairs as covered, returning how many of
// them were not covered before. Pairs outside the coverable universe are
// ignored.
func (l *ledger) markCovered(pairs []Pair) int {
	newly := 0
	for _, pair := range pairs {
		if _, ok := l.uncovered[pair]; ok {
			delete(l.uncovered, pair)
			newly++
		}
	}
	return newly
}

func (l *ledger) remaining() int {
	return len(l.uncovered)
}

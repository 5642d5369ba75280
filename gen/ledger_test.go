package gen

import "testing"

func testPairs() []Pair {
	return []Pair{
		{Selection{"A", "1"}, Selection{"B", "x"}},
		{Selection{"A", "1"}, Selection{"B", "y"}},
		{Selection{"A", "2"}, Selection{"B", "x"}},
	}
}

func TestLedger_StartsWithAllPairsUncovered(t *testing.T) {
	pairs := testPairs()
	covered := newLedger(pairs)
	if want, got := len(pairs), covered.remaining(); want != got {
		t.Errorf("unexpected number of uncovered pairs, wanted %d, got %d", want, got)
	}
	for _, pair := range pairs {
		if !covered.isUncovered(pair) {
			t.Errorf("pair %v should start out uncovered", pair)
		}
	}
}

func TestLedger_MarkCoveredCountsOnlyNewPairs(t *testing.T) {
	pairs := testPairs()
	covered := newLedger(pairs)

	if want, got := 2, covered.markCovered(pairs[:2]); want != got {
		t.Errorf("unexpected number of newly covered pairs, wanted %d, got %d", want, got)
	}
	if want, got := 1, covered.markCovered(pairs); want != got {
		t.Errorf("unexpected number of newly covered pairs, wanted %d, got %d", want, got)
	}
	if want, got := 0, covered.remaining(); want != got {
		t.Errorf("unexpected number of uncovered pairs, wanted %d, got %d", want, got)
	}
}

func TestLedger_IgnoresPairsOutsideTheUniverse(t *testing.T) {
	covered := newLedger(testPairs())
	outside := Pair{Selection{"C", "z"}, Selection{"D", "w"}}

	if want, got := 0, covered.markCovered([]Pair{outside}); want != got {
		t.Errorf("unexpected number of newly covered pairs, wanted %d, got %d", want, got)
	}
	if want, got := 3, covered.remaining(); want != got {
		t.Errorf("unexpected number of uncovered pairs, wanted %d, got %d", want, got)
	}
}

package gen

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/pairgen/pairgen/common"
	"github.com/pairgen/pairgen/constraint"
	"github.com/pairgen/pairgen/param"
	"pgregory.net/rand"
)

// checkResult verifies the structural soundness of a generation result:
// every case is complete and constraint-satisfying, and every coverable
// pair of the universe is realized by at least one case.
func checkResult(t *testing.T, registry *param.Registry, set *constraint.Set, res Result) {
	t.Helper()
	order := registry.Names()

	realized := map[Pair]struct{}{}
	for _, testCase := range res.Cases {
		if want, got := registry.Size(), len(testCase); want != got {
			t.Errorf("incomplete test case %v, wanted %d parameters, got %d", testCase, want, got)
		}
		for _, p := range registry.Parameters() {
			value, decided := testCase[p.Name]
			if !decided {
				t.Errorf("test case %v does not decide parameter %q", testCase, p.Name)
				continue
			}
			if value != common.EmptyValue && !registry.HasValue(p.Name, value) {
				t.Errorf("test case %v uses undeclared value %q for %q", testCase, value, p.Name)
			}
		}
		if !set.Satisfied(testCase) {
			t.Errorf("test case %v violates constraints %v", testCase, set.Violations(testCase))
		}
		for _, pair := range Pairs(testCase, order) {
			realized[pair] = struct{}{}
		}
	}

	for _, pair := range res.Universe.Coverable {
		if _, ok := realized[pair]; !ok {
			t.Errorf("coverable pair %v is not realized by any test case", pair)
		}
	}

	if cases, limit := uint64(len(res.Cases)), registry.Combinations(); cases > limit {
		t.Errorf("more test cases than full combinations, %d > %d", cases, limit)
	}
}

func TestGreedy_CoversAllPairsOfAnUnconstrainedRegistry(t *testing.T) {
	registry := param.NewRegistry()
	for _, name := range []string{"A", "B", "C"} {
		values := []string{name + "1", name + "2", name + "3"}
		if err := registry.Add(name, values); err != nil {
			t.Fatalf("failed to set up registry: %v", err)
		}
	}
	set := constraint.NewSet(registry)

	res, err := NewGreedy().Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	checkResult(t, registry, set, res)

	// 27 pairs over three 3-value parameters. Nine cases could cover
	// them in theory; the first-maximum scan settles at ten.
	if want, got := 10, len(res.Cases); want != got {
		t.Errorf("unexpected number of test cases, wanted %d, got %d", want, got)
	}
}

func TestGreedy_FourParameterRegistryPacksToTheMinimum(t *testing.T) {
	registry := synthRegistry(t)
	set := constraint.NewSet(registry)

	res, err := NewGreedy().Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	checkResult(t, registry, set, res)

	// Every DAW/BufferSize combination needs its own case, so twelve is
	// the minimum; the construction reaches it.
	if want, got := 12, len(res.Cases); want != got {
		t.Errorf("unexpected number of test cases, wanted %d, got %d", want, got)
	}
}

func TestGreedy_GeneratedCasesHonorConstraints(t *testing.T) {
	registry := synthRegistry(t)
	set := synthConstraints(t, registry)

	res, err := NewGreedy().Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	checkResult(t, registry, set, res)

	if want, got := 3, len(res.Universe.Uncoverable); want != got {
		t.Errorf("unexpected number of uncoverable pairs, wanted %d, got %d", want, got)
	}
	// Each of the twelve DAW/BufferSize combinations needs its own hosted
	// case and each of the four stand-alone BufferSize pairs its own
	// DAW-less one, so sixteen is the minimum; the construction reaches it.
	if want, got := 16, len(res.Cases); want != got {
		t.Errorf("unexpected number of test cases, wanted %d, got %d", want, got)
	}
	for _, testCase := range res.Cases {
		if testCase["Format"] == "Desktop Stand Alone" && testCase["DAW"] != common.EmptyValue {
			t.Errorf("stand-alone case %v must leave the DAW empty", testCase)
		}
		if testCase["Format"] != "Desktop Stand Alone" && testCase["DAW"] == common.EmptyValue {
			t.Errorf("hosted case %v must name a DAW", testCase)
		}
	}
}

func TestGreedy_IsDeterministic(t *testing.T) {
	registry := synthRegistry(t)
	set := synthConstraints(t, registry)
	generator := NewGreedy()

	first, err := generator.Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	second, err := generator.Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if !reflect.DeepEqual(first.Cases, second.Cases) {
		t.Errorf("repeated runs differ:\n%v\nvs\n%v", first.Cases, second.Cases)
	}
}

func TestGreedy_SingleParameterYieldsOneSmokeCase(t *testing.T) {
	registry := param.NewRegistry()
	if err := registry.Add("Format", []string{"VST3", "AUv3"}); err != nil {
		t.Fatalf("failed to set up registry: %v", err)
	}

	res, err := NewGreedy().Generate(context.Background(), registry, constraint.NewSet(registry))
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	want := []common.Assignment{{"Format": "VST3"}}
	if !reflect.DeepEqual(want, res.Cases) {
		t.Errorf("unexpected cases, wanted %v, got %v", want, res.Cases)
	}
}

func TestGreedy_EmptyRegistryYieldsNoCases(t *testing.T) {
	registry := param.NewRegistry()
	res, err := NewGreedy().Generate(context.Background(), registry, constraint.NewSet(registry))
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if len(res.Cases) != 0 {
		t.Errorf("expected no cases, got %v", res.Cases)
	}
}

func TestGreedy_CancellationAbortsGeneration(t *testing.T) {
	registry := synthRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGreedy().Generate(ctx, registry, constraint.NewSet(registry))
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected %v, got %v", ErrCancelled, err)
	}
}

func TestGreedy_StallsOnHiddenContradiction(t *testing.T) {
	// B can never take a value since A is fixed, yet the B/C pairs pass
	// the local pairwise pruning. Generation must give up instead of
	// emitting invalid cases or looping.
	registry := param.NewRegistry()
	add := func(name string, values ...string) {
		if err := registry.Add(name, values); err != nil {
			t.Fatalf("failed to set up registry: %v", err)
		}
	}
	add("A", "x")
	add("B", "1", "2")
	add("C", "c1", "c2")
	set := constraint.NewSet(registry)
	if err := set.Add("IF A = 'x' THEN B must be empty", ""); err != nil {
		t.Fatalf("failed to set up constraints: %v", err)
	}

	_, err := NewGreedy().Generate(context.Background(), registry, set)
	if !errors.Is(err, ErrStalled) {
		t.Errorf("expected %v, got %v", ErrStalled, err)
	}
}

func TestGreedy_UnsatisfiableConstraintSetStalls(t *testing.T) {
	// With single-value domains the contradicting constraints leave no
	// satisfying assignment at all. That is broken user input, not a
	// defect of the construction, and must surface as a stall.
	registry := param.NewRegistry()
	if err := registry.Add("A", []string{"x"}); err != nil {
		t.Fatalf("failed to set up registry: %v", err)
	}
	if err := registry.Add("B", []string{"1"}); err != nil {
		t.Fatalf("failed to set up registry: %v", err)
	}
	set := constraint.NewSet(registry)
	for _, text := range []string{
		"IF A = 'x' THEN B must be empty",
		"IF A = 'x' THEN B must not be empty",
	} {
		if err := set.Add(text, ""); err != nil {
			t.Fatalf("failed to set up constraints: %v", err)
		}
	}

	_, err := NewGreedy().Generate(context.Background(), registry, set)
	if !errors.Is(err, ErrStalled) {
		t.Errorf("expected %v, got %v", ErrStalled, err)
	}
	if errors.Is(err, ErrInternalViolation) {
		t.Errorf("contradictory input must not be reported as an internal violation, got %v", err)
	}
}

func TestGreedy_ContradictingConstraintsArePrunedNotStalled(t *testing.T) {
	// Overlapping constraints that demand B to be both empty and non-empty
	// make every A=x pair uncoverable; generation has to succeed on the
	// remaining universe instead of stalling.
	registry := param.NewRegistry()
	if err := registry.Add("A", []string{"x", "y"}); err != nil {
		t.Fatalf("failed to set up registry: %v", err)
	}
	if err := registry.Add("B", []string{"1", "2"}); err != nil {
		t.Fatalf("failed to set up registry: %v", err)
	}
	set := constraint.NewSet(registry)
	for _, text := range []string{
		"IF A = 'x' THEN B must be empty",
		"IF A = 'x' THEN B must not be empty",
	} {
		if err := set.Add(text, ""); err != nil {
			t.Fatalf("failed to set up constraints: %v", err)
		}
	}

	res, err := NewGreedy().Generate(context.Background(), registry, set)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	checkResult(t, registry, set, res)
	if want, got := 2, len(res.Universe.Uncoverable); want != got {
		t.Errorf("unexpected number of uncoverable pairs, wanted %d, got %d", want, got)
	}
}

func TestGreedy_CoversRandomRegistries(t *testing.T) {
	rnd := rand.New(0)
	for run := 0; run < 25; run++ {
		registry := param.NewRegistry()
		numParams := 2 + rnd.Intn(4)
		for p := 0; p < numParams; p++ {
			values := make([]string, 1+rnd.Intn(4))
			for v := range values {
				values[v] = fmt.Sprintf("v%d", v)
			}
			if err := registry.Add(fmt.Sprintf("p%d", p), values); err != nil {
				t.Fatalf("failed to set up registry: %v", err)
			}
		}
		set := constraint.NewSet(registry)

		res, err := NewGreedy().Generate(context.Background(), registry, set)
		if err != nil {
			t.Fatalf("generation failed for %v: %v", registry.Names(), err)
		}
		checkResult(t, registry, set, res)
	}
}

package ll1_test

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
	"github.com/arbortree/ll1grammar/ll1"
)

func names(syms []ll1grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.Name()
	}
	sort.Strings(out)
	return out
}

func scenarioA() *ll1.Grammar {
	fooN := ll1grammar.NewNonterminal("foo")
	barN := ll1grammar.NewNonterminal("bar")
	bazN := ll1grammar.NewNonterminal("baz")
	gusN := ll1grammar.NewNonterminal("gus")

	gusT := ll1grammar.NewTerminal("GUS")
	helloT := ll1grammar.NewTerminal("HELLO")
	barT := ll1grammar.NewTerminal("BAR")
	bazT := ll1grammar.NewTerminal("BAZ")
	loremT := ll1grammar.NewTerminal("LOREM")

	rules := []ll1.Rule{
		ll1.NewRule(fooN, expr.NewAlt(
			expr.NewNonterminal(barN),
			expr.NewNonterminal(bazN),
			expr.NewTerminal(loremT),
		)),
		ll1.NewRule(barN, expr.NewAlt(
			expr.NewSeq(expr.NewTerminal(gusT), expr.NewTerminal(helloT)),
			expr.NewTerminal(barT),
		)),
		ll1.NewRule(bazN, expr.NewAlt(expr.NewTerminal(bazT), expr.Eps)),
		ll1.NewRule(gusN, expr.Eps),
	}
	return ll1.NewGrammar(rules)
}

func TestScenarioASmokeTest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	g := scenarioA()
	if err := g.ThrowProblem(); err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}

	foo := ll1grammar.NewNonterminal("foo")
	bar := ll1grammar.NewNonterminal("bar")
	baz := ll1grammar.NewNonterminal("baz")
	gus := ll1grammar.NewNonterminal("gus")

	cases := []struct {
		n    ll1grammar.Symbol
		want []string
	}{
		{foo, []string{"BAR", "BAZ", "GUS", "LOREM"}},
		{bar, []string{"BAR", "GUS"}},
		{baz, []string{"BAZ"}},
		{gus, nil},
	}
	for _, c := range cases {
		fs, err := g.FirstSet(c.n)
		if err != nil {
			t.Fatalf("FirstSet(%s): %v", c.n, err)
		}
		if got := names(fs); !equalStrings(got, c.want) {
			t.Errorf("FirstSet(%s) = %v, want %v", c.n, got, c.want)
		}
	}

	emptyCases := []struct {
		n    ll1grammar.Symbol
		want bool
	}{
		{foo, true},
		{bar, false},
		{baz, true},
		{gus, true},
	}
	for _, c := range emptyCases {
		got, err := g.CanMatchEmpty(c.n)
		if err != nil {
			t.Fatalf("CanMatchEmpty(%s): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("CanMatchEmpty(%s) = %v, want %v", c.n, got, c.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScenarioBUndefinedSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	foo := ll1grammar.NewNonterminal("foo")
	bar := ll1grammar.NewNonterminal("bar")
	rules := []ll1.Rule{ll1.NewRule(foo, expr.NewNonterminal(bar))}
	g := ll1.NewGrammar(rules)

	err := g.ThrowProblem()
	if err == nil {
		t.Fatal("expected UndefinedSymbolsError, got nil")
	}
	ge, ok := err.(*ll1grammar.GrammarError)
	if !ok || ge.Cause != ll1grammar.CauseUndefinedSymbols {
		t.Fatalf("err = %v, want CauseUndefinedSymbols", err)
	}
	if len(ge.Undefined) != 1 || ge.Undefined[0] != bar {
		t.Errorf("Undefined = %v, want [bar]", ge.Undefined)
	}
}

func TestScenarioCDirectLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	foo := ll1grammar.NewNonterminal("foo")
	barT := ll1grammar.NewTerminal("BAR")
	bazT := ll1grammar.NewTerminal("BAZ")

	rules := []ll1.Rule{
		ll1.NewRule(foo, expr.NewAlt(
			expr.NewSeq(expr.NewNonterminal(foo), expr.NewTerminal(barT)),
			expr.NewTerminal(bazT),
		)),
	}
	g := ll1.NewGrammar(rules)

	err := g.ThrowProblem()
	if err == nil {
		t.Fatal("expected LeftRecursionError, got nil")
	}
	ge := err.(*ll1grammar.GrammarError)
	if ge.Cause != ll1grammar.CauseLeftRecursion {
		t.Fatalf("Cause = %v, want CauseLeftRecursion", ge.Cause)
	}
	if len(ge.Cycles) != 1 {
		t.Fatalf("Cycles = %v, want exactly one cycle", ge.Cycles)
	}
	if cyc := ge.Cycles[0]; len(cyc) != 2 || cyc[0].Name() != "foo" || cyc[1].Name() != "foo" {
		t.Errorf("Cycles[0] = %v, want [foo foo]", cyc)
	}
}

func TestScenarioDIndirectLeftRecursionGatedByEmptiness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	a := ll1grammar.NewNonterminal("a")
	b := ll1grammar.NewNonterminal("b")
	x := ll1grammar.NewTerminal("X")
	y := ll1grammar.NewTerminal("Y")

	rules := []ll1.Rule{
		ll1.NewRule(a, expr.NewSeq(expr.NewNonterminal(b), expr.NewTerminal(x))),
		ll1.NewRule(b, expr.NewAlt(expr.NewNonterminal(a), expr.NewTerminal(y))),
	}
	g := ll1.NewGrammar(rules)

	err := g.ThrowProblem()
	if err == nil {
		t.Fatal("expected LeftRecursionError, got nil")
	}
	ge := err.(*ll1grammar.GrammarError)
	if ge.Cause != ll1grammar.CauseLeftRecursion {
		t.Fatalf("Cause = %v, want CauseLeftRecursion", ge.Cause)
	}
	if len(ge.Cycles) != 1 {
		t.Fatalf("Cycles = %v, want exactly one cycle", ge.Cycles)
	}
	cyc := ge.Cycles[0]
	if len(cyc) != 3 || cyc[0] != cyc[2] {
		t.Errorf("cycle %v is not a closed a-b-a walk", cyc)
	}

	// Structural queries remain usable under a pending problem; analytical
	// ones refuse.
	if !g.HasRule(a) || !g.HasRule(b) {
		t.Error("HasRule should still work under a pending problem")
	}
	if _, err := g.CanMatchEmpty(a); err == nil {
		t.Error("CanMatchEmpty should refuse to operate under a pending problem")
	}
}

func TestScenarioFCursorWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	g := scenarioA()
	bar := ll1grammar.NewNonterminal("bar")
	baz := ll1grammar.NewNonterminal("baz")
	lorem := ll1grammar.NewTerminal("LOREM")

	e := expr.NewSeq(expr.NewNonterminal(bar), expr.NewNonterminal(baz), expr.NewTerminal(lorem))
	cur, err := ll1.NewState(g, e)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	step := func(wantNext []string, wantMatches bool) {
		t.Helper()
		if got := names(cur.Next()); !equalStrings(got, wantNext) {
			t.Errorf("Next() = %v, want %v", got, wantNext)
		}
		if cur.Matches() != wantMatches {
			t.Errorf("Matches() = %v, want %v", cur.Matches(), wantMatches)
		}
	}

	step([]string{"BAR", "GUS"}, false)
	if cur.End() {
		t.Error("End() true too early")
	}

	if err := cur.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	step([]string{"BAZ", "LOREM"}, false)

	if err := cur.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	step([]string{"LOREM"}, false)

	if err := cur.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	step(nil, true)
	if !cur.End() {
		t.Error("End() should be true once index walks past the Seq")
	}
}

func TestBuilderMergesAndFlattens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	foo := ll1grammar.NewNonterminal("foo")
	barT := ll1grammar.NewTerminal("BAR")
	bazT := ll1grammar.NewTerminal("BAZ")

	b := ll1.NewBuilder()
	b.Rule(foo, expr.NewTerminal(barT))
	b.Rule(foo, expr.NewAlt(expr.NewTerminal(bazT)))

	rules := b.Rules()
	if len(rules) != 1 {
		t.Fatalf("len(Rules()) = %d, want 1", len(rules))
	}
	if got, want := rules[0].Describe(), "foo := (BAR | BAZ)"; got != want {
		t.Errorf("merged rule = %q, want %q", got, want)
	}

	g := b.Build()
	if err := g.ThrowProblem(); err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}
}

// An optional non-terminal must still contribute its FIRST set once it
// resolves, even if the rule referencing it optionally was processed and
// committed to a first-set before the dependency settled: a := b? X;
// b := Y, with a inserted before b so the worklist visits a first.
func TestFirstSetThroughOptionalNonterminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	a := ll1grammar.NewNonterminal("a")
	b := ll1grammar.NewNonterminal("b")
	x := ll1grammar.NewTerminal("X")
	y := ll1grammar.NewTerminal("Y")

	rules := []ll1.Rule{
		ll1.NewRule(a, expr.NewSeq(expr.Optional(expr.NewNonterminal(b)), expr.NewTerminal(x))),
		ll1.NewRule(b, expr.NewTerminal(y)),
	}
	g := ll1.NewGrammar(rules)
	if err := g.ThrowProblem(); err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}

	fs, err := g.FirstSet(a)
	if err != nil {
		t.Fatalf("FirstSet(a): %v", err)
	}
	if got, want := names(fs), []string{"X", "Y"}; !equalStrings(got, want) {
		t.Errorf("FirstSet(a) = %v, want %v", got, want)
	}
}

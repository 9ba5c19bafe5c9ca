package ll1_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
	"github.com/arbortree/ll1grammar/ll1"
)

func TestMergeRulesConcatenatesAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	foo := ll1grammar.NewNonterminal("foo")
	bar := ll1grammar.NewTerminal("BAR")
	baz := ll1grammar.NewTerminal("BAZ")

	a := ll1.NewRule(foo, expr.NewTerminal(bar))
	b := ll1.NewRule(foo, expr.NewTerminal(baz))
	merged := ll1.MergeRules(a, b)

	if got, want := merged.Describe(), "foo := (BAR | BAZ)"; got != want {
		t.Errorf("merged.Describe() = %q, want %q", got, want)
	}
	if got := len(merged.Alternatives()); got != 2 {
		t.Errorf("len(Alternatives()) = %d, want 2", got)
	}
}

func TestMergeRulesPanicsOnMismatchedLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	defer func() {
		if recover() == nil {
			t.Error("expected panic merging rules with different LHS")
		}
	}()
	foo := ll1.NewRule(ll1grammar.NewNonterminal("foo"), expr.Eps)
	bar := ll1.NewRule(ll1grammar.NewNonterminal("bar"), expr.Eps)
	ll1.MergeRules(foo, bar)
}

func TestNewRuleRejectsTerminalLHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1grammar.ll1")
	defer teardown()

	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing a rule with a terminal LHS")
		}
	}()
	ll1.NewRule(ll1grammar.NewTerminal("NOT_A_RULE"), expr.Eps)
}

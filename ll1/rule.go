package ll1

import (
	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// Rule is a pair (lhs, rhs): lhs a non-terminal, rhs an expression. A Rule
// is an immutable value; Grammar attaches the mutable, analyzer-computed
// metadata (empty?, first-set, ...) to it.
type Rule struct {
	LHS ll1grammar.Symbol
	RHS expr.Expression
}

// NewRule builds a rule. lhs must be a non-terminal and rhs must not be
// nil; both are contract violations that fail eagerly.
func NewRule(lhs ll1grammar.Symbol, rhs expr.Expression) Rule {
	if !lhs.IsNonterminal() {
		panic("ll1: rule LHS must be a non-terminal symbol")
	}
	if rhs == nil {
		panic("ll1: rule RHS must not be nil")
	}
	return Rule{LHS: lhs, RHS: rhs}
}

// Alternatives returns rhs-alts: the list of alternatives if RHS is an
// Alt, else a single-element slice holding RHS itself.
func (r Rule) Alternatives() []expr.Expression {
	if alt, ok := r.RHS.(*expr.Alt); ok {
		return alt.Items
	}
	return []expr.Expression{r.RHS}
}

// Describe renders "lhs := rhs", the canonical printable form.
func (r Rule) Describe() string {
	return r.LHS.String() + " := " + r.RHS.Describe()
}

// String implements fmt.Stringer by way of Describe.
func (r Rule) String() string {
	return r.Describe()
}

// MergeRules combines two rules sharing an LHS into one rule whose RHS is
// the concatenation of both rules' alternatives:
// merge((L,A), (L,B)) = (L, Alt(alts(A) ++ alts(B))). Panics if the two
// rules' LHS differ.
func MergeRules(a, b Rule) Rule {
	if a.LHS != b.LHS {
		panic("ll1: cannot merge rules with different LHS")
	}
	combined := make([]expr.Expression, 0, len(a.Alternatives())+len(b.Alternatives()))
	combined = append(combined, a.Alternatives()...)
	combined = append(combined, b.Alternatives()...)
	return Rule{LHS: a.LHS, RHS: expr.Alts(combined...)}
}

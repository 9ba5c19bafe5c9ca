package ll1

import (
	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// Builder accumulates rules, auto-merging same-LHS submissions and
// flattening each RHS before it is stored.
type Builder struct {
	order []ll1grammar.Symbol
	byLHS map[ll1grammar.Symbol]int
	rules []Rule
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byLHS: make(map[ll1grammar.Symbol]int)}
}

// Rule adds lhs := rhs, flattening rhs first. If lhs already has a rule in
// this builder, the two are merged; otherwise a new rule is appended.
// Returns the builder for chaining.
func (b *Builder) Rule(lhs ll1grammar.Symbol, rhs expr.Expression) *Builder {
	flat := expr.Flatten(rhs)
	r := NewRule(lhs, flat)
	if i, ok := b.byLHS[lhs]; ok {
		b.rules[i] = MergeRules(b.rules[i], r)
		return b
	}
	b.byLHS[lhs] = len(b.rules)
	b.rules = append(b.rules, r)
	b.order = append(b.order, lhs)
	return b
}

// Rules returns the accumulated rules, in first-occurrence order.
func (b *Builder) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	copy(out, b.rules)
	return out
}

// Build runs NewGrammar over the accumulated rules.
func (b *Builder) Build() *Grammar {
	return NewGrammar(b.Rules())
}

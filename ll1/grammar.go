package ll1

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// ruleMeta is the per-rule metadata the analyzer computes and, on freeze,
// seals it once analysis completes.
type ruleMeta struct {
	rule Rule

	empty    Decision
	firstSet *linkedhashset.Set // nil until resolved; stays nil if left-recursive

	leftRecursive [][]ll1grammar.Symbol
}

// Grammar is the frozen analysis artifact produced by NewGrammar. Every
// collection it hands back is read-only; constructing a new Grammar is the
// only way to get different results.
type Grammar struct {
	order []ll1grammar.Symbol // rule LHS, first-occurrence order
	byLHS *linkedhashmap.Map  // ll1grammar.Symbol -> *ruleMeta

	symbols      *linkedhashset.Set
	terminals    *linkedhashset.Set
	nonterminals *linkedhashset.Set

	undefined     []ll1grammar.Symbol
	leftRecursive [][]ll1grammar.Symbol

	problem *ll1grammar.GrammarError
	frozen  bool
}

// NewGrammar runs the full analysis pipeline over rules (merge duplicate
// LHS, collect the symbol inventory, check for undefined non-terminals,
// solve emptiness with interleaved left-recursion detection, solve FIRST
// sets) and returns the frozen result. It never panics on grammar-level
// problems; those are captured in Problem()/ThrowProblem() instead.
func NewGrammar(rules []Rule) *Grammar {
	g := &Grammar{
		byLHS:        linkedhashmap.New(),
		symbols:      linkedhashset.New(),
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
	}
	g.mergeRules(rules)
	g.collectSymbols()
	g.checkUndefined()

	if len(g.undefined) > 0 {
		g.problem = ll1grammar.UndefinedSymbolsError(g.undefined)
		g.freeze()
		tracer().Errorf("grammar has undefined non-terminals: %v", g.undefined)
		return g
	}

	g.runEmptinessFixedPoint()
	g.runFirstSetFixedPoint()
	if len(g.leftRecursive) > 0 {
		g.problem = ll1grammar.LeftRecursionError(g.leftRecursive)
		tracer().Errorf("grammar has left-recursive cycles: %v", g.leftRecursive)
	}

	g.freeze()
	return g
}

func (g *Grammar) mergeRules(rules []Rule) {
	for _, r := range rules {
		if existing, ok := g.byLHS.Get(r.LHS); ok {
			rm := existing.(*ruleMeta)
			rm.rule = MergeRules(rm.rule, r)
			continue
		}
		rm := &ruleMeta{rule: r, empty: Indecisive}
		g.byLHS.Put(r.LHS, rm)
		g.order = append(g.order, r.LHS)
	}
}

func (g *Grammar) collectSymbols() {
	for _, lhs := range g.order {
		g.symbols.Add(lhs)
		g.nonterminals.Add(lhs)
		rm, _ := g.ruleFor(lhs)
		walkSymbols(rm.rule.RHS, func(t ll1grammar.Symbol) {
			g.symbols.Add(t)
			g.terminals.Add(t)
		}, func(n ll1grammar.Symbol) {
			g.symbols.Add(n)
			g.nonterminals.Add(n)
		})
	}
}

func (g *Grammar) checkUndefined() {
	for _, v := range g.nonterminals.Values() {
		n := v.(ll1grammar.Symbol)
		if _, ok := g.byLHS.Get(n); !ok {
			g.undefined = append(g.undefined, n)
		}
	}
}

func (g *Grammar) ruleFor(n ll1grammar.Symbol) (*ruleMeta, bool) {
	v, ok := g.byLHS.Get(n)
	if !ok {
		return nil, false
	}
	return v.(*ruleMeta), true
}

func (g *Grammar) freeze() {
	g.frozen = true
}

// --- structural queries (always usable, even under a pending problem) -----

// Problem returns the captured error, if any.
func (g *Grammar) Problem() *ll1grammar.GrammarError {
	return g.problem
}

// ThrowProblem returns the captured error as an error, or nil if analysis
// found no problem. Callers that need the diagnostic to propagate as a Go
// error do `if err := g.ThrowProblem(); err != nil { return err }`.
func (g *Grammar) ThrowProblem() error {
	if g.problem == nil {
		return nil
	}
	return g.problem
}

// Rules returns every rule, in insertion order (merges collapse into the
// first occurrence's slot).
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.order))
	for i, lhs := range g.order {
		rm, _ := g.ruleFor(lhs)
		rules[i] = rm.rule
	}
	return rules
}

// Rule returns the rule for non-terminal n, if any.
func (g *Grammar) Rule(n ll1grammar.Symbol) (Rule, bool) {
	rm, ok := g.ruleFor(n)
	if !ok {
		return Rule{}, false
	}
	return rm.rule, true
}

// HasRule reports whether n has an installed rule.
func (g *Grammar) HasRule(n ll1grammar.Symbol) bool {
	_, ok := g.ruleFor(n)
	return ok
}

// String renders every rule's Describe() form, one per line, in rule
// insertion order.
func (g *Grammar) String() string {
	var b strings.Builder
	for i, lhs := range g.order {
		rm, _ := g.ruleFor(lhs)
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rm.rule.Describe())
	}
	return b.String()
}

// Dump is a debugging helper that traces every rule's Describe() form at
// debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar (%d rules) -----------", len(g.order))
	for _, lhs := range g.order {
		rm, _ := g.ruleFor(lhs)
		tracer().Debugf("%s", rm.rule.Describe())
	}
	tracer().Debugf("-------------------------")
}

func symbolSlice(set *linkedhashset.Set) []ll1grammar.Symbol {
	values := set.Values()
	out := make([]ll1grammar.Symbol, len(values))
	for i, v := range values {
		out[i] = v.(ll1grammar.Symbol)
	}
	return out
}

// Symbols returns every symbol occurring anywhere in the grammar.
func (g *Grammar) Symbols() []ll1grammar.Symbol { return symbolSlice(g.symbols) }

// Terminals returns every terminal symbol occurring anywhere in the grammar.
func (g *Grammar) Terminals() []ll1grammar.Symbol { return symbolSlice(g.terminals) }

// Nonterminals returns every non-terminal symbol occurring anywhere in the
// grammar (including those only ever used as an LHS).
func (g *Grammar) Nonterminals() []ll1grammar.Symbol { return symbolSlice(g.nonterminals) }

// Has reports whether s occurs anywhere in the grammar.
func (g *Grammar) Has(s ll1grammar.Symbol) bool {
	return g.symbols.Contains(s)
}

// --- analytical queries (require no pending problem) -----------------------

// CanMatchEmpty reports whether non-terminal n can derive the empty string.
func (g *Grammar) CanMatchEmpty(n ll1grammar.Symbol) (bool, error) {
	if err := g.ThrowProblem(); err != nil {
		return false, err
	}
	rm, ok := g.ruleFor(n)
	if !ok {
		return false, ll1grammar.NewGrammarError("no such rule: " + n.String())
	}
	return rm.empty == Positive, nil
}

// FirstSet returns the FIRST set of non-terminal n, or nil if n sits inside
// a left-recursive cycle and was never resolved.
func (g *Grammar) FirstSet(n ll1grammar.Symbol) ([]ll1grammar.Symbol, error) {
	if err := g.ThrowProblem(); err != nil {
		return nil, err
	}
	rm, ok := g.ruleFor(n)
	if !ok {
		return nil, ll1grammar.NewGrammarError("no such rule: " + n.String())
	}
	if rm.firstSet == nil {
		return nil, nil
	}
	return symbolSlice(rm.firstSet), nil
}

// Next answers the cursor's lookahead query for expression e positioned at
// index: it reports whether (e, index) already sits at a valid completion,
// and unions the set of terminals that may legally follow into out.
func (g *Grammar) Next(e expr.Expression, index int, out *linkedhashset.Set) (matches bool, err error) {
	if err := g.ThrowProblem(); err != nil {
		return false, err
	}
	return g.next(e, index, out), nil
}

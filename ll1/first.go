package ll1

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"golang.org/x/exp/slices"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// firstWorkItem is a (rule, reach-path) pair, structurally identical to
// emptyWorkItem but driven by first-set resolution instead of empty?.
type firstWorkItem struct {
	lhs  ll1grammar.Symbol
	path []ll1grammar.Symbol
}

// runFirstSetFixedPoint computes first-set for every rule whose empty? the
// emptiness pass settled (rules it left Indecisive keep firstSet == nil
// permanently). This worklist has its own, structurally
// identical, left-recursion guard: a grammar like `a := b X; b := a | Y` is
// not left-recursive by the emptiness definition at all (X and Y both force
// Negative), yet its FIRST sets still mutually depend on each other.
func (g *Grammar) runFirstSetFixedPoint() {
	marked := make(map[ll1grammar.Symbol]bool)
	for _, lhs := range g.order {
		rm, _ := g.ruleFor(lhs)
		if rm.empty == Indecisive {
			marked[lhs] = true
		}
	}

	queue := make([]firstWorkItem, 0, len(g.order))
	for _, lhs := range g.order {
		if marked[lhs] {
			continue
		}
		queue = append(queue, firstWorkItem{lhs: lhs, path: []ll1grammar.Symbol{lhs}})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if marked[item.lhs] {
			continue
		}
		rm, _ := g.ruleFor(item.lhs)

		out := linkedhashset.New()
		decision, indecisives := g.computeFirst(rm.rule.RHS, out)
		if decision != Indecisive {
			rm.firstSet = out
			tracer().Debugf("first-set(%s) = %v", item.lhs, out.Values())
			continue
		}

		enqueued := false
		for _, n := range indecisives {
			if idx := slices.Index(item.path, n); idx >= 0 {
				cycle := append(append([]ll1grammar.Symbol{}, item.path[idx:]...), n)
				g.recordLeftRecursion(item.lhs, cycle, marked)
				continue
			}
			if _, ok := g.ruleFor(n); ok && !marked[n] {
				extended := append(append([]ll1grammar.Symbol{}, item.path...), n)
				queue = append(queue, firstWorkItem{lhs: n, path: extended})
				enqueued = true
			}
		}
		if !marked[item.lhs] {
			if !enqueued {
				// Every dependency is marked and will never settle; the
				// rule keeps firstSet == nil.
				marked[item.lhs] = true
				continue
			}
			queue = append(queue, firstWorkItem{lhs: item.lhs, path: item.path})
		}
	}
}

// computeFirst accumulates terminals into out and returns a tri-valued
// decision describing whether e can match empty. The returned symbol slice
// is only meaningful when the decision is Indecisive.
func (g *Grammar) computeFirst(e expr.Expression, out *linkedhashset.Set) (Decision, []ll1grammar.Symbol) {
	if e == expr.Eps {
		return Positive, nil
	}
	if e == expr.None {
		return Negative, nil
	}
	if e == expr.Any {
		for _, t := range g.Terminals() {
			out.Add(t)
		}
		return Negative, nil
	}
	switch v := e.(type) {
	case *expr.Terminal:
		out.Add(v.Sym)
		return Negative, nil
	case *expr.Negate:
		for _, t := range g.Terminals() {
			if !v.Contains(t) {
				out.Add(t)
			}
		}
		return Negative, nil
	case *expr.Nonterminal:
		rm, _ := g.ruleFor(v.Sym)
		if rm.firstSet != nil {
			for _, t := range rm.firstSet.Values() {
				out.Add(t)
			}
			return rm.empty, nil
		}
		return Indecisive, []ll1grammar.Symbol{v.Sym}
	case *expr.Seq:
		return g.computeFirstSeq(v.Items, out)
	case *expr.Alt:
		return g.computeFirstAlt(v.Items, out)
	case *expr.Quant:
		if v.Max == 0 {
			return Positive, nil
		}
		d, indec := g.computeFirst(v.Elem, out)
		if d == Indecisive {
			return Indecisive, indec
		}
		if v.Min == 0 {
			return Positive, nil
		}
		return d, nil
	default:
		return Negative, nil
	}
}

// computeFirstSeq stops accumulating past the first required (Negative)
// child, and returns Indecisive as soon as a child's own resolution is
// unknown. Classic FIRST(x1 x2 ... xn) over a concatenation.
func (g *Grammar) computeFirstSeq(items []expr.Expression, out *linkedhashset.Set) (Decision, []ll1grammar.Symbol) {
	for _, child := range items {
		d, indec := g.computeFirst(child, out)
		if d == Indecisive {
			return Indecisive, indec
		}
		if d == Negative {
			return Negative, nil
		}
	}
	return Positive, nil
}

// computeFirstAlt unions every child's FIRST; any Indecisive child
// short-circuits the whole alternation.
func (g *Grammar) computeFirstAlt(items []expr.Expression, out *linkedhashset.Set) (Decision, []ll1grammar.Symbol) {
	anyPositive := false
	for _, child := range items {
		d, indec := g.computeFirst(child, out)
		if d == Indecisive {
			return Indecisive, indec
		}
		if d == Positive {
			anyPositive = true
		}
	}
	if anyPositive {
		return Positive, nil
	}
	return Negative, nil
}

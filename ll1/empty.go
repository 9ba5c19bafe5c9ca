package ll1

import (
	"golang.org/x/exp/slices"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// emptyWorkItem is a (rule, reach-path) pair from the emptiness worklist.
type emptyWorkItem struct {
	lhs  ll1grammar.Symbol
	path []ll1grammar.Symbol
}

// runEmptinessFixedPoint computes empty? for every rule, detecting
// left-recursive cycles as a side effect of the same worklist. Rules still
// Indecisive once the queue drains are the ones inside a left-recursive
// cycle and the ones whose answer waits only on such rules.
func (g *Grammar) runEmptinessFixedPoint() {
	marked := make(map[ll1grammar.Symbol]bool)
	queue := make([]emptyWorkItem, 0, len(g.order))
	for _, lhs := range g.order {
		queue = append(queue, emptyWorkItem{lhs: lhs, path: []ll1grammar.Symbol{lhs}})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if marked[item.lhs] {
			continue
		}
		rm, _ := g.ruleFor(item.lhs)

		decision, indecisives := g.checkEmpty(rm.rule.RHS)
		if decision != Indecisive {
			rm.empty = decision
			tracer().Debugf("empty?(%s) = %s", item.lhs, decision)
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
				queue = append(queue, emptyWorkItem{lhs: n, path: extended})
				enqueued = true
			}
		}
		if !marked[item.lhs] {
			if !enqueued {
				// Every dependency is marked and will never settle.
				marked[item.lhs] = true
				continue
			}
			queue = append(queue, emptyWorkItem{lhs: item.lhs, path: item.path})
		}
	}
}

// recordLeftRecursion records a discovered cycle against the rule that owns
// it, the grammar-wide set, and marks every non-terminal on the cycle so
// the worklist stops chasing it.
func (g *Grammar) recordLeftRecursion(owner ll1grammar.Symbol, cycle []ll1grammar.Symbol, marked map[ll1grammar.Symbol]bool) {
	rm, _ := g.ruleFor(owner)
	rm.leftRecursive = append(rm.leftRecursive, cycle)
	g.leftRecursive = append(g.leftRecursive, cycle)
	for _, n := range cycle {
		marked[n] = true
	}
	tracer().Debugf("left recursion detected: %v", cycle)
}

// checkEmpty implements compute-empty. The returned slice of non-terminals
// is only meaningful when the decision is Indecisive.
func (g *Grammar) checkEmpty(e expr.Expression) (Decision, []ll1grammar.Symbol) {
	if e == expr.Eps {
		return Positive, nil
	}
	if e == expr.None || e == expr.Any {
		return Negative, nil
	}
	switch v := e.(type) {
	case *expr.Terminal, *expr.Negate:
		return Negative, nil
	case *expr.Nonterminal:
		rm, _ := g.ruleFor(v.Sym)
		if rm.empty == Indecisive {
			return Indecisive, []ll1grammar.Symbol{v.Sym}
		}
		return rm.empty, nil
	case *expr.Seq:
		return g.checkEmptySeq(v.Items)
	case *expr.Alt:
		return g.checkEmptyAlt(v.Items)
	case *expr.Quant:
		if v.Min == 0 {
			return Positive, nil
		}
		return g.checkEmpty(v.Elem)
	default:
		return Negative, nil
	}
}

// checkEmptySeq scans left to right. Only the first Indecisive child's
// indecisive non-terminals are exported: exporting later ones too would let
// the worklist chase dependencies that sit behind an undecided child and
// report spurious cycles through them (in `a := b a; b := X`, only b is
// exported while b is unresolved, so no cycle [a, a] is reported).
func (g *Grammar) checkEmptySeq(items []expr.Expression) (Decision, []ll1grammar.Symbol) {
	result := Positive
	var exported []ll1grammar.Symbol
	firstIndecisive := true
	for _, child := range items {
		d, indec := g.checkEmpty(child)
		if d == Negative {
			return Negative, nil
		}
		if d == Indecisive {
			result = Indecisive
			if firstIndecisive {
				exported = indec
				firstIndecisive = false
			}
		}
	}
	if result == Indecisive {
		return Indecisive, exported
	}
	return Positive, nil
}

// checkEmptyAlt scans, short-circuiting on the first Positive child.
// Indecisives are exported from every child examined.
func (g *Grammar) checkEmptyAlt(items []expr.Expression) (Decision, []ll1grammar.Symbol) {
	allNegative := true
	var exported []ll1grammar.Symbol
	for _, child := range items {
		d, indec := g.checkEmpty(child)
		if d == Positive {
			return Positive, nil
		}
		if d == Indecisive {
			exported = append(exported, indec...)
			allNegative = false
		}
	}
	if allNegative {
		return Negative, nil
	}
	return Indecisive, exported
}

package ll1

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/arbortree/ll1grammar/expr"
)

// next is the unchecked core of Next, assuming g has no pending problem; it
// recurses without re-checking ThrowProblem on every call.
func (g *Grammar) next(e expr.Expression, index int, out *linkedhashset.Set) bool {
	if e == expr.Eps {
		return true
	}
	if e == expr.None {
		return false
	}
	if e == expr.Any {
		if index == 0 {
			for _, t := range g.Terminals() {
				out.Add(t)
			}
			return false
		}
		return true
	}
	switch v := e.(type) {
	case *expr.Terminal:
		if index == 0 {
			out.Add(v.Sym)
			return false
		}
		return true
	case *expr.Negate:
		if index == 0 {
			for _, t := range g.Terminals() {
				if !v.Contains(t) {
					out.Add(t)
				}
			}
			return false
		}
		return true
	case *expr.Nonterminal:
		if index == 0 {
			rm, _ := g.ruleFor(v.Sym)
			if rm.firstSet != nil {
				for _, t := range rm.firstSet.Values() {
					out.Add(t)
				}
			}
			return rm.empty == Positive
		}
		return true
	case *expr.Seq:
		for i := index; i < len(v.Items); i++ {
			if !g.next(v.Items[i], 0, out) {
				return false
			}
		}
		return true
	case *expr.Alt:
		if index != 0 {
			return true
		}
		anyMatch := false
		for _, c := range v.Items {
			if g.next(c, 0, out) {
				anyMatch = true
			}
		}
		return anyMatch
	case *expr.Quant:
		return g.nextQuant(v, index, out)
	default:
		return true
	}
}

// quantAmount is the positional amount-classification: how the current
// repetition count relates to a Quant's [min, max] window.
type quantAmount uint8

const (
	amountTooFew quantAmount = iota
	amountEnough
	amountLimit
	amountTooMany
)

func classifyQuantAmount(min, max, index int) quantAmount {
	switch {
	case index < min:
		return amountTooFew
	case max == -1:
		return amountEnough
	case index < max:
		return amountEnough
	case index == max:
		return amountLimit
	default:
		return amountTooMany
	}
}

func (a quantAmount) valid() bool {
	return a != amountTooFew
}

func (a quantAmount) atLimitOrPast() bool {
	return a == amountLimit || a == amountTooMany
}

func (g *Grammar) nextQuant(q *expr.Quant, index int, out *linkedhashset.Set) bool {
	amount := classifyQuantAmount(q.Min, q.Max, index)
	if !amount.atLimitOrPast() {
		g.next(q.Elem, 0, out)
	}
	return amount.valid()
}

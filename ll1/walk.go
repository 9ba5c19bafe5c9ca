package ll1

import (
	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// walkSymbols visits every terminal and non-terminal symbol referenced
// anywhere inside e (Terminal and Nonterminal leaves, and the members of a
// Negate's finite set), calling onTerm/onNonterm for each occurrence. Any,
// None and Eps contribute no symbols of their own; Any's "every terminal"
// contribution is resolved later, against the grammar's terminal set, by
// whoever needs it (compute-first, next).
func walkSymbols(e expr.Expression, onTerm, onNonterm func(ll1grammar.Symbol)) {
	switch v := e.(type) {
	case *expr.Terminal:
		onTerm(v.Sym)
	case *expr.Nonterminal:
		onNonterm(v.Sym)
	case *expr.Negate:
		for _, t := range v.Set {
			onTerm(t)
		}
	case *expr.Seq:
		for _, c := range v.Items {
			walkSymbols(c, onTerm, onNonterm)
		}
	case *expr.Alt:
		for _, c := range v.Items {
			walkSymbols(c, onTerm, onNonterm)
		}
	case *expr.Quant:
		walkSymbols(v.Elem, onTerm, onNonterm)
	}
}

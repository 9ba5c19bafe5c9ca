package expr

import (
	"fmt"
	"strings"

	"github.com/arbortree/ll1grammar"
)

// Expression is a value from the closed pattern algebra described in the
// package doc. It is never implemented outside this package: every
// algorithm in this module (and in package ll1) pattern-matches over the
// concrete variant types with a type switch, so adding a variant means
// revisiting every such switch.
type Expression interface {
	// Get returns the sub-expression that a cursor at progress index must
	// attempt next, or End if index is past the expression.
	Get(index int) Expression
	// Describe renders the canonical printable form used for debugging and
	// golden-value tests.
	Describe() string
	// Equals reports structural (value) equality with other.
	Equals(other Expression) bool
}

// --- singletons -------------------------------------------------------

type epsType struct{}
type noneType struct{}
type anyType struct{}
type endType struct{}

// Eps matches zero input.
var Eps Expression = epsType{}

// None never matches.
var None Expression = noneType{}

// Any matches any single terminal.
var Any Expression = anyType{}

// End is the sentinel returned by Get once a cursor has walked past the end
// of an expression.
var End Expression = endType{}

func (epsType) Get(int) Expression  { return End }
func (epsType) Describe() string    { return "#" }
func (epsType) Equals(o Expression) bool {
	_, ok := o.(epsType)
	return ok
}

func (noneType) Get(int) Expression { return End }
func (noneType) Describe() string   { return "!" }
func (noneType) Equals(o Expression) bool {
	_, ok := o.(noneType)
	return ok
}

func (anyType) Get(index int) Expression {
	if index == 0 {
		return Any
	}
	return End
}
func (anyType) Describe() string { return "." }
func (anyType) Equals(o Expression) bool {
	_, ok := o.(anyType)
	return ok
}

func (endType) Get(int) Expression { return End }
func (endType) Describe() string   { return "<end>" }
func (endType) Equals(o Expression) bool {
	_, ok := o.(endType)
	return ok
}

// IsEnd reports whether e is the End sentinel.
func IsEnd(e Expression) bool {
	_, ok := e.(endType)
	return ok
}

// --- Terminal -----------------------------------------------------------

// Terminal matches exactly one terminal symbol.
type Terminal struct {
	Sym ll1grammar.Symbol
}

// NewTerminal builds a Terminal expression over t.
func NewTerminal(t ll1grammar.Symbol) Expression {
	if !t.IsTerminal() {
		panic("expr: Terminal requires a terminal symbol")
	}
	return &Terminal{Sym: t}
}

func (t *Terminal) Get(index int) Expression {
	if index == 0 {
		return t
	}
	return End
}

func (t *Terminal) Describe() string { return t.Sym.String() }

func (t *Terminal) Equals(o Expression) bool {
	other, ok := o.(*Terminal)
	return ok && other.Sym == t.Sym
}

// --- Nonterminal ----------------------------------------------------------

// Nonterminal matches whatever its rule matches.
type Nonterminal struct {
	Sym ll1grammar.Symbol
}

// NewNonterminal builds a Nonterminal expression referencing n.
func NewNonterminal(n ll1grammar.Symbol) Expression {
	if !n.IsNonterminal() {
		panic("expr: Nonterminal requires a non-terminal symbol")
	}
	return &Nonterminal{Sym: n}
}

func (n *Nonterminal) Get(index int) Expression {
	if index == 0 {
		return n
	}
	return End
}

func (n *Nonterminal) Describe() string { return n.Sym.String() }

func (n *Nonterminal) Equals(o Expression) bool {
	other, ok := o.(*Nonterminal)
	return ok && other.Sym == n.Sym
}

// --- Seq ------------------------------------------------------------------

// Seq matches its children in order.
type Seq struct {
	Items []Expression
}

// NewSeq builds a Seq expression. No child may be nil.
func NewSeq(xs ...Expression) Expression {
	items := make([]Expression, len(xs))
	for i, x := range xs {
		if x == nil {
			panic("expr: Seq child must not be nil")
		}
		items[i] = x
	}
	return &Seq{Items: items}
}

func (s *Seq) Get(index int) Expression {
	if index >= 0 && index < len(s.Items) {
		return s.Items[index]
	}
	return End
}

func (s *Seq) Describe() string {
	parts := make([]string, len(s.Items))
	for i, x := range s.Items {
		parts[i] = x.Describe()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (s *Seq) Equals(o Expression) bool {
	other, ok := o.(*Seq)
	if !ok || len(other.Items) != len(s.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equals(other.Items[i]) {
			return false
		}
	}
	return true
}

// --- Alt --------------------------------------------------------------

// Alt matches exactly one of its children.
type Alt struct {
	Items []Expression
}

// NewAlt builds an Alt expression. No child may be nil.
func NewAlt(xs ...Expression) Expression {
	items := make([]Expression, len(xs))
	for i, x := range xs {
		if x == nil {
			panic("expr: Alt child must not be nil")
		}
		items[i] = x
	}
	return &Alt{Items: items}
}

func (a *Alt) Get(index int) Expression {
	if index == 0 {
		return a
	}
	return End
}

func (a *Alt) Describe() string {
	parts := make([]string, len(a.Items))
	for i, x := range a.Items {
		parts[i] = x.Describe()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func (a *Alt) Equals(o Expression) bool {
	other, ok := o.(*Alt)
	if !ok || len(other.Items) != len(a.Items) {
		return false
	}
	for i := range a.Items {
		if !a.Items[i].Equals(other.Items[i]) {
			return false
		}
	}
	return true
}

// --- Quant ------------------------------------------------------------

// Quant matches Elem repeated between Min and Max times. Max == -1 means
// unbounded.
type Quant struct {
	Elem     Expression
	Min, Max int
}

// NewQuant builds a Quant expression, validating its invariants: Min >= 0;
// Max == -1 means unbounded; otherwise Max >= Min.
func NewQuant(e Expression, min, max int) Expression {
	if e == nil {
		panic("expr: Quant element must not be nil")
	}
	if min < 0 {
		panic("expr: Quant min must be >= 0")
	}
	if max >= 0 && max < min {
		panic("expr: Quant max must be >= min (or -1 for unbounded)")
	}
	return &Quant{Elem: e, Min: min, Max: max}
}

func (q *Quant) Get(index int) Expression {
	if q.Max == -1 || index < q.Max {
		return q.Elem
	}
	return End
}

func (q *Quant) Describe() string {
	inner := q.Elem.Describe()
	if _, nested := q.Elem.(*Quant); nested {
		inner = "(" + inner + ")"
	}
	return inner + quantSuffix(q.Min, q.Max)
}

func quantSuffix(min, max int) string {
	switch {
	case min == max:
		return fmt.Sprintf("[%d]", min)
	case min == 0 && max == -1:
		return "*"
	case min == 1 && max == -1:
		return "+"
	case min == 0 && max == 1:
		return "?"
	case max == -1:
		return fmt.Sprintf("[%d..]", min)
	case min == 0:
		return fmt.Sprintf("[..%d]", max)
	default:
		return fmt.Sprintf("[%d..%d]", min, max)
	}
}

func (q *Quant) Equals(o Expression) bool {
	other, ok := o.(*Quant)
	return ok && other.Min == q.Min && other.Max == q.Max && q.Elem.Equals(other.Elem)
}

// --- Negate -----------------------------------------------------------

// Negate matches any terminal not in its finite set.
type Negate struct {
	Set []ll1grammar.Symbol
}

// NewNegate builds a Negate expression over a (deduplicated) set of
// terminals.
func NewNegate(ts ...ll1grammar.Symbol) Expression {
	seen := make(map[ll1grammar.Symbol]bool, len(ts))
	var set []ll1grammar.Symbol
	for _, t := range ts {
		if !t.IsTerminal() {
			panic("expr: Negate requires terminal symbols")
		}
		if !seen[t] {
			seen[t] = true
			set = append(set, t)
		}
	}
	return &Negate{Set: set}
}

func (n *Negate) Get(index int) Expression {
	if index == 0 {
		return n
	}
	return End
}

func (n *Negate) Describe() string {
	parts := make([]string, len(n.Set))
	for i, t := range n.Set {
		parts[i] = t.String()
	}
	return "~(" + strings.Join(parts, " | ") + ")"
}

func (n *Negate) Contains(t ll1grammar.Symbol) bool {
	for _, s := range n.Set {
		if s == t {
			return true
		}
	}
	return false
}

func (n *Negate) Equals(o Expression) bool {
	other, ok := o.(*Negate)
	if !ok || len(other.Set) != len(n.Set) {
		return false
	}
	for _, t := range n.Set {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

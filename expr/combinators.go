package expr

import "github.com/arbortree/ll1grammar"

// Of constructs expr(xs…) = Eps | xs[0] | Seq(xs), the top-level sequence
// helper.
func Of(xs ...Expression) Expression {
	switch len(xs) {
	case 0:
		return Eps
	case 1:
		return xs[0]
	default:
		return NewSeq(xs...)
	}
}

// Alts constructs alts(xs…) = None | xs[0] | Alt(xs).
func Alts(xs ...Expression) Expression {
	switch len(xs) {
	case 0:
		return None
	case 1:
		return xs[0]
	default:
		return NewAlt(xs...)
	}
}

// Neg constructs neg(ts…) = Any | Negate(ts).
func Neg(ts ...ll1grammar.Symbol) Expression {
	if len(ts) == 0 {
		return Any
	}
	return NewNegate(ts...)
}

func isNone(e Expression) bool {
	_, ok := e.(noneType)
	return ok
}

func isEps(e Expression) bool {
	_, ok := e.(epsType)
	return ok
}

// Optional builds Quant(e, 0, 1), with the None/Eps short-circuits.
func Optional(e Expression) Expression {
	if isNone(e) || isEps(e) {
		return Eps
	}
	return NewQuant(e, 0, 1)
}

// ZeroOrMore builds Quant(e, 0, -1).
func ZeroOrMore(e Expression) Expression {
	if isNone(e) || isEps(e) {
		return Eps
	}
	return NewQuant(e, 0, -1)
}

// OneOrMore builds Quant(e, 1, -1).
func OneOrMore(e Expression) Expression {
	if isEps(e) {
		return Eps
	}
	return NewQuant(e, 1, -1)
}

// AtLeast builds Quant(e, m, -1).
func AtLeast(e Expression, m int) Expression {
	if isEps(e) {
		return Eps
	}
	return NewQuant(e, m, -1)
}

// AtMost builds Quant(e, 0, M).
func AtMost(e Expression, max int) Expression {
	if isNone(e) || isEps(e) {
		return Eps
	}
	return NewQuant(e, 0, max)
}

// Exactly builds Quant(e, n, n).
func Exactly(e Expression, n int) Expression {
	if isEps(e) {
		return Eps
	}
	return NewQuant(e, n, n)
}

// RangeQ builds Quant(e, m, max).
func RangeQ(e Expression, min, max int) Expression {
	if isEps(e) {
		return Eps
	}
	return NewQuant(e, min, max)
}

// Or constructs an Alt(e, g) where g is Eps if fs is empty, fs[0] if there
// is one, else Seq(fs). When e is already an Alt, the new alternative is
// appended; when e is None, or behaves as Alts(fs).
func Or(e Expression, fs ...Expression) Expression {
	if isNone(e) {
		return Alts(fs...)
	}
	g := seqOrSingle(fs)
	if alt, ok := e.(*Alt); ok {
		items := make([]Expression, 0, len(alt.Items)+1)
		items = append(items, alt.Items...)
		items = append(items, g)
		return &Alt{Items: items}
	}
	return NewAlt(e, g)
}

func seqOrSingle(fs []Expression) Expression {
	switch len(fs) {
	case 0:
		return Eps
	case 1:
		return fs[0]
	default:
		return NewSeq(fs...)
	}
}

// Then constructs Seq(e, fs…); when e is already a Seq, fs is appended.
// On None, then(...) ⇒ None; on Eps, then(fs...) ⇒ Of(fs...).
func Then(e Expression, fs ...Expression) Expression {
	if isNone(e) {
		return None
	}
	if isEps(e) {
		return Of(fs...)
	}
	if seq, ok := e.(*Seq); ok {
		items := make([]Expression, 0, len(seq.Items)+len(fs))
		items = append(items, seq.Items...)
		items = append(items, fs...)
		return &Seq{Items: items}
	}
	all := make([]Expression, 0, 1+len(fs))
	all = append(all, e)
	all = append(all, fs...)
	return NewSeq(all...)
}

// ButFirst constructs Seq(fs…, e); when e is already a Seq, fs is
// prepended.
func ButFirst(e Expression, fs ...Expression) Expression {
	if seq, ok := e.(*Seq); ok {
		items := make([]Expression, 0, len(fs)+len(seq.Items))
		items = append(items, fs...)
		items = append(items, seq.Items...)
		return &Seq{Items: items}
	}
	all := make([]Expression, 0, len(fs)+1)
	all = append(all, fs...)
	all = append(all, e)
	return NewSeq(all...)
}

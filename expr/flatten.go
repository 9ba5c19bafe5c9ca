package expr

import "github.com/cnf/structhash"

// Flatten reduces an expression to an algebraically equivalent but simpler
// form, applying a fixed set of identities. It is bottom-up and idempotent:
// Flatten(Flatten(e)) == Flatten(e).
func Flatten(e Expression) Expression {
	var out Expression
	switch v := e.(type) {
	case *Seq:
		out = flattenSeq(v)
	case *Alt:
		out = flattenAlt(v)
	case *Negate:
		out = flattenNegate(v)
	case *Quant:
		out = flattenQuant(v)
	default:
		// Terminal, Nonterminal and the Eps/None/Any/End singletons are
		// already in normal form.
		out = e
	}
	if out != e {
		tracer().Debugf("flatten %s -> %s", e.Describe(), out.Describe())
	}
	return out
}

func flattenSeq(s *Seq) Expression {
	items := make([]Expression, 0, len(s.Items))
	for _, child := range s.Items {
		fc := Flatten(child)
		if isEps(fc) {
			continue
		}
		if isNone(fc) {
			return None
		}
		if inner, ok := fc.(*Seq); ok {
			items = append(items, inner.Items...)
			continue
		}
		items = append(items, fc)
	}
	switch len(items) {
	case 0:
		return Eps
	case 1:
		return items[0]
	default:
		return &Seq{Items: items}
	}
}

func flattenAlt(a *Alt) Expression {
	flat := make([]Expression, 0, len(a.Items))
	for _, child := range a.Items {
		fc := Flatten(child)
		if isNone(fc) {
			continue
		}
		if inner, ok := fc.(*Alt); ok {
			flat = append(flat, inner.Items...)
			continue
		}
		flat = append(flat, fc)
	}
	deduped := dedupeAlternatives(flat)
	switch len(deduped) {
	case 0:
		return None
	case 1:
		return deduped[0]
	default:
		return &Alt{Items: deduped}
	}
}

// dedupeAlternatives removes structurally equal duplicates, preserving
// first-occurrence order. Children are first bucketed by a structural hash
// digest (grounded on how the teacher's earley recognizer buckets items by
// structhash.Hash before comparing them) so the subsequent Equals checks
// only ever run within a same-digest bucket instead of across all pairs.
func dedupeAlternatives(items []Expression) []Expression {
	buckets := make(map[string][]Expression, len(items))
	result := make([]Expression, 0, len(items))
	for _, it := range items {
		key, err := structhash.Hash(it, 1)
		if err != nil {
			key = ""
		}
		bucket := buckets[key]
		dup := false
		for _, existing := range bucket {
			if existing.Equals(it) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[key] = append(bucket, it)
		result = append(result, it)
	}
	return result
}

func flattenNegate(n *Negate) Expression {
	if len(n.Set) == 0 {
		return Any
	}
	return n
}

func flattenQuant(q *Quant) Expression {
	e := Flatten(q.Elem)
	min, max := q.Min, q.Max

	if isEps(e) {
		return Eps
	}
	if isNone(e) {
		if min == 0 {
			return Eps
		}
		return None
	}

	if inner, ok := e.(*Quant); ok {
		f := inner.Elem
		qmin, qmax := inner.Min, inner.Max

		// Infinite merge: the inner group is already unbounded, so the
		// outer upper bound is vacuous.
		if qmax == -1 && min >= 1 {
			return simplifyQuant(f, min*qmin, -1)
		}

		// Range merge: the per-outer-repetition ranges overlap, so their
		// union forms a single contiguous range.
		if qmax != -1 {
			p := min * qmax
			q := qmin*(min+1) - 1
			if p > q {
				nmax := -1
				if !(min <= 1 || max == -1) {
					nmax = max * qmax
				}
				return simplifyQuant(f, min*qmin, nmax)
			}
		}

		// Optional-of-unbounded: preserves optionality without losing the
		// inner group's unbounded matches.
		if qmax == -1 && min == 0 && max != 0 {
			return simplifyQuant(inner, 0, 1)
		}

		// Fixed merge: [k][j] => [k*j], the exact-count case the general
		// merge rule above excludes once min >= 2.
		if qmin == qmax && min == max {
			return simplifyQuant(f, qmin*min, qmin*min)
		}

		return simplifyQuant(inner, min, max)
	}

	return simplifyQuant(e, min, max)
}

func simplifyQuant(elem Expression, min, max int) Expression {
	if min == max && min == 1 {
		return elem
	}
	if min == max && min == 0 {
		return Eps
	}
	return &Quant{Elem: elem, Min: min, Max: max}
}

/*
Package expr implements the pattern algebra used to write the right-hand
side of grammar rules, and its normalizing rewriter, Flatten.

An Expression is a recursive value from a closed set of variants: Terminal,
Nonterminal, Seq, Alt, Quant, Negate, Any, None and Eps. Expressions are
immutable once constructed and may be shared freely; construction panics on
contract violations (nil children, negative bounds) since those are
programmer errors, not data to recover from.

Flatten reduces an expression to an algebraically equivalent but simpler
form using a fixed set of identities (see the package-level doc comment on
Flatten). It is idempotent: Flatten(Flatten(e)) == Flatten(e).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026 the ll1grammar authors.

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ll1grammar.expr")
}

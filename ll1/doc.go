/*
Package ll1 implements grammar rules, the grammar analyzer, and the cursor
used to answer lookahead queries.

Submitting a collection of Rule values to NewGrammar (or building them up
through a Builder) runs the analysis pipeline synchronously: rules sharing
an LHS are merged, the symbol inventory is collected, undefined non-terminals
are flagged, and two worklist-based fixed points run in sequence: emptiness
(with left-recursion detection interleaved) and FIRST-set computation. The
result is a frozen Grammar: every collection it returns is read-only and
every per-rule metadata field is a terminal value.

State is a cursor: a position inside an expression tree, relative to a
frozen Grammar, that reports which terminals may legally come next and
whether the cursor already sits at a valid completion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026 the ll1grammar authors.

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ll1grammar.ll1")
}

/*
Package ll1grammar is a toolbox for building context-free grammars out of a
small expression algebra, validating them, and computing the two analyses a
top-down, one-token-lookahead parser needs: which non-terminals can derive
the empty string, and the FIRST set of every rule.

It focuses on grammar analysis, not on parsing itself. Package structure is
as follows:

■ expr: Package expr implements the pattern algebra (the combinator tree used
to write right-hand sides) and its normalizing rewriter, flatten.

■ ll1: Package ll1 implements rules, the grammar analyzer (the fixed-point
solvers for emptiness, left recursion and FIRST sets), and the cursor type
used to answer lookahead queries while walking an expression tree.

The base package contains the symbol model and the error taxonomy shared by
both of the above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026 the ll1grammar authors.

*/
package ll1grammar

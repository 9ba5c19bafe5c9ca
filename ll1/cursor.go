package ll1

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/arbortree/ll1grammar"
	"github.com/arbortree/ll1grammar/expr"
)

// State is a cursor: a position inside an expression tree relative to a
// frozen Grammar. It is purely functional except for its index; one State
// per logical parser thread.
type State struct {
	g      *Grammar
	parent *State
	expr   expr.Expression
	index  int

	next    *linkedhashset.Set
	matches bool
}

// NewState builds a cursor at the start of e, relative to g. It fails if g
// has a pending problem (undefined symbols or left recursion).
func NewState(g *Grammar, e expr.Expression) (*State, error) {
	return newState(g, nil, e, 0)
}

// Descend builds a child cursor positioned at the start of e, recording s as
// its parent.
func (s *State) Descend(e expr.Expression) (*State, error) {
	return newState(s.g, s, e, 0)
}

func newState(g *Grammar, parent *State, e expr.Expression, index int) (*State, error) {
	s := &State{g: g, parent: parent, expr: e, index: index}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) recompute() error {
	out := linkedhashset.New()
	matches, err := s.g.Next(s.expr, s.index, out)
	if err != nil {
		return err
	}
	s.next = out
	s.matches = matches
	return nil
}

// Expr returns the expression this cursor walks.
func (s *State) Expr() expr.Expression { return s.expr }

// Index returns the cursor's current progress index.
func (s *State) Index() int { return s.index }

// Now returns expr.Get(index): the sub-expression a cursor at this position
// must attempt next, or expr.End past the end.
func (s *State) Now() expr.Expression { return s.expr.Get(s.index) }

// Next returns the set of terminals that may legally come next.
func (s *State) Next() []ll1grammar.Symbol {
	return symbolSlice(s.next)
}

// Matches reports whether the cursor already sits at a valid completion.
func (s *State) Matches() bool { return s.matches }

// End reports whether the cursor has walked past the end of its expression.
func (s *State) End() bool { return expr.IsEnd(s.Now()) }

// Parent returns the cursor that descended into this one, or nil at the
// root.
func (s *State) Parent() *State { return s.parent }

// Advance moves the cursor one position forward and recomputes its cache.
// advance never decreases End(): once End() is true it stays true.
func (s *State) Advance() error {
	s.index++
	return s.recompute()
}

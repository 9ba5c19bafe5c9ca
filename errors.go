package ll1grammar

import (
	"fmt"
	"strings"
)

// Cause tags a GrammarError with which of the three recognized failure
// kinds produced it, so callers can switch on it without relying on
// errors.As against every concrete error type.
type Cause uint8

const (
	// CauseUndefinedSymbols: a non-terminal is referenced but never defined.
	CauseUndefinedSymbols Cause = iota + 1
	// CauseLeftRecursion: a non-terminal reaches itself with no intervening
	// symbol that is forced to consume input.
	CauseLeftRecursion
	// CauseGeneric: the grammar's contract was violated in some other way
	// (for example, a query about a non-terminal that has no rule).
	CauseGeneric
)

func (c Cause) String() string {
	switch c {
	case CauseUndefinedSymbols:
		return "undefined-symbols"
	case CauseLeftRecursion:
		return "left-recursion"
	case CauseGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// GrammarError is the tagged error family every error this module raises
// during analysis belongs to: a *GrammarError whose three failure kinds are
// distinguished by Cause, each carrying its own payload.
type GrammarError struct {
	Cause Cause

	// Undefined holds the offending non-terminals when Cause ==
	// CauseUndefinedSymbols.
	Undefined []Symbol

	// Cycles holds the offending cycles when Cause == CauseLeftRecursion.
	// Each cycle is an ordered sequence of non-terminals, first and last
	// identical, in the order discovered.
	Cycles [][]Symbol

	// Detail is a free-form message for CauseGeneric (and as a human-
	// readable supplement for the other two causes).
	Detail string
}

func (e *GrammarError) Error() string {
	switch e.Cause {
	case CauseUndefinedSymbols:
		names := make([]string, len(e.Undefined))
		for i, s := range e.Undefined {
			names[i] = s.Name()
		}
		return fmt.Sprintf("undefined non-terminals: %s", strings.Join(names, ", "))
	case CauseLeftRecursion:
		var parts []string
		for _, cyc := range e.Cycles {
			names := make([]string, len(cyc))
			for i, s := range cyc {
				names[i] = s.Name()
			}
			parts = append(parts, strings.Join(names, " -> "))
		}
		return fmt.Sprintf("left recursion: %s", strings.Join(parts, "; "))
	default:
		if e.Detail != "" {
			return "grammar error: " + e.Detail
		}
		return "grammar error"
	}
}

// UndefinedSymbolsError constructs a GrammarError for a set of non-terminals
// that are referenced somewhere in a grammar's rules but never defined.
func UndefinedSymbolsError(undefined []Symbol) *GrammarError {
	return &GrammarError{Cause: CauseUndefinedSymbols, Undefined: undefined}
}

// LeftRecursionError constructs a GrammarError for one or more discovered
// left-recursive cycles.
func LeftRecursionError(cycles [][]Symbol) *GrammarError {
	return &GrammarError{Cause: CauseLeftRecursion, Cycles: cycles}
}

// NewGrammarError constructs the generic, defensive catch-all error kind.
func NewGrammarError(detail string) *GrammarError {
	return &GrammarError{Cause: CauseGeneric, Detail: detail}
}

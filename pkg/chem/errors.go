package chem

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Each is a distinct sentinel so callers can branch
// with errors.Is without string matching.
var (
	// ErrEmptyFormula is returned when a formula or term is blank.
	ErrEmptyFormula = errors.New("empty formula")

	// ErrUnknownElement is returned when a symbol is not in the periodic table.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNumeralInPlaceOfSymbol is returned when digits appear where an
	// element symbol was expected (e.g. "H20" instead of "H2O").
	ErrNumeralInPlaceOfSymbol = errors.New("numeral in place of element symbol")

	// ErrInvalidCharacter is returned for characters outside the formula grammar.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidMultiplier is returned for a zero repeat count.
	ErrInvalidMultiplier = errors.New("invalid multiplier")

	// ErrUnbalancedBrackets is returned for mismatched () or [].
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	// ErrMissingSeparator is returned when no "->", "→" or "=" is found.
	ErrMissingSeparator = errors.New("missing equation separator")

	// ErrEmptyReactantSide is returned when the left side is blank.
	ErrEmptyReactantSide = errors.New("empty reactant side")

	// ErrEmptyProductSide is returned when the right side is blank.
	ErrEmptyProductSide = errors.New("empty product side")
)

// Solve failure kinds.
var (
	// ErrNoSolution means the homogeneous system admits only the trivial
	// all-zero solution; the equation cannot be balanced as written.
	ErrNoSolution = errors.New("equation cannot be balanced")

	// ErrAmbiguousSolution means the null space has two or more dimensions;
	// the equation is under-constrained (e.g. carries a catalyst).
	ErrAmbiguousSolution = errors.New("ambiguous solution")

	// ErrDisconnectedSystem means a solution entry came out zero, which only
	// happens when the element/compound graph is disconnected.
	ErrDisconnectedSystem = errors.New("disconnected system")

	// ErrNonPositiveCoefficient means sign normalization could not reach an
	// all-positive integer vector.
	ErrNonPositiveCoefficient = errors.New("non-positive coefficient")
)

// ParseError is a structured parse failure. It wraps one of the parse
// sentinels above and carries the offending token and its position so the
// host can render a precise diagnostic.
type ParseError struct {
	Kind    error  // one of the Err* parse sentinels
	Token   string // offending substring, if any
	Pos     int    // byte offset within the formula, -1 if not applicable
	Side    string // "reactants" or "products" when raised during equation parsing
	Term    int    // 1-based term index on that side, 0 if not applicable
	Hint    string // optional "did you mean" suggestion
	Formula string // the formula text being parsed
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	if e.Term > 0 {
		msg = fmt.Sprintf("%s (%s term %d)", msg, e.Side, e.Term)
	}
	if e.Hint != "" {
		msg = fmt.Sprintf("%s. Did you mean %q?", msg, e.Hint)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }

// BalanceError is a structured solve failure wrapping one of the solve
// sentinels above.
type BalanceError struct {
	Kind   error
	Detail string
}

func (e *BalanceError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Detail)
}

func (e *BalanceError) Unwrap() error { return e.Kind }

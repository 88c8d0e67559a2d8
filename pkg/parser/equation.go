package parser

import (
	"errors"
	"strings"

	"github.com/aretw0/stoich/pkg/chem"
)

// Arrow tokens recognized as the reactants/products separator, in scan
// priority order. "->" must come before "=" so "A -> B" is never split on a
// stray equals inside a later extension of the grammar.
var arrows = []string{"->", "→", "="}

// ParseEquation splits the input on the first arrow token, parses each
// plus-separated term with ParseFormula, and assembles the Equation.
// Exactly one separator is required; everything after the first match is the
// product side.
func ParseEquation(text string) (*chem.Equation, error) {
	trimmed := strings.TrimSpace(text)

	arrow, idx := findArrow(trimmed)
	if idx < 0 {
		return nil, &chem.ParseError{Kind: chem.ErrMissingSeparator, Pos: -1, Formula: text}
	}

	left := strings.TrimSpace(trimmed[:idx])
	right := strings.TrimSpace(trimmed[idx+len(arrow):])
	if left == "" {
		return nil, &chem.ParseError{Kind: chem.ErrEmptyReactantSide, Pos: -1, Formula: text}
	}
	if right == "" {
		return nil, &chem.ParseError{Kind: chem.ErrEmptyProductSide, Pos: -1, Formula: text}
	}

	reactants, err := parseSide(left, "reactants")
	if err != nil {
		return nil, err
	}
	products, err := parseSide(right, "products")
	if err != nil {
		return nil, err
	}

	return &chem.Equation{Reactants: reactants, Products: products, Arrow: arrow}, nil
}

// findArrow locates the earliest arrow token by scan order. Ties on position
// resolve by the priority order of the arrows slice.
func findArrow(s string) (arrow string, idx int) {
	idx = -1
	for _, a := range arrows {
		if i := strings.Index(s, a); i >= 0 && (idx < 0 || i < idx) {
			arrow, idx = a, i
		}
	}
	return arrow, idx
}

// parseSide splits one side on "+" and parses each term, preserving input
// order. The first term failure aborts the side with the 1-based term index
// attached.
func parseSide(s, side string) ([]chem.Compound, error) {
	terms := strings.Split(s, "+")
	compounds := make([]chem.Compound, 0, len(terms))
	for i, term := range terms {
		formula := strings.TrimSpace(term)
		if formula == "" {
			return nil, &chem.ParseError{Kind: chem.ErrEmptyFormula, Pos: -1, Side: side, Term: i + 1}
		}
		comp, err := ParseFormula(formula)
		if err != nil {
			var pe *chem.ParseError
			if errors.As(err, &pe) {
				pe.Side = side
				pe.Term = i + 1
			}
			return nil, err
		}
		compounds = append(compounds, chem.Compound{Formula: formula, Composition: comp})
	}
	return compounds, nil
}

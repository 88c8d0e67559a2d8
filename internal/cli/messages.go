package cli

import (
	"errors"
	"fmt"

	"github.com/aretw0/stoich/pkg/chem"
)

// Diagnose turns a typed balancing failure into a user-facing message. The
// core never prints; this is the host-side mapping from error kind to advice.
func Diagnose(err error) string {
	var pe *chem.ParseError
	if errors.As(err, &pe) {
		switch {
		case errors.Is(err, chem.ErrNumeralInPlaceOfSymbol):
			msg := fmt.Sprintf("Found a number where an element symbol belongs: %q. Use the letter O for oxygen, not the number 0.", pe.Token)
			if pe.Hint != "" {
				msg += fmt.Sprintf(" Did you mean %q?", pe.Hint)
			}
			return msg
		case errors.Is(err, chem.ErrUnknownElement):
			return fmt.Sprintf("%q is not a chemical element. Check the symbol's capitalization (e.g. Co vs CO).", pe.Token)
		case errors.Is(err, chem.ErrMissingSeparator):
			return `No equation separator found. Use "->", "→", or "=" between reactants and products.`
		case errors.Is(err, chem.ErrUnbalancedBrackets):
			return "Brackets don't match up. Every ( needs a ) and every [ needs a ]."
		case errors.Is(err, chem.ErrInvalidMultiplier):
			return "A multiplier of zero makes no sense; leave it off or use a positive count."
		case errors.Is(err, chem.ErrInvalidCharacter):
			return fmt.Sprintf("Unexpected character %q. Formulas use letters, digits, brackets, and the hydrate dot.", pe.Token)
		case errors.Is(err, chem.ErrEmptyReactantSide), errors.Is(err, chem.ErrEmptyProductSide), errors.Is(err, chem.ErrEmptyFormula):
			return "Both sides of the equation need at least one compound."
		}
		return err.Error()
	}

	switch {
	case errors.Is(err, chem.ErrNoSolution):
		return "Equation cannot be balanced. This usually means the equation is invalid or impossible to balance. If you have catalyst(s) in the equation, please remove them and try again."
	case errors.Is(err, chem.ErrAmbiguousSolution):
		return "The equation is under-constrained: more than one independent balance exists. Try splitting it into separate reactions."
	case errors.Is(err, chem.ErrDisconnectedSystem):
		return "The equation splits into unrelated sub-reactions; balance them separately."
	case errors.Is(err, chem.ErrNonPositiveCoefficient):
		return "No all-positive set of coefficients exists for this equation."
	}
	return err.Error()
}

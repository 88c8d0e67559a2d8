// Package parser converts raw equation text into chem domain values.
//
// It contains two hand-rolled scanners: a formula scanner that expands one
// compound into its element counts (nested groups, hydrate terms), and an
// equation splitter that recognizes the arrow token and delegates each term
// to the formula scanner. Both are pure functions of their input.
package parser

import (
	"strings"

	"github.com/aretw0/stoich/pkg/chem"
)

// ParseFormula expands a single compound formula into its composition.
//
// Grammar: element symbols (one uppercase then lowercase letters) with
// optional digit multipliers, nested () or [] groups with trailing
// multipliers, and hydrate terms ("CuSO4·5H2O") whose leading multiplier
// scales a fresh sub-formula summed into the total.
func ParseFormula(text string) (chem.Composition, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &chem.ParseError{Kind: chem.ErrEmptyFormula, Pos: -1, Formula: text}
	}
	if pe := checkTrailingNumeral(trimmed); pe != nil {
		return nil, pe
	}

	total := make(chem.Composition)
	for _, part := range splitHydrate(trimmed) {
		if part.multiplier == 0 {
			return nil, &chem.ParseError{
				Kind: chem.ErrInvalidMultiplier, Token: "0", Pos: part.offset - 1, Formula: trimmed,
			}
		}
		comp, err := parseTerm(part.text, part.offset, trimmed)
		if err != nil {
			return nil, err
		}
		total.Merge(comp, part.multiplier)
	}
	return total, nil
}

// hydratePart is one dot-separated segment of a formula with its leading
// multiplier already stripped.
type hydratePart struct {
	text       string
	multiplier int
	offset     int // byte offset of text within the original formula
}

// splitHydrate cuts the formula on hydrate separators and peels the leading
// multiplier off each segment. "·" and "*" always separate; "." only when
// followed by a digit or an uppercase letter, so a stray trailing dot still
// surfaces as an invalid character downstream.
func splitHydrate(s string) []hydratePart {
	var parts []hydratePart
	start := 0
	i := 0
	for i < len(s) {
		sep := 0
		switch {
		case strings.HasPrefix(s[i:], "·"):
			sep = len("·")
		case s[i] == '*':
			sep = 1
		case s[i] == '.' && i+1 < len(s) && (isDigit(s[i+1]) || isUpper(s[i+1])):
			sep = 1
		}
		if sep > 0 {
			parts = append(parts, makePart(s[start:i], start))
			i += sep
			start = i
			continue
		}
		i++
	}
	parts = append(parts, makePart(s[start:], start))
	return parts
}

func makePart(segment string, offset int) hydratePart {
	mult := 0
	j := 0
	for j < len(segment) && isDigit(segment[j]) {
		mult = mult*10 + int(segment[j]-'0')
		j++
	}
	if j == 0 || j == len(segment) {
		// No leading multiplier, or the segment is all digits; in the latter
		// case parseTerm reports the bare-digit diagnostic with the full text.
		return hydratePart{text: segment, multiplier: 1, offset: offset}
	}
	return hydratePart{text: segment[j:], multiplier: mult, offset: offset + j}
}

// parseTerm expands one bracket-nesting formula segment. offset locates the
// segment within the full formula for error positions.
func parseTerm(s string, offset int, formula string) (chem.Composition, error) {
	if s == "" {
		return nil, &chem.ParseError{Kind: chem.ErrEmptyFormula, Pos: offset, Formula: formula}
	}

	// One frame per open bracket depth; counts merge into the parent on close.
	var stack []chem.Composition
	current := make(chem.Composition)

	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '(' || ch == '[':
			stack = append(stack, current)
			current = make(chem.Composition)
			i++

		case ch == ')' || ch == ']':
			if len(stack) == 0 {
				return nil, &chem.ParseError{
					Kind: chem.ErrUnbalancedBrackets, Token: string(ch), Pos: offset + i, Formula: formula,
				}
			}
			i++
			mult, width, explicit := scanNumber(s[i:])
			if explicit && mult == 0 {
				return nil, &chem.ParseError{
					Kind: chem.ErrInvalidMultiplier, Token: s[i : i+width], Pos: offset + i, Formula: formula,
				}
			}
			i += width
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent.Merge(current, mult)
			current = parent

		case isUpper(ch):
			start := i
			i++
			for i < len(s) && isLower(s[i]) {
				i++
			}
			sym := chem.Symbol(s[start:i])
			if !chem.IsElement(sym) {
				return nil, &chem.ParseError{
					Kind: chem.ErrUnknownElement, Token: string(sym), Pos: offset + start, Formula: formula,
				}
			}
			count, width, explicit := scanNumber(s[i:])
			if explicit && count == 0 {
				return nil, &chem.ParseError{
					Kind: chem.ErrInvalidMultiplier, Token: s[i : i+width], Pos: offset + i, Formula: formula,
				}
			}
			i += width
			current.Add(sym, count)

		case isDigit(ch):
			// Digits are only legal after an element or a closing bracket,
			// both consumed above. A digit here is the "H20 for H2O" class.
			start := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			return nil, &chem.ParseError{
				Kind:    chem.ErrNumeralInPlaceOfSymbol,
				Token:   s[start:i],
				Pos:     offset + start,
				Hint:    suggestFormula(formula),
				Formula: formula,
			}

		case ch == ' ' || ch == '\t':
			i++

		default:
			return nil, &chem.ParseError{
				Kind: chem.ErrInvalidCharacter, Token: string(decodeRune(s[i:])), Pos: offset + i, Formula: formula,
			}
		}
	}

	if len(stack) != 0 {
		return nil, &chem.ParseError{
			Kind: chem.ErrUnbalancedBrackets, Token: "(", Pos: offset + len(s), Formula: formula,
		}
	}
	if len(current) == 0 {
		return nil, &chem.ParseError{Kind: chem.ErrEmptyFormula, Pos: offset, Formula: formula}
	}
	return current, nil
}

// scanNumber reads a leading digit run. Returns the value, its width, and
// whether any digits were present; an absent multiplier defaults to 1.
func scanNumber(s string) (value, width int, explicit bool) {
	for width < len(s) && isDigit(s[width]) {
		value = value*10 + int(s[width]-'0')
		width++
	}
	if width == 0 {
		return 1, 0, false
	}
	return value, width, true
}

// checkTrailingNumeral flags the "H20 for H2O" error class before scanning:
// a formula whose trailing digit run contains 0 or 1 almost always means a
// numeral was typed in place of the letter O or I. A run of other digits
// ("Fe2O3") is an ordinary multiplier and passes.
func checkTrailingNumeral(s string) *chem.ParseError {
	end := len(s)
	start := end
	for start > 0 && isDigit(s[start-1]) {
		start--
	}
	if start == end || start == 0 {
		// No trailing digits, or digits only; the scanner handles both.
		return nil
	}
	run := s[start:end]
	if !strings.ContainsAny(run, "01") {
		return nil
	}
	hint := s[:start] + strings.NewReplacer("0", "O", "1", "I").Replace(run)
	return &chem.ParseError{
		Kind:    chem.ErrNumeralInPlaceOfSymbol,
		Token:   run,
		Pos:     start,
		Hint:    hint,
		Formula: s,
	}
}

// suggestFormula builds the "did you mean" hint for numeral-for-letter typos,
// swapping 0 for O and 1 for I. Returns "" when the swap changes nothing.
func suggestFormula(formula string) string {
	suggested := strings.NewReplacer("0", "O", "1", "I").Replace(formula)
	if suggested == formula {
		return ""
	}
	return suggested
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// decodeRune returns the first rune of s so multi-byte characters render
// whole in diagnostics.
func decodeRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

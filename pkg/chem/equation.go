package chem

import (
	"sort"
	"strconv"
	"strings"
)

// Compound is one term of an equation: the formula text as the user wrote it
// plus its expanded composition. Immutable once parsed.
type Compound struct {
	Formula     string      `json:"formula"`
	Composition Composition `json:"composition"`
}

// Equation is a parsed chemical equation. The arrow token is purely cosmetic
// and preserved for output rendering. Column order everywhere downstream is
// reactants first, then products, both in original left-to-right order.
type Equation struct {
	Reactants []Compound `json:"reactants"`
	Products  []Compound `json:"products"`
	Arrow     string     `json:"arrow"`
}

// Compounds returns all terms in column order.
func (e *Equation) Compounds() []Compound {
	out := make([]Compound, 0, len(e.Reactants)+len(e.Products))
	out = append(out, e.Reactants...)
	out = append(out, e.Products...)
	return out
}

// Elements returns the sorted distinct union of element symbols across every
// compound. This fixes the row order of the stoichiometry matrix.
func (e *Equation) Elements() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, c := range e.Compounds() {
		for s := range c.Composition {
			seen[s] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the equation as entered, without coefficients.
func (e *Equation) String() string {
	return e.Render(nil)
}

// Render renders the equation with the given coefficients prefixed to each
// term in column order. A coefficient of 1 is omitted. A nil or short slice
// leaves the remaining terms bare.
func (e *Equation) Render(coefficients []int) string {
	var sb strings.Builder
	write := func(compounds []Compound, offset int) {
		for i, c := range compounds {
			if i > 0 {
				sb.WriteString(" + ")
			}
			if idx := offset + i; idx < len(coefficients) && coefficients[idx] != 1 {
				sb.WriteString(strconv.Itoa(coefficients[idx]))
			}
			sb.WriteString(c.Formula)
		}
	}
	write(e.Reactants, 0)
	sb.WriteString(" ")
	sb.WriteString(e.Arrow)
	sb.WriteString(" ")
	write(e.Products, len(e.Reactants))
	return sb.String()
}

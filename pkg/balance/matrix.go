package balance

import (
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/linalg"
)

// BuildMatrix transcribes an equation into its stoichiometry matrix: one row
// per distinct element (lexicographic order), one column per compound
// (reactants then products, input order), with product counts negated. The
// returned symbols are the row labels in order.
//
// This is a pure transcription; no pivoting or normalization happens here.
func BuildMatrix(eq *chem.Equation) (*linalg.Matrix, []chem.Symbol) {
	elements := eq.Elements()
	compounds := eq.Compounds()

	m := linalg.NewMatrix(len(elements), len(compounds))
	for i, el := range elements {
		for j, c := range compounds {
			count := int64(c.Composition.Count(el))
			if j >= len(eq.Reactants) {
				count = -count
			}
			m.SetInt(i, j, count)
		}
	}
	return m, elements
}

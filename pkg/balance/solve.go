package balance

import (
	"fmt"
	"math/big"

	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/linalg"
)

// solveNullspace extracts the unique-up-to-scale null-space vector of the
// stoichiometry matrix, or a typed failure when the null space is empty
// (unbalanceable) or has two or more dimensions (under-constrained).
func solveNullspace(m *linalg.Matrix) ([]*big.Rat, error) {
	basis := m.Nullspace()
	switch len(basis) {
	case 0:
		return nil, &chem.BalanceError{
			Kind:   chem.ErrNoSolution,
			Detail: "the only solution is all-zero coefficients; remove any catalysts and check the formulas",
		}
	case 1:
		// fall through
	default:
		return nil, &chem.BalanceError{
			Kind:   chem.ErrAmbiguousSolution,
			Detail: fmt.Sprintf("null space has %d degrees of freedom", len(basis)),
		}
	}

	vec := basis[0]
	for _, v := range vec {
		if v.Sign() == 0 {
			// A zero coefficient in a one-dimensional null space means the
			// element/compound graph splits into independent sub-reactions.
			return nil, &chem.BalanceError{
				Kind:   chem.ErrDisconnectedSystem,
				Detail: "a compound takes coefficient zero; the equation splits into unrelated parts",
			}
		}
	}
	return vec, nil
}

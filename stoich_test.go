package stoich_test

import (
	"testing"

	"github.com/aretw0/stoich"
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	res, err := stoich.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 -> 2H2O", res.String())
	assert.Equal(t, []int{2, 1, 2}, res.Coefficients)
}

func TestBalance_TypedErrors(t *testing.T) {
	_, err := stoich.Balance("Na -> Cl")
	assert.ErrorIs(t, err, chem.ErrNoSolution)

	_, err = stoich.Balance("H20 -> H2O")
	assert.ErrorIs(t, err, chem.ErrNumeralInPlaceOfSymbol)
}

func TestParseEquation(t *testing.T) {
	eq, err := stoich.ParseEquation("CuSO4·5H2O -> CuSO4 + H2O")
	require.NoError(t, err)
	assert.Len(t, eq.Reactants, 1)
	assert.Len(t, eq.Products, 2)
}

func TestParseFormula(t *testing.T) {
	comp, err := stoich.ParseFormula("Al2(SO4)3")
	require.NoError(t, err)
	assert.Equal(t, 12, comp.Count("O"))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, stoich.Version)
}

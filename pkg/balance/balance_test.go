package balance_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/chem"
	"github.com/aretw0/stoich/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	cases := []struct {
		input    string
		coeffs   []int
		rendered string
	}{
		{"H2 + O2 -> H2O", []int{2, 1, 2}, "2H2 + O2 -> 2H2O"},
		{"Fe + O2 = Fe2O3", []int{4, 3, 2}, "4Fe + 3O2 = 2Fe2O3"},
		{"Al + H2SO4 -> Al2(SO4)3 + H2", []int{2, 3, 1, 3}, "2Al + 3H2SO4 -> Al2(SO4)3 + 3H2"},
		{"CuSO4·5H2O -> CuSO4 + H2O", []int{1, 1, 5}, "CuSO4·5H2O -> CuSO4 + 5H2O"},
		{"CH4 + O2 -> CO2 + H2O", []int{1, 2, 1, 2}, "CH4 + 2O2 -> CO2 + 2H2O"},
		{"C6H12O6 + O2 -> CO2 + H2O", []int{1, 6, 6, 6}, "C6H12O6 + 6O2 -> 6CO2 + 6H2O"},
		{"KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2", []int{2, 16, 2, 2, 8, 5},
			"2KMnO4 + 16HCl -> 2KCl + 2MnCl2 + 8H2O + 5Cl2"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			res, err := balance.Balance(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.coeffs, res.Coefficients)
			assert.Equal(t, tc.rendered, res.String())
		})
	}
}

func TestBalance_AlreadyBalanced(t *testing.T) {
	res, err := balance.Balance("NaCl -> NaCl")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Coefficients)
}

// Conservation: multiplying the stoichiometry matrix by the solution vector
// must give zero in every element row, exactly.
func TestBalance_ConservesAtoms(t *testing.T) {
	inputs := []string{
		"H2 + O2 -> H2O",
		"Al + H2SO4 -> Al2(SO4)3 + H2",
		"KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2",
		"C6H12O6 + O2 -> CO2 + H2O",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res, err := balance.Balance(input)
			require.NoError(t, err)

			m, _ := balance.BuildMatrix(res.Equation)
			vec := make([]*big.Rat, len(res.Coefficients))
			for i, c := range res.Coefficients {
				vec[i] = big.NewRat(int64(c), 1)
			}
			for _, out := range m.MulVec(vec) {
				assert.Equal(t, 0, out.Sign())
			}
		})
	}
}

// Minimality: the coefficients share no common divisor and are all positive.
func TestBalance_MinimalPositive(t *testing.T) {
	res, err := balance.Balance("Fe + O2 -> Fe2O3")
	require.NoError(t, err)

	g := new(big.Int)
	for _, c := range res.Coefficients {
		require.Positive(t, c)
		g.GCD(nil, nil, g, big.NewInt(int64(c)))
	}
	assert.Equal(t, int64(1), g.Int64())
}

func TestBalance_Deterministic(t *testing.T) {
	first, err := balance.Balance("Al + H2SO4 -> Al2(SO4)3 + H2")
	require.NoError(t, err)
	second, err := balance.Balance("Al + H2SO4 -> Al2(SO4)3 + H2")
	require.NoError(t, err)
	assert.Equal(t, first.Coefficients, second.Coefficients)
}

func TestBalance_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		kind  error
	}{
		{"unbalanceable", "Na -> Cl", chem.ErrNoSolution},
		{"impossible mass", "H2O -> H2O2", chem.ErrNoSolution},
		{"under-constrained", "C + O2 + CO -> CO2", chem.ErrAmbiguousSolution},
		{"numeral typo", "H20 -> H2O", chem.ErrNumeralInPlaceOfSymbol},
		{"missing arrow", "H2 + O2 H2O", chem.ErrMissingSeparator},
		{"unknown element", "Xy -> Xy", chem.ErrUnknownElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := balance.Balance(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}

// Rendering writes the coefficient as a leading multiplier, so re-parsing a
// rendered term gives the original composition scaled by that coefficient.
func TestBalance_RenderRoundTrip(t *testing.T) {
	res, err := balance.Balance("Al + H2SO4 -> Al2(SO4)3 + H2")
	require.NoError(t, err)

	reparsed, err := parser.ParseEquation(res.String())
	require.NoError(t, err)

	original := res.Equation.Compounds()
	scaled := reparsed.Compounds()
	require.Len(t, scaled, len(original))
	for i, c := range original {
		want := make(chem.Composition)
		want.Merge(c.Composition, res.Coefficients[i])
		assert.True(t, want.Equal(scaled[i].Composition),
			"term %d: want %v, got %v", i, want, scaled[i].Composition)
	}
}

func TestResult_SideCoefficients(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.ReactantCoefficients())
	assert.Equal(t, []int{2}, res.ProductCoefficients())
}

func TestBalance_Trace(t *testing.T) {
	res, err := balance.Balance("H2 + O2 -> H2O")
	require.NoError(t, err)
	require.NotNil(t, res.Trace)

	md := res.Trace.Markdown()
	assert.Contains(t, md, "Stoichiometry matrix")
	assert.Contains(t, md, "Null-space vector")
	assert.Contains(t, md, "2H2 + O2 -> 2H2O")
	assert.Equal(t, []chem.Symbol{"H", "O"}, res.Trace.Elements)
}

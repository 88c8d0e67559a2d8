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

func TestBuildMatrix(t *testing.T) {
	eq, err := parser.ParseEquation("H2 + O2 -> H2O")
	require.NoError(t, err)

	m, elements := balance.BuildMatrix(eq)
	assert.Equal(t, []chem.Symbol{"H", "O"}, elements)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	// H row: 2 in H2, 0 in O2, -2 in H2O (products negated).
	assert.Equal(t, 0, m.Get(0, 0).Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, m.Get(0, 1).Sign())
	assert.Equal(t, 0, m.Get(0, 2).Cmp(big.NewRat(-2, 1)))

	// O row: 0, 2, -1.
	assert.Equal(t, 0, m.Get(1, 0).Sign())
	assert.Equal(t, 0, m.Get(1, 1).Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, m.Get(1, 2).Cmp(big.NewRat(-1, 1)))
}

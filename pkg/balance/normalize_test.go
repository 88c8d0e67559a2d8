package balance

import (
	"math/big"
	"testing"

	"github.com/aretw0/stoich/pkg/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rats(fracs ...[2]int64) []*big.Rat {
	out := make([]*big.Rat, len(fracs))
	for i, f := range fracs {
		out[i] = big.NewRat(f[0], f[1])
	}
	return out
}

func TestNormalize(t *testing.T) {
	// Water vector as elimination produces it: [1, 1/2, 1].
	coeffs, mult, scaled, err := normalize(rats([2]int64{1, 1}, [2]int64{1, 2}, [2]int64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, coeffs)
	assert.Equal(t, int64(2), mult.Int64())
	require.Len(t, scaled, 3)
	assert.Equal(t, int64(2), scaled[0].Int64())
}

func TestNormalize_ReducesCommonFactor(t *testing.T) {
	coeffs, _, _, err := normalize(rats([2]int64{4, 1}, [2]int64{6, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, coeffs)
}

func TestNormalize_FlipsAllNegative(t *testing.T) {
	coeffs, _, _, err := normalize(rats([2]int64{-2, 1}, [2]int64{-1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, coeffs)
}

func TestNormalize_MixedSigns(t *testing.T) {
	_, _, _, err := normalize(rats([2]int64{1, 1}, [2]int64{-1, 1}))
	require.Error(t, err)
	assert.ErrorIs(t, err, chem.ErrNonPositiveCoefficient)
}

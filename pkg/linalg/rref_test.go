package linalg_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/stoich/pkg/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRREF(t *testing.T) {
	m := linalg.FromInts([][]int{
		{1, 2, 3},
		{2, 4, 6},
		{1, 0, 1},
	})
	rref, pivots := m.RREF()
	assert.Equal(t, []int{0, 1}, pivots)

	// Pivot entries reduce to exactly 1, entries above and below to 0.
	assert.Equal(t, 0, rref.Get(0, 0).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, rref.Get(1, 1).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, rref.Get(1, 0).Sign())
	assert.Equal(t, 0, rref.Get(2, 0).Sign())

	// Source matrix is untouched.
	assert.Equal(t, 0, m.Get(1, 0).Cmp(big.NewRat(2, 1)))
}

func TestRank(t *testing.T) {
	assert.Equal(t, 2, linalg.FromInts([][]int{{1, 0}, {0, 1}}).Rank())
	assert.Equal(t, 1, linalg.FromInts([][]int{{1, 2}, {2, 4}}).Rank())
	assert.Equal(t, 0, linalg.FromInts([][]int{{0, 0}}).Rank())
}

func TestNullspace_Trivial(t *testing.T) {
	m := linalg.FromInts([][]int{{1, 0}, {0, 1}})
	assert.Empty(t, m.Nullspace())
}

func TestNullspace_OneDimensional(t *testing.T) {
	// The water system: 2a - 2c = 0 (hydrogen), 2b - c = 0 (oxygen).
	m := linalg.FromInts([][]int{
		{2, 0, -2},
		{0, 2, -1},
	})
	basis := m.Nullspace()
	require.Len(t, basis, 1)

	// Every basis vector must lie in the kernel.
	for _, out := range m.MulVec(basis[0]) {
		assert.Equal(t, 0, out.Sign())
	}
	// Free variable convention: the free column entry is exactly 1.
	assert.Equal(t, 0, basis[0][2].Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, basis[0][0].Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, basis[0][1].Cmp(big.NewRat(1, 2)))
}

func TestNullspace_TwoDimensional(t *testing.T) {
	m := linalg.FromInts([][]int{{1, 1, 1}})
	basis := m.Nullspace()
	require.Len(t, basis, 2)
	for _, vec := range basis {
		for _, out := range m.MulVec(vec) {
			assert.Equal(t, 0, out.Sign())
		}
	}
}

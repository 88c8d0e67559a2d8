package linalg_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/stoich/pkg/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInts(t *testing.T) {
	m := linalg.FromInts([][]int{{1, 2}, {3, 4}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 0, m.Get(1, 0).Cmp(big.NewRat(3, 1)))
}

func TestMatrix_GetReturnsCopy(t *testing.T) {
	m := linalg.FromInts([][]int{{1}})
	got := m.Get(0, 0)
	got.SetInt64(99)
	assert.Equal(t, 0, m.Get(0, 0).Cmp(big.NewRat(1, 1)))
}

func TestMatrix_Clone(t *testing.T) {
	m := linalg.FromInts([][]int{{1, 2}, {3, 4}})
	c := m.Clone()
	c.SetInt(0, 0, 42)
	assert.Equal(t, 0, m.Get(0, 0).Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, c.Get(0, 0).Cmp(big.NewRat(42, 1)))
}

func TestMatrix_MulVec(t *testing.T) {
	m := linalg.FromInts([][]int{{2, 0, -2}, {0, 2, -1}})
	x := []*big.Rat{big.NewRat(2, 1), big.NewRat(1, 1), big.NewRat(2, 1)}
	out := m.MulVec(x)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Sign())
	assert.Equal(t, 0, out[1].Sign())
}

func TestMatrix_String(t *testing.T) {
	m := linalg.NewMatrix(1, 2)
	m.Set(0, 0, big.NewRat(1, 2))
	m.SetInt(0, 1, 3)
	assert.Equal(t, "[1/2 3]", m.String())
}

func TestMatrix_Panics(t *testing.T) {
	assert.Panics(t, func() { linalg.NewMatrix(0, 1) })
	assert.Panics(t, func() { linalg.FromInts([][]int{{1}, {2, 3}}) })
	assert.Panics(t, func() {
		linalg.FromInts([][]int{{1}}).Get(0, 1)
	})
}

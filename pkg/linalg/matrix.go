// Package linalg provides exact rational matrices and the row-reduction
// routines the balancing engine needs. All arithmetic is performed on
// math/big.Rat values; no floating point is involved anywhere, since a single
// rounding error would silently corrupt the integer coefficients read off the
// null space.
package linalg

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a dense rows×cols matrix of exact rationals.
type Matrix struct {
	rows, cols int
	data       [][]*big.Rat
}

// NewMatrix allocates a zero matrix of the given shape.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid shape %dx%d", rows, cols))
	}
	data := make([][]*big.Rat, rows)
	for i := range data {
		data[i] = make([]*big.Rat, cols)
		for j := range data[i] {
			data[i][j] = new(big.Rat)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// FromInts builds a matrix from integer entries, row-major.
func FromInts(entries [][]int) *Matrix {
	if len(entries) == 0 || len(entries[0]) == 0 {
		panic("linalg: FromInts needs at least one entry")
	}
	m := NewMatrix(len(entries), len(entries[0]))
	for i, row := range entries {
		if len(row) != m.cols {
			panic(fmt.Sprintf("linalg: ragged row %d: %d entries, want %d", i, len(row), m.cols))
		}
		for j, v := range row {
			m.data[i][j].SetInt64(int64(v))
		}
	}
	return m
}

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// Get returns a copy of the entry at (row, col).
func (m *Matrix) Get(row, col int) *big.Rat {
	m.checkBounds(row, col)
	return new(big.Rat).Set(m.data[row][col])
}

// SetInt sets an entry to an integer value.
func (m *Matrix) SetInt(row, col int, v int64) {
	m.checkBounds(row, col)
	m.data[row][col].SetInt64(v)
}

// Set copies v into the entry at (row, col).
func (m *Matrix) Set(row, col int, v *big.Rat) {
	m.checkBounds(row, col)
	m.data[row][col].Set(v)
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		for j := range m.data[i] {
			out.data[i][j].Set(m.data[i][j])
		}
	}
	return out
}

// MulVec computes m·x as a fresh vector. Panics if len(x) != Cols.
func (m *Matrix) MulVec(x []*big.Rat) []*big.Rat {
	if len(x) != m.cols {
		panic(fmt.Sprintf("linalg: MulVec needs %d entries, got %d", m.cols, len(x)))
	}
	out := make([]*big.Rat, m.rows)
	tmp := new(big.Rat)
	for i := 0; i < m.rows; i++ {
		sum := new(big.Rat)
		for j := 0; j < m.cols; j++ {
			sum.Add(sum, tmp.Mul(m.data[i][j], x[j]))
		}
		out[i] = sum
	}
	return out
}

// String renders the matrix with rows on separate lines, for diagnostics and
// "show work" output.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(ratString(m.data[i][j]))
		}
		sb.WriteString("]")
		if i < m.rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ratString renders integers without the "/1" suffix.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

package linalg

import "math/big"

// RREF returns the reduced row-echelon form of m together with the pivot
// column index of each pivot row, in order. m itself is not modified.
func (m *Matrix) RREF() (*Matrix, []int) {
	r := m.Clone()
	var pivots []int

	pivotRow := 0
	tmp := new(big.Rat)
	for col := 0; col < r.cols && pivotRow < r.rows; col++ {
		// Find a non-zero pivot in this column at or below pivotRow.
		sel := -1
		for i := pivotRow; i < r.rows; i++ {
			if r.data[i][col].Sign() != 0 {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		r.data[pivotRow], r.data[sel] = r.data[sel], r.data[pivotRow]

		// Scale the pivot row so the pivot becomes 1.
		inv := new(big.Rat).Inv(r.data[pivotRow][col])
		for j := col; j < r.cols; j++ {
			r.data[pivotRow][j].Mul(r.data[pivotRow][j], inv)
		}

		// Eliminate the column everywhere else.
		for i := 0; i < r.rows; i++ {
			if i == pivotRow || r.data[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(r.data[i][col])
			for j := col; j < r.cols; j++ {
				r.data[i][j].Sub(r.data[i][j], tmp.Mul(factor, r.data[pivotRow][j]))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}
	return r, pivots
}

// Rank returns the rank of m.
func (m *Matrix) Rank() int {
	_, pivots := m.RREF()
	return len(pivots)
}

// Nullspace returns a basis of the null space of m: one vector per free
// column after reduction. An empty result means the system admits only the
// trivial solution.
func (m *Matrix) Nullspace() [][]*big.Rat {
	rref, pivots := m.RREF()

	pivotFor := make(map[int]int, len(pivots)) // pivot column -> pivot row
	for row, col := range pivots {
		pivotFor[col] = row
	}

	var basis [][]*big.Rat
	for col := 0; col < m.cols; col++ {
		if _, isPivot := pivotFor[col]; isPivot {
			continue
		}
		// Free column: set it to 1 and back-substitute the pivot variables.
		vec := make([]*big.Rat, m.cols)
		for j := range vec {
			vec[j] = new(big.Rat)
		}
		vec[col].SetInt64(1)
		for pcol, prow := range pivotFor {
			vec[pcol].Neg(rref.data[prow][col])
		}
		basis = append(basis, vec)
	}
	return basis
}

// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMul = "Mul"

// matrixErrorf tags an error with the operation that produced it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul returns the product a×b.
// Returns ErrDimensionMismatch when a.Cols() != b.Rows().
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// row-major i-k-j order: a.data layout i*aCols + k, b.data layout k*bCols + j
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Product multiplies two matrices given as rows:
//
//	[[1 2 3]] × [[4] [5] [6]] = [[32]]
//
// Returns ErrBadShape for empty or ragged operands and ErrDimensionMismatch
// when the column count of a differs from the row count of b.
func Product(a, b [][]float64) ([][]float64, error) {
	da, err := FromRows(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := FromRows(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := Mul(da, db)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// SPDX-License-Identifier: MIT

package matrix

// ZigZag returns the n×n matrix whose cells are numbered 0..n²-1 along the
// JPEG zig-zag path: right along the top, then diagonally down-left and
// up-right in turn.
//
//	3 → [[0 1 5]
//	     [2 4 6]
//	     [3 7 8]]
//
// Returns ErrBadShape for n < 1.
// Complexity: O(n²).
func ZigZag(n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadShape
	}
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	next := 0
	// s indexes the anti-diagonal i+j = s
	for s := 0; s <= 2*(n-1); s++ {
		lo, hi := max(0, s-n+1), min(s, n-1)
		if s%2 == 1 {
			for i := lo; i <= hi; i++ {
				m[i][s-i] = next
				next++
			}
		} else {
			for i := hi; i >= lo; i-- {
				m[i][s-i] = next
				next++
			}
		}
	}

	return m, nil
}

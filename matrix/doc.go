// Package matrix provides the matrix katas: the product of two matrices and
// the JPEG zig-zag ordering of a square matrix.
//
// What:
//
//   - Dense: a row-major float64 matrix with error-returning accessors.
//   - Mul / Product: matrix multiplication, on Dense or on plain [][]float64.
//   - ZigZag: the n×n matrix numbering cells along the JPEG zig-zag path.
//
// Errors:
//
//   - ErrBadShape          empty or ragged input, non-positive size.
//   - ErrDimensionMismatch a.Cols() != b.Rows() in a product.
//   - ErrOutOfRange        At/Set outside the matrix.
//
// Complexity:
//
//   - Mul:    O(r·k·c) time, O(r·c) memory.
//   - ZigZag: O(n²) time and memory.
package matrix

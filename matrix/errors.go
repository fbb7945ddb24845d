// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (possibly wrapped with call-site
// context via %w); tests match them with errors.Is. No routine panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned for empty or ragged operands and for
	// non-positive requested sizes.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// Package text holds the string katas: reversal, first non-repeated rune,
// bracket balance, interval notation, common directory prefix, word wrapping
// and permutations.
//
// Wrap and Permutations are lazy generators (iter.Seq[string]); every range
// over them recomputes from the original input.
//
// Rune-aware throughout: lengths are counted in runes and Reverse keeps
// combining marks attached to their base character (via
// golang.org/x/text/unicode/norm).
package text

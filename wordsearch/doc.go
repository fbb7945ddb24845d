// Package wordsearch decides whether a word can be traced through a grid of
// characters as a "snake": a path of adjacent cells that never crosses itself.
//
// What:
//
//   - Grid wraps a rectangular block of text rows (decoded as runes).
//   - Find reports the first simple path spelling a word, Contains the verdict.
//   - Exists validates rows and answers in one call.
//
// Algorithm:
//
//	Depth-first backtracking with an explicit frame stack. Every cell that
//	matches the first rune seeds an attempt; the top frame tries its
//	neighbours in a fixed order (N, E, S, W, then diagonals under Conn8),
//	pushes the first unused neighbour matching the next rune and pops itself
//	once every neighbour was tried. A []bool arena marks the cells of the
//	current path; popping a frame releases its cell.
//
//	Per attempt the search moves through
//	Unstarted → Matching(k) → Success | Backtrack(k-1) | Exhausted,
//	observable through WithTrace.
//
// Conventions:
//
//   - The empty word is always found (empty path).
//   - A one-rune word is found iff the rune occurs in the grid.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): neighbourhood, default Conn4.
//   - WithFold(true): case-insensitive comparison.
//   - WithTrace(fn): state hook called on every transition.
//
// Errors:
//
//   - ErrInvalidInput umbrella for:
//   - ErrEmptyGrid       no rows, or rows without characters.
//   - ErrNonRectangular  rows of differing rune length.
//
// Complexity:
//
//   - NewGrid: O(W×H) time and memory.
//   - Find:    O(W×H×d^L) worst case (d = 4 or 8, L = word length), O(W×H + L) memory.
package wordsearch

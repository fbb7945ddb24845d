// Package braces implements shell-style brace expansion over plain strings.
//
// What:
//
//   - Expand turns "~/{Downloads,Pictures}/*.{jpg,png}" into the cross-product
//     of concrete strings, resolving nested groups such as "jp{e,}g".
//   - The result is a finite, restartable lazy sequence (iter.Seq[string]);
//     every range over it recomputes the expansion from the original input.
//   - ExpandAll materializes the same sequence into a slice.
//
// Algorithm:
//
//	Candidates are processed breadth-first. The head candidate is scanned left
//	to right with a stack of open positions; the first closing brace resolves
//	the innermost group. Its body is split on the separator and every
//	alternative is substituted for the whole group, the new candidates go to
//	the tail of the queue and the parent is dropped. A candidate without an
//	opening brace is final and is yielded.
//
// Options:
//
//   - WithDelimiters(open, close, sep): group syntax, default '{', '}', ','.
//   - WithDedup(on): skip candidates already produced in the same run (default on).
//
// Errors:
//
//   - ErrInvalidInput: umbrella sentinel for rejected input.
//   - ErrUnbalanced:   an unmatched closing or unclosed opening delimiter.
//
// Complexity:
//
//   - Time:   O(R·L) per run, R = number of produced candidates, L = input length.
//   - Memory: O(R·L) for the pending queue and the dedup set.
package braces

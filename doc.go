// Package katas is a collection of small, self-contained algorithm exercises
// written as ordinary Go libraries.
//
// Each kata family lives in its own package with input validation through
// sentinel errors, functional options where behaviour is configurable, lazy
// iter.Seq generators for multi-valued results, and tests plus runnable
// examples:
//
//	braces/     - shell-style brace expansion ({a,b}c → ac, bc)
//	wordsearch/ - snaking word search over a letter grid, with path reporting
//	numeric/    - FizzBuzz, factorial, Luhn, digital root, radix strings, ranges, stock profit
//	text/       - grapheme-aware reverse, bracket balance, word wrap, permutations, …
//	geometry/   - triangles, rectangle overlap, circle containment
//	matrix/     - dense matrix product and the zig-zag matrix
//	tictactoe/  - winner of a 3×3 position
//	poker/      - five-card hand ranking
//	dominoes/   - can a set of tiles form one row
//	bankocr/    - seven-segment account number reading
//	figure/     - ASCII figure decomposition into rectangles
//	compass/    - the 32-point compass rose
//	timespan/   - localized "5 minutes ago" phrases
//	shortener/  - stateless reversible URL shortening
//
// Runnable programs live under examples/.
package katas

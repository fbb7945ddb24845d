// Package numeric collects small integer puzzles: FizzBuzz, factorial,
// inclusive sums, digit reversal, the Luhn checksum, digital roots, radix
// conversion, range extraction and the greedy stock-profit kata.
//
// All functions are pure. Inputs that have no meaningful answer (negative
// factorials, radices outside [2,10], non-digit checksum input) are rejected
// with sentinels wrapping ErrInvalidInput; overflow is reported as ErrOverflow.
package numeric

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella sentinel for rejected arguments.
	ErrInvalidInput = errors.New("numeric: invalid input")
	// ErrNegative indicates a negative argument where only n ≥ 0 makes sense.
	ErrNegative = fmt.Errorf("%w: negative argument", ErrInvalidInput)
	// ErrRadix indicates a radix outside [MinRadix, MaxRadix].
	ErrRadix = fmt.Errorf("%w: radix out of range", ErrInvalidInput)
	// ErrNotDigits indicates a checksum input containing non-digit runes.
	ErrNotDigits = fmt.Errorf("%w: not a digit string", ErrInvalidInput)
	// ErrOverflow indicates the result does not fit in uint64.
	ErrOverflow = errors.New("numeric: result overflows uint64")
)

const (
	// MinRadix and MaxRadix bound ToNaryString.
	MinRadix = 2
	MaxRadix = 10

	// maxFactorial is the largest n with n! < 2^64.
	maxFactorial = 20
)

package numeric

import "strconv"

// FizzBuzz returns "Fizz" for multiples of three, "Buzz" for multiples of
// five, "FizzBuzz" for multiples of both and the decimal number otherwise.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Factorial returns n!. 0! is 1.
// Returns ErrNegative for n < 0 and ErrOverflow for n > 20.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > maxFactorial {
		return 0, ErrOverflow
	}
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f, nil
}

// SumBetween returns n1 + (n1+1) + … + n2, or 0 when n1 > n2.
// Complexity: O(1).
func SumBetween(n1, n2 int) int {
	if n1 > n2 {
		return 0
	}
	// arithmetic series; one of the two factors is always even
	count := n2 - n1 + 1
	if count%2 == 0 {
		return (count / 2) * (n1 + n2)
	}

	return count * ((n1 + n2) / 2)
}

// ReverseInteger puts the decimal digits of n in reverse order, keeping the
// sign: 12345 → 54321, -120 → -21.
func ReverseInteger(n int) int {
	sign := 1
	if n < 0 {
		sign, n = -1, -n
	}
	r := 0
	for ; n > 0; n /= 10 {
		r = r*10 + n%10
	}

	return sign * r
}

// DigitalRoot sums the digits of n repeatedly until one digit remains.
func DigitalRoot(n uint64) uint64 {
	for n > 9 {
		var sum uint64
		for ; n > 0; n /= 10 {
			sum += n % 10
		}
		n = sum
	}

	return n
}

// ToNaryString renders n in the given radix (2..10): 365, 3 → "111112".
// Returns ErrRadix for radices outside [MinRadix, MaxRadix].
func ToNaryString(n int64, radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", ErrRadix
	}

	return strconv.FormatInt(n, radix), nil
}

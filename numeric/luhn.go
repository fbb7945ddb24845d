package numeric

import "strconv"

// ValidLuhn reports whether digits passes the Luhn checksum: every second
// digit from the right is doubled (minus 9 when above 9) and the total must be
// divisible by 10.
// Returns ErrNotDigits for empty input or any non-digit rune.
func ValidLuhn(digits string) (bool, error) {
	if digits == "" {
		return false, ErrNotDigits
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return false, ErrNotDigits
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return sum%10 == 0, nil
}

// IsCreditCardNumber validates a card number given as an integer.
func IsCreditCardNumber(ccn uint64) bool {
	ok, _ := ValidLuhn(strconv.FormatUint(ccn, 10))
	return ok
}

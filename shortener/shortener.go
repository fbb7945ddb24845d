// Package shortener shortens URLs without storage.
//
// A URL is read two characters at a time; each pair becomes one rune of the
// CJK Unified Ideographs block, so the code has about half as many characters
// as the URL. Decoding reverses the mapping exactly. An odd trailing character
// is paired with a padding slot.
//
// Only the characters URLs carry unescaped are accepted: letters, digits and
// -_.~!*'();:@&=+$,/?#[]. '%' is not among them, so percent-encoded URLs
// are rejected.
package shortener

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidURL indicates a character outside Alphabet.
	ErrInvalidURL = errors.New("shortener: invalid url")
	// ErrInvalidCode indicates a rune that no URL encodes to.
	ErrInvalidCode = errors.New("shortener: invalid code")
)

// Alphabet lists the URL characters that can be encoded.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789-_.~!*'();:@&=+$,/?#[]"

const (
	// base is the first CJK Unified Ideograph.
	base = 0x4E00
	// pad marks the missing second half of an odd tail.
	pad = len(Alphabet)
	// slots is the second-character range: every letter plus pad.
	slots = len(Alphabet) + 1
)

// index maps an ASCII byte to its Alphabet position, -1 if absent.
var index = func() (t [utf8.RuneSelf]int) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = i
	}

	return t
}()

func position(r rune) int {
	if r < 0 || r >= utf8.RuneSelf {
		return -1
	}

	return index[r]
}

// Encode returns the short code for url.
func Encode(url string) (string, error) {
	var b strings.Builder
	b.Grow((len(url) + 1) / 2 * 3)

	for i := 0; i < len(url); i += 2 {
		first := position(rune(url[i]))
		if first < 0 {
			return "", fmt.Errorf("%w: %q at byte %d", ErrInvalidURL, url[i], i)
		}
		second := pad
		if i+1 < len(url) {
			if second = position(rune(url[i+1])); second < 0 {
				return "", fmt.Errorf("%w: %q at byte %d", ErrInvalidURL, url[i+1], i+1)
			}
		}
		b.WriteRune(rune(base + first*slots + second))
	}

	return b.String(), nil
}

// Decode returns the URL that produced code.
func Decode(code string) (string, error) {
	out := make([]byte, 0, 2*utf8.RuneCountInString(code))

	for i, r := range code {
		v := int(r) - base
		if r == utf8.RuneError || v < 0 || v >= len(Alphabet)*slots {
			return "", fmt.Errorf("%w: %q at byte %d", ErrInvalidCode, r, i)
		}
		first, second := v/slots, v%slots
		out = append(out, Alphabet[first])
		if second == pad {
			// padding only closes a code
			if i+utf8.RuneLen(r) != len(code) {
				return "", fmt.Errorf("%w: padding at byte %d", ErrInvalidCode, i)
			}
			break
		}
		out = append(out, Alphabet[second])
	}

	return string(out), nil
}

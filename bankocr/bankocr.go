// Package bankocr reads account numbers drawn with pipes and underscores.
//
// Each digit is a 3×3 glyph spread over three text lines:
//
//	 _     _  _     _  _  _  _  _
//	| |  | _| _||_||_ |_   ||_||_|
//	|_|  ||_  _|  | _||_|  ||_| _|
//
// Lines are separated by '\n'; a trailing newline and a fourth blank line are
// tolerated.
package bankocr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates the drawing is not three equal lines whose
	// width is a multiple of GlyphWidth.
	ErrInvalidInput = errors.New("bankocr: invalid input")
	// ErrIllegible indicates a glyph that matches no digit.
	ErrIllegible = errors.New("bankocr: illegible glyph")
)

const (
	// GlyphWidth is the number of columns per digit.
	GlyphWidth = 3
	// GlyphHeight is the number of lines per digit.
	GlyphHeight = 3
)

var reference = [GlyphHeight]string{
	" _     _  _     _  _  _  _  _ ",
	"| |  | _| _||_||_ |_   ||_||_|",
	"|_|  ||_  _|  | _||_|  ||_| _|",
}

// glyphs maps the nine characters of a glyph, read row by row, to its digit.
var glyphs = buildGlyphs()

func buildGlyphs() map[string]byte {
	m := make(map[string]byte, 10)
	for d := 0; d < 10; d++ {
		m[glyphAt(reference[:], d)] = byte('0' + d)
	}

	return m
}

func glyphAt(lines []string, pos int) string {
	var b strings.Builder
	b.Grow(GlyphWidth * GlyphHeight)
	for _, l := range lines {
		b.WriteString(l[pos*GlyphWidth : (pos+1)*GlyphWidth])
	}

	return b.String()
}

// Parse returns the digits of the account drawing, leading zeros kept.
func Parse(account string) (string, error) {
	// 1. Split and drop trailing blank lines.
	lines := strings.Split(account, "\n")
	for len(lines) > GlyphHeight && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != GlyphHeight {
		return "", fmt.Errorf("%w: %d lines, want %d", ErrInvalidInput, len(lines), GlyphHeight)
	}

	// 2. Check the shape. Editors often trim trailing spaces, so pad to the
	//    longest line first.
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	if width == 0 || width%GlyphWidth != 0 {
		return "", fmt.Errorf("%w: width %d is not a multiple of %d", ErrInvalidInput, width, GlyphWidth)
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	// 3. Look up each glyph.
	digits := make([]byte, 0, width/GlyphWidth)
	for pos := 0; pos < width/GlyphWidth; pos++ {
		g := glyphAt(lines, pos)
		d, ok := glyphs[g]
		if !ok {
			return "", fmt.Errorf("%w at position %d: %q", ErrIllegible, pos, g)
		}
		digits = append(digits, d)
	}

	return string(digits), nil
}

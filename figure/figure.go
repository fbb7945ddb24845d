// Package figure breaks an ASCII drawing made of '+', '-', '|' and spaces
// into the rectangles it is built from.
//
// Every '+' is tried as a top-left corner. Moving right along the top edge,
// each further '+' is a candidate top-right corner; the sides are followed
// down until both reach a '+' joined by a complete bottom edge. The first such
// match is the smallest rectangle at that corner, so shared edges split the
// figure into its basic parts rather than their unions.
//
// Rectangles are yielded top to bottom, then left to right, each rendered as
// a standalone figure with trailing newlines.
package figure

import (
	"iter"
	"strings"
)

const (
	corner     = '+'
	horizontal = '-'
	vertical   = '|'
)

// Rectangles returns a lazy sequence of the basic rectangles of figure.
func Rectangles(figure string) iter.Seq[string] {
	rows := strings.Split(figure, "\n")
	at := func(r, c int) byte {
		if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
			return ' '
		}

		return rows[r][c]
	}

	return func(yield func(string) bool) {
		for r, row := range rows {
			for c := 0; c < len(row); c++ {
				if row[c] != corner {
					continue
				}
				w, h, ok := smallestAt(at, len(rows), r, c)
				if !ok {
					continue
				}
				if !yield(Render(w, h)) {
					return
				}
			}
		}
	}
}

// smallestAt finds the narrowest, then shortest, rectangle whose top-left
// corner is (r, c). w and h are interior sizes.
func smallestAt(at func(r, c int) byte, height, r, c int) (w, h int, ok bool) {
	for c2 := c + 1; ; c2++ {
		top := at(r, c2)
		if top != horizontal && top != corner {
			return 0, 0, false
		}
		if top != corner {
			continue
		}
		for k := r + 1; k < height; k++ {
			left, right := at(k, c), at(k, c2)
			if left == corner && right == corner && edgeAt(at, k, c, c2) {
				return c2 - c - 1, k - r - 1, true
			}
			if !isSide(left) || !isSide(right) {
				break
			}
		}
	}
}

// edgeAt reports whether row r is a horizontal edge strictly between c1 and c2.
func edgeAt(at func(r, c int) byte, r, c1, c2 int) bool {
	for c := c1 + 1; c < c2; c++ {
		if ch := at(r, c); ch != horizontal && ch != corner {
			return false
		}
	}

	return true
}

func isSide(b byte) bool { return b == vertical || b == corner }

// Render draws a rectangle with w columns and h rows inside its border.
func Render(w, h int) string {
	edge := "+" + strings.Repeat("-", w) + "+\n"
	fill := "|" + strings.Repeat(" ", w) + "|\n"

	var b strings.Builder
	b.Grow(len(edge) * (h + 2))
	b.WriteString(edge)
	for range h {
		b.WriteString(fill)
	}
	b.WriteString(edge)

	return b.String()
}

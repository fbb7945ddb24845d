package text

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Wrap breaks text into lines of at most columns runes, at word boundaries
// only. Runs of whitespace collapse to one space. A word longer than columns
// gets a line of its own.
func Wrap(text string, columns int) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			line  strings.Builder
			width int
		)
		for _, word := range strings.Fields(text) {
			n := utf8.RuneCountInString(word)
			switch {
			case width == 0:
				line.WriteString(word)
				width = n
			case width+1+n <= columns:
				line.WriteByte(' ')
				line.WriteString(word)
				width += 1 + n
			default:
				if !yield(line.String()) {
					return
				}
				line.Reset()
				line.WriteString(word)
				width = n
			}
		}
		if width > 0 {
			yield(line.String())
		}
	}
}

// Permutations yields every ordering of the runes of s, assuming they are
// distinct. Each permutation of the first k runes spawns k+1 new ones by
// inserting rune k+1 at every position. The empty string yields nothing.
// Memory: O(n²) for the in-flight prefixes, not O(n!).
func Permutations(s string) iter.Seq[string] {
	rs := []rune(s)

	return func(yield func(string) bool) {
		if len(rs) == 0 {
			return
		}
		permute(rs, func(p []rune) bool {
			return yield(string(p))
		})
	}
}

// permute feeds every permutation of rs to yield and reports whether the
// consumer wants more.
func permute(rs []rune, yield func([]rune) bool) bool {
	if len(rs) == 1 {
		return yield([]rune{rs[0]})
	}
	last := rs[len(rs)-1]

	return permute(rs[:len(rs)-1], func(p []rune) bool {
		for k := 0; k <= len(p); k++ {
			q := make([]rune, 0, len(p)+1)
			q = append(q, p[:k]...)
			q = append(q, last)
			q = append(q, p[k:]...)
			if !yield(q) {
				return false
			}
		}

		return true
	})
}

package text

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Reverse puts the characters of s in reverse order. A base character and the
// combining marks that follow it move as one unit, so accents stay on their
// letter. The result is NFC-normalized.
func Reverse(s string) string {
	var it norm.Iter
	it.InitString(norm.NFC, s)

	var segs [][]byte
	for !it.Done() {
		// Next reuses its buffer; keep a copy
		segs = append(segs, append([]byte(nil), it.Next()...))
	}

	out := make([]byte, 0, len(s))
	for i := len(segs) - 1; i >= 0; i-- {
		out = append(out, segs[i]...)
	}

	return string(out)
}

// FirstSingleChar returns the first rune of s that occurs exactly once.
// ok is false when every rune repeats.
func FirstSingleChar(s string) (r rune, ok bool) {
	counts := make(map[rune]int, len(s))
	for _, c := range s {
		counts[c]++
	}
	for _, c := range s {
		if counts[c] == 1 {
			return c, true
		}
	}

	return 0, false
}

// bracketPairs maps every closing bracket to its opening counterpart.
var bracketPairs = map[rune]rune{
	']': '[',
	')': '(',
	'}': '{',
	'>': '<',
}

// BracketsBalanced reports whether the brackets [], (), {} and <> in s pair up
// without mis-nesting. Other runes are ignored; the empty string is balanced.
func BracketsBalanced(s string) bool {
	var stack []rune
	for _, r := range s {
		switch r {
		case '[', '(', '{', '<':
			stack = append(stack, r)
		case ']', ')', '}', '>':
			if len(stack) == 0 || stack[len(stack)-1] != bracketPairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}

// IntervalString renders the interval between a and b in mathematical
// notation, smaller bound first: (0, 1], [3, 5].
func IntervalString(a, b float64, startIncluded, endIncluded bool) string {
	if a > b {
		a, b = b, a
	}
	var sb strings.Builder
	if startIncluded {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(b, 'f', -1, 64))
	if endIncluded {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}

	return sb.String()
}

// CommonDirectoryPath returns the longest directory shared by all paths,
// including its trailing slash, or "" when there is none.
//
//	["/web/images/a.png", "/web/images/b.png"] → "/web/images/"
//	["/web/favicon.ico", "/web-scripts/dump"]  → "/"
func CommonDirectoryPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	prefix := paths[0]
	for _, p := range paths[1:] {
		n := 0
		for n < len(prefix) && n < len(p) && prefix[n] == p[n] {
			n++
		}
		prefix = prefix[:n]
	}

	return prefix[:strings.LastIndexByte(prefix, '/')+1]
}

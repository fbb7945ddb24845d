package braces

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Expand validates s and returns the lazy sequence of its brace expansions.
// The order of results is unspecified; ranging twice recomputes from scratch.
// Input without groups yields exactly itself.
//
// Returns ErrUnbalanced (wrapping ErrInvalidInput) if a delimiter is unmatched.
func Expand(s string, opts ...Option) (iter.Seq[string], error) {
	// 1. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Fail fast on malformed input, before anything is produced
	if err := validate(s, o); err != nil {
		return nil, err
	}

	// 3. Each range starts an independent run
	return func(yield func(string) bool) {
		expand(s, o, yield)
	}, nil
}

// ExpandAll is Expand followed by collecting every result into a slice.
func ExpandAll(s string, opts ...Option) ([]string, error) {
	seq, err := Expand(s, opts...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// validate checks that every closing delimiter has an opening one before it
// and that nothing stays open at the end of s.
func validate(s string, o Options) error {
	depth := 0
	for i, r := range s {
		switch r {
		case o.Open:
			depth++
		case o.Close:
			if depth == 0 {
				return fmt.Errorf("%w: unmatched %q at byte %d", ErrUnbalanced, r, i)
			}
			depth--
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed %q", ErrUnbalanced, depth, o.Open)
	}

	return nil
}

// expand drives the breadth-first candidate queue until it drains or yield
// asks to stop.
func expand(s string, o Options, yield func(string) bool) {
	var seen map[string]struct{}
	if o.Dedup {
		seen = map[string]struct{}{s: {}}
	}
	openLen := utf8.RuneLen(o.Open)
	closeLen := utf8.RuneLen(o.Close)
	sep := string(o.Separator)

	queue := []string{s}
	var (
		head, next string
		g          group
		ok         bool
	)
	for len(queue) > 0 {
		head = queue[0]
		queue[0] = ""
		queue = queue[1:]

		g, ok = innermost(head, o)
		if !ok {
			if !yield(head) {
				return
			}
			continue
		}

		prefix, suffix := head[:g.begin], head[g.end+closeLen:]
		for _, alt := range strings.Split(head[g.begin+openLen:g.end], sep) {
			next = prefix + alt + suffix
			if seen != nil {
				if _, dup := seen[next]; dup {
					continue
				}
				seen[next] = struct{}{}
			}
			queue = append(queue, next)
		}
	}
}

// innermost returns the group closed by the first closing delimiter of s,
// i.e. the most recently opened group still unclosed at that point.
// ok is false when s holds no group at all.
func innermost(s string, o Options) (g group, ok bool) {
	var open []int
	for i, r := range s {
		switch r {
		case o.Open:
			open = append(open, i)
		case o.Close:
			if len(open) == 0 {
				return group{}, false
			}

			return group{begin: open[len(open)-1], end: i}, true
		}
	}

	return group{}, false
}

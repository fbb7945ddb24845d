package braces

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella sentinel for input Expand refuses to process.
	ErrInvalidInput = errors.New("braces: invalid input")

	// ErrUnbalanced indicates an unmatched closing or an unclosed opening delimiter.
	ErrUnbalanced = fmt.Errorf("%w: unbalanced braces", ErrInvalidInput)
)

const (
	// DefaultOpen opens an alternation group.
	DefaultOpen = '{'
	// DefaultClose closes an alternation group.
	DefaultClose = '}'
	// DefaultSeparator separates alternatives inside a group.
	DefaultSeparator = ','
)

const panicDelimitersInvalid = "braces: WithDelimiters: open, close and sep must be distinct"

// Option configures Expand and ExpandAll.
type Option func(*Options)

// Options holds the expansion syntax and duplicate policy.
type Options struct {
	// Open, Close and Separator define the group syntax.
	Open, Close, Separator rune

	// Dedup drops a candidate that was already produced during the same run.
	Dedup bool
}

// DefaultOptions returns bash-like syntax with deduplication enabled.
func DefaultOptions() Options {
	return Options{
		Open:      DefaultOpen,
		Close:     DefaultClose,
		Separator: DefaultSeparator,
		Dedup:     true,
	}
}

// WithDelimiters replaces the group syntax, e.g. WithDelimiters('[', ']', '|').
// Panics if any two runes coincide.
func WithDelimiters(open, close, sep rune) Option {
	if open == close || open == sep || close == sep {
		panic(panicDelimitersInvalid)
	}

	return func(o *Options) {
		o.Open, o.Close, o.Separator = open, close, sep
	}
}

// WithDedup toggles duplicate suppression.
func WithDedup(on bool) Option {
	return func(o *Options) {
		o.Dedup = on
	}
}

// group locates one alternation group inside a candidate (byte offsets).
type group struct {
	begin, end int // positions of the opening and closing delimiter
}

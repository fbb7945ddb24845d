// Package wordsearch defines the grid types, options, search states and
// sentinel errors.
package wordsearch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is the umbrella sentinel for rejected grids.
	ErrInvalidInput = errors.New("wordsearch: invalid input")
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals NE, SE, SW, NW.
	Conn8
)

// State is a step of one search attempt.
type State int

const (
	// Unstarted: a start cell was chosen, nothing matched yet.
	Unstarted State = iota
	// Matching: the path was extended to depth k.
	Matching
	// Backtrack: the top cell ran out of neighbours and was popped; depth is now k.
	Backtrack
	// Success: the path covers the whole word.
	Success
	// Exhausted: every start cell and branch failed.
	Exhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unstarted:
		return "UNSTARTED"
	case Matching:
		return "MATCHING"
	case Backtrack:
		return "BACKTRACK"
	case Success:
		return "SUCCESS"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Grid.
type Option func(*Options)

// Options contains tunable parameters for the search.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Fold compares runes case-insensitively.
	Fold bool

	// Trace, if non-nil, is invoked on every state transition with the
	// current path depth.
	Trace func(s State, depth int)
}

// DefaultOptions returns Conn4, case-sensitive matching and no trace hook.
func DefaultOptions() Options {
	return Options{
		Conn:  Conn4,
		Fold:  false,
		Trace: nil,
	}
}

// WithConnectivity sets the neighbourhood used to extend a path.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithFold toggles case-insensitive matching.
func WithFold(on bool) Option {
	return func(o *Options) {
		o.Fold = on
	}
}

// WithTrace installs fn as the state transition hook.
func WithTrace(fn func(s State, depth int)) Option {
	return func(o *Options) {
		o.Trace = fn
	}
}

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Path is an ordered sequence of cells, one per rune of the word.
type Path []Cell

// String renders the path as "(x,y) (x,y) ...".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", c.X, c.Y)
	}

	return sb.String()
}

// Grid is an immutable rectangular block of runes.
// Width and Height define dimensions; cells holds the runes row-major.
// neighborOffsets is precomputed from the connectivity.
type Grid struct {
	Width, Height   int
	cells           []rune
	opts            Options
	neighborOffsets [][2]int
}

// frame is one level of the explicit search stack.
type frame struct {
	cell int // row-major index of the cell at this depth
	next int // index of the next neighbour offset to try
}

package wordsearch

import (
	"unicode"
	"unicode/utf8"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// NewGrid builds a Grid from text rows, one rune per cell.
// It copies the input, so later changes to rows never affect the Grid.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row has a different rune count.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string, opts ...Option) (*Grid, error) {
	// 1. Validate shape
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), utf8.RuneCountInString(rows[0])
	for _, row := range rows {
		if utf8.RuneCountInString(row) != w {
			return nil, ErrNonRectangular
		}
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Flatten row-major, folding case once if requested
	cells := make([]rune, 0, w*h)
	for _, row := range rows {
		for _, r := range row {
			cells = append(cells, o.normalize(r))
		}
	}

	offsets := offsets4
	if o.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Width:           w,
		Height:          h,
		cells:           cells,
		opts:            o,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the rune at (x,y) and whether the coordinate is valid.
// Under WithFold the stored rune is lower-cased.
func (g *Grid) At(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.cells[g.index(x, y)], true
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// index returns the row-major index of (x,y).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// normalize applies the case policy to a single rune.
func (o Options) normalize(r rune) rune {
	if o.Fold {
		return unicode.ToLower(r)
	}

	return r
}

package wordsearch

// Find returns the first simple path whose runes, read in order, spell word.
// Start cells are tried in row-major order, neighbours in offset order, so
// the result is deterministic. The empty word yields an empty, non-nil path.
func (g *Grid) Find(word string) (Path, bool) {
	// 1. Normalize the target once
	target := make([]rune, 0, len(word))
	for _, r := range word {
		target = append(target, g.opts.normalize(r))
	}
	if len(target) == 0 {
		g.trace(Success, 0)
		return Path{}, true
	}

	// 2. Arena of used cells and a stack bounded by the word length
	used := make([]bool, len(g.cells))
	stack := make([]frame, 0, len(target))

	var (
		top    *frame
		d      [2]int
		x, y   int
		nx, ny int
		ni     int
	)
	for start, r := range g.cells {
		if r != target[0] {
			continue
		}
		g.trace(Unstarted, 0)

		// 3. Seed the attempt
		stack = append(stack[:0], frame{cell: start})
		used[start] = true
		g.trace(Matching, 1)

		for len(stack) > 0 {
			// 4. Full length reached
			if len(stack) == len(target) {
				g.trace(Success, len(stack))
				return g.path(stack), true
			}

			// 5. Top frame out of neighbours: release its cell and pop
			top = &stack[len(stack)-1]
			if top.next == len(g.neighborOffsets) {
				used[top.cell] = false
				stack = stack[:len(stack)-1]
				g.trace(Backtrack, len(stack))
				continue
			}

			// 6. Try the next neighbour of the top cell
			d = g.neighborOffsets[top.next]
			top.next++
			x, y = g.Coordinate(top.cell)
			nx, ny = x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni = g.index(nx, ny)
			if used[ni] || g.cells[ni] != target[len(stack)] {
				continue
			}
			used[ni] = true
			stack = append(stack, frame{cell: ni})
			g.trace(Matching, len(stack))
		}
	}

	g.trace(Exhausted, 0)
	return nil, false
}

// Contains reports whether word can be traced through the grid.
func (g *Grid) Contains(word string) bool {
	_, ok := g.Find(word)
	return ok
}

// Exists validates rows as a grid and reports whether word can be traced
// through it. Grid errors wrap ErrInvalidInput.
func Exists(rows []string, word string, opts ...Option) (bool, error) {
	g, err := NewGrid(rows, opts...)
	if err != nil {
		return false, err
	}

	return g.Contains(word), nil
}

// path converts the frame stack into coordinates.
func (g *Grid) path(stack []frame) Path {
	p := make(Path, len(stack))
	for i, f := range stack {
		p[i].X, p[i].Y = g.Coordinate(f.cell)
	}

	return p
}

// trace forwards a transition to the configured hook, if any.
func (g *Grid) trace(s State, depth int) {
	if g.opts.Trace != nil {
		g.opts.Trace(s, depth)
	}
}

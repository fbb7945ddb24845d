// Package dominoes decides whether a set of domino tiles can be laid out in a
// single row where touching halves carry the same number.
//
// Tiles are edges of a multigraph over their numbers (a double is a loop). A
// row uses every tile exactly once, so it exists iff that multigraph has an
// Euler path: all tiles sit in one connected component and at most two
// numbers have odd degree.
//
// Complexity: O(T·α(T)) time and O(T) space for T tiles.
package dominoes

// Tile is one domino; orientation does not matter.
type Tile [2]int

// CanMakeRow reports whether all tiles fit in one row. An empty set forms the
// empty row.
func CanMakeRow(tiles []Tile) bool {
	if len(tiles) == 0 {
		return true
	}

	// 1. Degree per number; a double counts twice.
	degree := make(map[int]int, 2*len(tiles))
	for _, t := range tiles {
		degree[t[0]]++
		degree[t[1]]++
	}
	odd := 0
	for _, d := range degree {
		if d%2 == 1 {
			odd++
		}
	}
	if odd != 0 && odd != 2 {
		return false
	}

	// 2. Union both halves of every tile.
	s := newDisjointSet(len(degree))
	for _, t := range tiles {
		s.union(t[0], t[1])
	}

	// 3. Every number must share the first tile's root.
	root := s.find(tiles[0][0])
	for v := range degree {
		if s.find(v) != root {
			return false
		}
	}

	return true
}

// disjointSet is union-find with path halving and union by rank.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(capacity int) *disjointSet {
	return &disjointSet{
		parent: make(map[int]int, capacity),
		rank:   make(map[int]int, capacity),
	}
}

// find returns the root of v, adding v as a singleton on first sight.
func (s *disjointSet) find(v int) int {
	if _, ok := s.parent[v]; !ok {
		s.parent[v] = v
		return v
	}
	for s.parent[v] != v {
		s.parent[v] = s.parent[s.parent[v]]
		v = s.parent[v]
	}

	return v
}

func (s *disjointSet) union(u, v int) {
	ru, rv := s.find(u), s.find(v)
	if ru == rv {
		return
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case s.rank[ru] < s.rank[rv]:
		s.parent[ru] = rv
	case s.rank[ru] > s.rank[rv]:
		s.parent[rv] = ru
	default:
		s.parent[rv] = ru
		s.rank[ru]++
	}
}

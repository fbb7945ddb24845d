package dominoes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/katas/dominoes"
)

func TestCanMakeRow(t *testing.T) {
	cases := []struct {
		tiles []dominoes.Tile
		want  bool
	}{
		{nil, true},
		{[]dominoes.Tile{{3, 3}}, true},
		{[]dominoes.Tile{{0, 1}, {1, 1}}, true},
		{[]dominoes.Tile{{1, 1}, {2, 2}, {1, 5}, {5, 6}, {6, 3}}, false},
		{[]dominoes.Tile{{1, 3}, {2, 3}, {1, 4}, {2, 4}, {1, 5}, {2, 5}}, true},
		{[]dominoes.Tile{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}, {2, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}}, false},
		// closed loop: every degree even
		{[]dominoes.Tile{{1, 2}, {2, 3}, {3, 1}}, true},
		// even degrees but two components
		{[]dominoes.Tile{{1, 2}, {2, 1}, {4, 4}}, false},
		{[]dominoes.Tile{{1, 2}, {1, 3}, {1, 4}}, false},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, tc.want, dominoes.CanMakeRow(tc.tiles), "tiles %v", tc.tiles)
		})
	}
}

func ExampleCanMakeRow() {
	fmt.Println(dominoes.CanMakeRow([]dominoes.Tile{{0, 1}, {1, 1}}))
	fmt.Println(dominoes.CanMakeRow([]dominoes.Tile{{1, 1}, {2, 2}, {1, 5}, {5, 6}, {6, 3}}))
	// Output:
	// true
	// false
}

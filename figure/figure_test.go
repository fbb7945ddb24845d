package figure_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/katas/figure"
)

func TestRectangles(t *testing.T) {
	cases := []struct {
		name   string
		figure string
		want   []string
	}{
		{
			name: "stacked",
			figure: "" +
				"+------------+\n" +
				"|            |\n" +
				"|            |\n" +
				"|            |\n" +
				"+------+-----+\n" +
				"|      |     |\n" +
				"|      |     |\n" +
				"+------+-----+\n",
			want: []string{
				figure.Render(12, 3),
				figure.Render(6, 2),
				figure.Render(5, 2),
			},
		},
		{
			name: "offset roof",
			figure: "" +
				"   +-----+     \n" +
				"   |     |     \n" +
				"+--+-----+----+\n" +
				"|             |\n" +
				"|             |\n" +
				"+-------------+\n",
			want: []string{
				figure.Render(5, 1),
				figure.Render(13, 2),
			},
		},
		{
			name: "grid",
			figure: "" +
				"+-+-+\n" +
				"| | |\n" +
				"+-+-+\n" +
				"| | |\n" +
				"+-+-+\n",
			want: []string{
				figure.Render(1, 1),
				figure.Render(1, 1),
				figure.Render(1, 1),
				figure.Render(1, 1),
			},
		},
		{
			name:   "flat",
			figure: "++\n++\n",
			want:   []string{figure.Render(0, 0)},
		},
		{
			name:   "no rectangle",
			figure: "+--+\n|  |\n+  +\n",
			want:   nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(figure.Rectangles(tc.figure))
			if diff := cmp.Diff(tc.want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Rectangles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRectangles_EarlyStop(t *testing.T) {
	fig := "+-+-+\n| | |\n+-+-+\n"
	n := 0
	for range figure.Rectangles(fig) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "+--+\n|  |\n+--+\n", figure.Render(2, 1))
}

func ExampleRectangles() {
	fig := "" +
		"   +-----+     \n" +
		"   |     |     \n" +
		"+--+-----+----+\n" +
		"|             |\n" +
		"|             |\n" +
		"+-------------+\n"
	for r := range figure.Rectangles(fig) {
		fmt.Print(r)
	}
	// Output:
	// +-----+
	// |     |
	// +-----+
	// +-------------+
	// |             |
	// |             |
	// +-------------+
}

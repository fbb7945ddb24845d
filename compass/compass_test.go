package compass_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/compass"
)

func TestPoints(t *testing.T) {
	want := []string{
		"N", "NbE", "NNE", "NEbN", "NE", "NEbE", "ENE", "EbN",
		"E", "EbS", "ESE", "SEbE", "SE", "SEbS", "SSE", "SbE",
		"S", "SbW", "SSW", "SWbS", "SW", "SWbW", "WSW", "WbS",
		"W", "WbN", "WNW", "NWbW", "NW", "NWbN", "NNW", "NbW",
	}
	pts := compass.Points()
	require.Len(t, pts, compass.PointCount)
	for i, p := range pts {
		assert.Equal(t, want[i], p.Abbreviation, "point %d", i)
		assert.InDelta(t, float64(i)*11.25, p.Azimuth, 1e-9, "point %d", i)
	}
	assert.Equal(t, compass.Point{Abbreviation: "NbW", Azimuth: 348.75}, pts[31])
}

func TestPoints_ReturnsCopy(t *testing.T) {
	pts := compass.Points()
	pts[0].Abbreviation = "X"
	assert.Equal(t, "N", compass.Points()[0].Abbreviation)
}

func TestNearest(t *testing.T) {
	cases := map[float64]string{
		0:      "N",
		5:      "N",
		5.625:  "NbE",
		90:     "E",
		354:    "NbW",
		357:    "N",
		-90:    "W",
		720:    "N",
		202.5:  "SSW",
		348.75: "NbW",
	}
	for deg, want := range cases {
		assert.Equal(t, want, compass.Nearest(deg).Abbreviation, "deg %v", deg)
	}
}

func ExamplePoints() {
	for _, p := range compass.Points()[:4] {
		fmt.Printf("%-5s %6.2f\n", p.Abbreviation, p.Azimuth)
	}
	// Output:
	// N       0.00
	// NbE    11.25
	// NNE    22.50
	// NEbN   33.75
}

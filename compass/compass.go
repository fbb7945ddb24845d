// Package compass provides the 32-point compass rose.
//
// Each quarter between two cardinal directions holds eight points named by a
// fixed pattern over the current cardinal, the next one and the half-wind
// between them (N and S always lead a half-wind name: NE, SE, SW, NW). Odd
// points read "x by y", abbreviated with a 'b': NbE, NEbN, SbW.
//
// See https://en.wikipedia.org/wiki/Points_of_the_compass#32_cardinal_points
package compass

import "math"

const (
	// PointCount is the number of points on the rose.
	PointCount = 32
	// Step is the azimuth between neighbouring points, in degrees.
	Step = 360.0 / PointCount

	pointsPerQuarter = PointCount / 4
)

// Point is a named direction with its azimuth in degrees clockwise from north.
type Point struct {
	Abbreviation string
	Azimuth      float64
}

var rose = build()

func build() [PointCount]Point {
	cardinals := [4]string{"N", "E", "S", "W"}

	var out [PointCount]Point
	for q, cur := range cardinals {
		next := cardinals[(q+1)%len(cardinals)]
		half := cur + next
		if next == "N" || next == "S" {
			half = next + cur
		}
		left := [pointsPerQuarter]string{cur, cur, cur, half, half, half, next, next}
		right := [pointsPerQuarter]string{"", next, half, cur, "", next, half, cur}

		for p := range pointsPerQuarter {
			abbr := left[p]
			if p%2 == 1 {
				abbr += "b"
			}
			abbr += right[p]

			i := q*pointsPerQuarter + p
			out[i] = Point{Abbreviation: abbr, Azimuth: float64(i) * Step}
		}
	}

	return out
}

// Points returns the rose clockwise from north. The slice is a fresh copy.
func Points() []Point {
	out := make([]Point, PointCount)
	copy(out, rose[:])

	return out
}

// Nearest returns the point closest to azimuth deg. Any finite angle is
// accepted and reduced modulo 360; halfway angles round clockwise.
func Nearest(deg float64) Point {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	i := int(math.Floor(deg/Step+0.5)) % PointCount

	return rose[i]
}

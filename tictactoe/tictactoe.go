// Package tictactoe evaluates a 3×3 tic-tac-toe position.
package tictactoe

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidInput indicates a malformed textual position.
var ErrInvalidInput = errors.New("tictactoe: invalid input")

// Size is the board dimension.
const Size = 3

// Mark is the content of a square.
type Mark uint8

const (
	// Empty is an unplayed square; Evaluate returns it when nobody has won.
	Empty Mark = iota
	// X is the first player's mark.
	X
	// O is the second player's mark (written '0' in the classic notation).
	O
)

// String implements fmt.Stringer.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "0"
	default:
		return " "
	}
}

// Position is a board indexed [row][column].
type Position [Size][Size]Mark

// lines lists every winning line as (row, col) triples:
// rows, then columns, then the main and the anti diagonal.
var lines = [8][Size][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate returns the mark occupying a complete line, or Empty when no line
// is complete. Lines are checked rows first, then columns, then diagonals.
func Evaluate(p Position) Mark {
	for _, l := range lines {
		m := p[l[0][0]][l[0][1]]
		if m != Empty && m == p[l[1][0]][l[1][1]] && m == p[l[2][0]][l[2][1]] {
			return m
		}
	}

	return Empty
}

// ParsePosition reads three rows of three runes: 'X'/'x' for X, '0'/'O'/'o'
// for O and ' ', '.' or '_' for an empty square.
func ParsePosition(rows [Size]string) (Position, error) {
	var p Position
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != Size {
			return Position{}, fmt.Errorf("%w: row %d has %d squares", ErrInvalidInput, i, n)
		}
		j := 0
		for _, r := range row {
			switch r {
			case 'X', 'x':
				p[i][j] = X
			case '0', 'O', 'o':
				p[i][j] = O
			case ' ', '.', '_':
				p[i][j] = Empty
			default:
				return Position{}, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidInput, r, i)
			}
			j++
		}
	}

	return p, nil
}

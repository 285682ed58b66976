// Package world provides the occupancy grid and movement rules.
//
// Coordinates are (row, col) everywhere: Up and Down move along the row axis,
// Left and Right along the column axis. Row 0 is the top of the board.
package world

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Square is a (row, col) coordinate. It is used both as an absolute grid
// position and as an offset relative to another square.
type Square struct {
	Row int
	Col int
}

// Sq is a convenience constructor for Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Add returns the square offset by other.
func (s Square) Add(other Square) Square {
	return Square{Row: s.Row + other.Row, Col: s.Col + other.Col}
}

// Step returns the square one unit away in the given direction.
func (s Square) Step(d Direction) Square {
	return s.Add(d.Delta())
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// MarshalJSON encodes the square as a [row, col] pair.
func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Row, s.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (s *Square) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("square must be a [row, col] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("square must have exactly 2 components, got %d", len(pair))
	}
	s.Row, s.Col = pair[0], pair[1]
	return nil
}

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in canonical order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the direction's token.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Square {
	switch d {
	case Up:
		return Square{Row: -1}
	case Down:
		return Square{Row: 1}
	case Left:
		return Square{Col: -1}
	case Right:
		return Square{Col: 1}
	default:
		return Square{}
	}
}

// ParseDirection converts a direction token such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d < Up || d > Right {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

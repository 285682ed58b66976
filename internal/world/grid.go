package world

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the occupancy matrix entities move on.
//
// Cells hold an entity id, or "" when empty. The grid is the source of truth
// for occupancy; the id -> square index is derived and updated on every
// mutation so lookups never scan the board.
type Grid struct {
	Width  int // Number of columns
	Height int // Number of rows
	cells  [][]string
	index  map[string]Square
}

// Occupant pairs an entity id with the square it holds.
type Occupant struct {
	ID     string
	Square Square
}

// NewGrid creates an empty grid with the given number of columns and rows.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, Configurationf("grid dimensions must be positive, got %dx%d", width, height)
	}

	cells := make([][]string, height)
	for row := range cells {
		cells[row] = make([]string, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		index:  make(map[string]Square),
	}, nil
}

// GridFromRows builds a grid from an existing matrix of ids, "" meaning empty.
// The matrix must be rectangular and each id may appear at most once.
func GridFromRows(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, Configurationf("grid rows must be non-empty")
	}

	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	seen := mapset.New[string]()
	for r, row := range rows {
		if len(row) != g.Width {
			return nil, Configurationf("row %d has %d cells, want %d", r, len(row), g.Width)
		}
		for c, id := range row {
			if id == "" {
				continue
			}
			if seen.Has(id) {
				return nil, Configurationf("entity %q appears more than once", id)
			}
			seen.Put(id)
			g.cells[r][c] = id
			g.index[id] = Square{Row: r, Col: c}
		}
	}
	return g, nil
}

// InBounds returns true if the square lies within the grid.
func (g *Grid) InBounds(sq Square) bool {
	return g.Bounds().Contains(sq)
}

// IsEmpty returns true if the square is in bounds and unoccupied.
func (g *Grid) IsEmpty(sq Square) bool {
	return g.InBounds(sq) && g.cells[sq.Row][sq.Col] == ""
}

// Get returns the id occupying the square, or "" if it is empty.
func (g *Grid) Get(sq Square) (string, error) {
	if !g.InBounds(sq) {
		return "", g.outOfBounds(sq)
	}
	return g.cells[sq.Row][sq.Col], nil
}

// Set writes an occupant (or "" to clear) into the square, overwriting
// whatever was there. It does not check for collisions; use MoveTo for that.
//
// An entity holds at most one square: if occupant is already placed
// elsewhere, its previous square is cleared.
func (g *Grid) Set(sq Square, occupant string) error {
	if !g.InBounds(sq) {
		return g.outOfBounds(sq)
	}

	if prev := g.cells[sq.Row][sq.Col]; prev != "" {
		delete(g.index, prev)
	}
	if occupant != "" {
		if old, ok := g.index[occupant]; ok && old != sq {
			g.cells[old.Row][old.Col] = ""
		}
		g.index[occupant] = sq
	}
	g.cells[sq.Row][sq.Col] = occupant
	return nil
}

// Find returns the square holding the entity.
func (g *Grid) Find(id string) (Square, bool) {
	sq, ok := g.index[id]
	return sq, ok
}

// MoveTo relocates an entity to target. Every check runs before anything is
// mutated, so a failed move leaves the grid exactly as it was.
func (g *Grid) MoveTo(id string, target Square) error {
	current, ok := g.index[id]
	if !ok {
		return &EntityNotFoundError{ID: id}
	}
	if !g.InBounds(target) {
		return g.outOfBounds(target)
	}
	if occupant := g.cells[target.Row][target.Col]; occupant != "" {
		return &OccupiedSquareError{Square: target, Occupant: occupant}
	}

	g.cells[current.Row][current.Col] = ""
	g.cells[target.Row][target.Col] = id
	g.index[id] = target
	return nil
}

// MoveInDirection moves an entity one step and returns its new square.
func (g *Grid) MoveInDirection(id string, d Direction) (Square, error) {
	current, ok := g.index[id]
	if !ok {
		return Square{}, &EntityNotFoundError{ID: id}
	}
	target := current.Step(d)
	if err := g.MoveTo(id, target); err != nil {
		return current, err
	}
	return target, nil
}

// Occupants returns every occupied square in row-major order.
func (g *Grid) Occupants() []Occupant {
	result := make([]Occupant, 0, len(g.index))
	for r, row := range g.cells {
		for c, id := range row {
			if id != "" {
				result = append(result, Occupant{ID: id, Square: Square{Row: r, Col: c}})
			}
		}
	}
	return result
}

// Rows returns a copy of the occupancy matrix.
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.Height)
	for r := range g.cells {
		rows[r] = make([]string, g.Width)
		copy(rows[r], g.cells[r])
	}
	return rows
}

// Render draws the grid as text: rows joined by newlines, cells joined by
// "|". Empty cells are three spaces; occupied cells are the glyph padded by
// one space on each side.
func (g *Grid) Render(glyph func(id string) string) string {
	if glyph == nil {
		glyph = Glyph
	}

	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, id := range row {
			if c > 0 {
				b.WriteByte('|')
			}
			if id == "" {
				b.WriteString("   ")
				continue
			}
			b.WriteByte(' ')
			b.WriteString(glyph(id))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// String renders the grid using the default glyphs.
func (g *Grid) String() string {
	return g.Render(Glyph)
}

// Glyph returns the display glyph for an id: its first letter, upper-cased.
// Ids sharing a first letter render identically.
func Glyph(id string) string {
	r, _ := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func (g *Grid) outOfBounds(sq Square) *OutOfBoundsError {
	return &OutOfBoundsError{Square: sq, Width: g.Width, Height: g.Height}
}

package world

import (
	"errors"
	"testing"
)

func mustGridFromRows(t *testing.T, rows [][]string) *Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows() error: %v", err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid(3, 3) error: %v", err)
	}

	cells := 0
	for _, row := range g.Rows() {
		for _, id := range row {
			if id != "" {
				t.Errorf("NewGrid cell = %q, want empty", id)
			}
			cells++
		}
	}
	if cells != 9 {
		t.Errorf("NewGrid(3, 3) has %d cells, want 9", cells)
	}

	want := "   |   |   \n   |   |   \n   |   |   "
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 3},
		{3, 0},
		{-1, 5},
		{0, 0},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.width, tt.height)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ConfigurationError", tt.width, tt.height, err)
		}
	}
}

func TestGridFromRows(t *testing.T) {
	rows := [][]string{
		{"", "", "foo"},
		{"", "bar", ""},
	}
	g := mustGridFromRows(t, rows)

	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("GridFromRows dimensions = %dx%d, want 3x2", g.Width, g.Height)
	}
	got := g.Rows()
	for r := range rows {
		for c := range rows[r] {
			if got[r][c] != rows[r][c] {
				t.Errorf("Rows()[%d][%d] = %q, want %q", r, c, got[r][c], rows[r][c])
			}
		}
	}
	if sq, ok := g.Find("bar"); !ok || sq != Sq(1, 1) {
		t.Errorf("Find(bar) = %v, %v; want (1,1), true", sq, ok)
	}
}

func TestGridFromRowsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"empty", nil},
		{"empty row", [][]string{{}}},
		{"ragged", [][]string{{"", ""}, {""}}},
		{"duplicate", [][]string{{"foo", ""}, {"", "foo"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GridFromRows(tt.rows)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("GridFromRows() error = %v, want ConfigurationError", err)
			}
		})
	}
}

func TestGridRowsIsCopy(t *testing.T) {
	g := mustGridFromRows(t, [][]string{{"foo", ""}})
	rows := g.Rows()
	rows[0][0] = "bar"

	if id, _ := g.Get(Sq(0, 0)); id != "foo" {
		t.Errorf("Get after mutating Rows() copy = %q, want foo", id)
	}
}

func TestGridInBounds(t *testing.T) {
	g, _ := NewGrid(3, 2) // 3 columns, 2 rows

	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(1, 2), true},
		{Sq(2, 0), false},
		{Sq(0, 3), false},
		{Sq(-1, 0), false},
		{Sq(0, -1), false},
	}

	for _, tt := range tests {
		if got := g.InBounds(tt.sq); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g, _ := NewGrid(2, 2)

	_, err := g.Get(Sq(5, 0))
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Get out of range error = %v, want OutOfBoundsError", err)
	}
	if oob.Square != Sq(5, 0) {
		t.Errorf("OutOfBoundsError.Square = %v, want (5,0)", oob.Square)
	}
}

func TestGridSet(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"", "", "foo"},
		{"", "bar", ""},
	})

	if err := g.Set(Sq(0, 1), "baz"); err != nil {
		t.Fatalf("Set(baz) error: %v", err)
	}
	if id, _ := g.Get(Sq(0, 1)); id != "baz" {
		t.Errorf("Get(0,1) = %q, want baz", id)
	}

	if err := g.Set(Sq(0, 2), ""); err != nil {
		t.Fatalf("Set(empty) error: %v", err)
	}
	if id, _ := g.Get(Sq(0, 2)); id != "" {
		t.Errorf("Get(0,2) = %q, want empty", id)
	}
	if _, ok := g.Find("foo"); ok {
		t.Error("Find(foo) should fail after its square was cleared")
	}
}

func TestGridSetOverwritesOccupant(t *testing.T) {
	g := mustGridFromRows(t, [][]string{{"foo", ""}})

	if err := g.Set(Sq(0, 0), "bar"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, ok := g.Find("foo"); ok {
		t.Error("overwritten occupant should no longer be indexed")
	}
	if sq, ok := g.Find("bar"); !ok || sq != Sq(0, 0) {
		t.Errorf("Find(bar) = %v, %v; want (0,0), true", sq, ok)
	}
}

func TestGridSetRelocatesPlacedEntity(t *testing.T) {
	g := mustGridFromRows(t, [][]string{{"foo", "", ""}})

	if err := g.Set(Sq(0, 2), "foo"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if id, _ := g.Get(Sq(0, 0)); id != "" {
		t.Errorf("previous square holds %q, want empty", id)
	}
	if got := len(g.Occupants()); got != 1 {
		t.Errorf("Occupants() length = %d, want 1", got)
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g, _ := NewGrid(2, 2)

	err := g.Set(Sq(0, 2), "foo")
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Errorf("Set out of range error = %v, want OutOfBoundsError", err)
	}
	if _, ok := g.Find("foo"); ok {
		t.Error("failed Set should not index the entity")
	}
}

func TestGridSetThenFind(t *testing.T) {
	g, _ := NewGrid(4, 3)

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			sq := Sq(r, c)
			if err := g.Set(sq, "e"); err != nil {
				t.Fatalf("Set(%v) error: %v", sq, err)
			}
			got, ok := g.Find("e")
			if !ok || got != sq {
				t.Errorf("Find after Set(%v) = %v, %v", sq, got, ok)
			}
		}
	}
}

func TestGridFind(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"cloud", "", "barret"},
		{"", "tifa", ""},
	})

	tests := []struct {
		id   string
		want Square
	}{
		{"cloud", Sq(0, 0)},
		{"tifa", Sq(1, 1)},
		{"barret", Sq(0, 2)},
	}
	for _, tt := range tests {
		got, ok := g.Find(tt.id)
		if !ok || got != tt.want {
			t.Errorf("Find(%q) = %v, %v; want %v, true", tt.id, got, ok, tt.want)
		}
	}

	if _, ok := g.Find("aerith"); ok {
		t.Error("Find(aerith) should report not found")
	}
}

func TestGridMoveTo(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"foo", ""},
		{"", ""},
	})

	if err := g.MoveTo("foo", Sq(1, 1)); err != nil {
		t.Fatalf("MoveTo error: %v", err)
	}
	if sq, _ := g.Find("foo"); sq != Sq(1, 1) {
		t.Errorf("Find after MoveTo = %v, want (1,1)", sq)
	}
	if id, _ := g.Get(Sq(0, 0)); id != "" {
		t.Errorf("old square holds %q, want empty", id)
	}
}

func TestGridMoveToIsAtomicOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		target  Square
		wantErr any
	}{
		{"out of bounds", Sq(0, -1), &OutOfBoundsError{}},
		{"occupied", Sq(0, 1), &OccupiedSquareError{}},
		{"own square", Sq(0, 0), &OccupiedSquareError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGridFromRows(t, [][]string{
				{"foo", "bar"},
				{"", ""},
			})
			before := g.String()

			err := g.MoveTo("foo", tt.target)
			switch tt.wantErr.(type) {
			case *OutOfBoundsError:
				var oob *OutOfBoundsError
				if !errors.As(err, &oob) {
					t.Errorf("MoveTo error = %v, want OutOfBoundsError", err)
				}
			case *OccupiedSquareError:
				var occ *OccupiedSquareError
				if !errors.As(err, &occ) {
					t.Errorf("MoveTo error = %v, want OccupiedSquareError", err)
				}
			}

			if sq, ok := g.Find("foo"); !ok || sq != Sq(0, 0) {
				t.Errorf("Find(foo) after failed move = %v, %v; want (0,0), true", sq, ok)
			}
			if after := g.String(); after != before {
				t.Errorf("grid changed after failed move:\n%s\nwant:\n%s", after, before)
			}
		})
	}
}

func TestGridMoveToUnknownEntity(t *testing.T) {
	g, _ := NewGrid(2, 2)

	err := g.MoveTo("ghost", Sq(0, 0))
	var notFound *EntityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("MoveTo error = %v, want EntityNotFoundError", err)
	}
	if notFound.ID != "ghost" {
		t.Errorf("EntityNotFoundError.ID = %q, want ghost", notFound.ID)
	}
}

func TestGridMoveInDirection(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"", "", ""},
		{"", "foo", ""},
		{"", "", ""},
	})

	tests := []struct {
		dir  Direction
		want Square
	}{
		{Up, Sq(0, 1)},
		{Left, Sq(0, 0)},
		{Down, Sq(1, 0)},
		{Right, Sq(1, 1)},
	}
	for _, tt := range tests {
		got, err := g.MoveInDirection("foo", tt.dir)
		if err != nil {
			t.Fatalf("MoveInDirection(%v) error: %v", tt.dir, err)
		}
		if got != tt.want {
			t.Errorf("MoveInDirection(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}

	if _, err := g.MoveInDirection("foo", Up); err != nil {
		t.Fatalf("MoveInDirection(up) error: %v", err)
	}
	sq, err := g.MoveInDirection("foo", Up)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Errorf("MoveInDirection off the edge error = %v, want OutOfBoundsError", err)
	}
	if sq != Sq(0, 1) {
		t.Errorf("MoveInDirection off the edge returned %v, want current square (0,1)", sq)
	}
}

func TestGridOccupants(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"", "b"},
		{"a", ""},
	})

	got := g.Occupants()
	want := []Occupant{{ID: "b", Square: Sq(0, 1)}, {ID: "a", Square: Sq(1, 0)}}
	if len(got) != len(want) {
		t.Fatalf("Occupants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Occupants()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGridRender(t *testing.T) {
	g := mustGridFromRows(t, [][]string{
		{"cloud", "", "barret"},
		{"", "tifa", ""},
	})

	want := " C |   | B \n   | T |   "
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	lower := g.Render(func(id string) string { return id[:1] })
	if want := " c |   | b \n   | t |   "; lower != want {
		t.Errorf("Render(custom) = %q, want %q", lower, want)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"cloud", "C"},
		{"Tifa", "T"},
		{"élan", "É"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := Glyph(tt.id); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

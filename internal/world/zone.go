package world

// Zone is a rectangular region of the grid, used for team deployment.
type Zone struct {
	Row, Col      int // Top-left corner
	Width, Height int // Columns and rows covered
}

// Contains returns true if the square is inside the zone.
func (z Zone) Contains(sq Square) bool {
	return sq.Row >= z.Row && sq.Row < z.Row+z.Height &&
		sq.Col >= z.Col && sq.Col < z.Col+z.Width
}

// Intersects returns true if this zone overlaps with another zone.
func (z Zone) Intersects(other Zone) bool {
	return z.Col < other.Col+other.Width &&
		z.Col+z.Width > other.Col &&
		z.Row < other.Row+other.Height &&
		z.Row+z.Height > other.Row
}

// Squares returns the zone's squares in row-major order.
func (z Zone) Squares() []Square {
	squares := make([]Square, 0, z.Width*z.Height)
	for r := z.Row; r < z.Row+z.Height; r++ {
		for c := z.Col; c < z.Col+z.Width; c++ {
			squares = append(squares, Square{Row: r, Col: c})
		}
	}
	return squares
}

// Bounds returns the zone covering the whole grid.
func (g *Grid) Bounds() Zone {
	return Zone{Row: 0, Col: 0, Width: g.Width, Height: g.Height}
}

// TopRow returns the zone covering the first row of the grid.
func (g *Grid) TopRow() Zone {
	return Zone{Row: 0, Col: 0, Width: g.Width, Height: 1}
}

// BottomRow returns the zone covering the last row of the grid.
func (g *Grid) BottomRow() Zone {
	return Zone{Row: g.Height - 1, Col: 0, Width: g.Width, Height: 1}
}

// Spread picks n empty squares from the zone, spaced as evenly as the zone's
// width allows. It returns false if the zone has fewer than n empty squares.
func (g *Grid) Spread(z Zone, n int) ([]Square, bool) {
	free := make([]Square, 0, z.Width*z.Height)
	for _, sq := range z.Squares() {
		if g.IsEmpty(sq) {
			free = append(free, sq)
		}
	}
	if n <= 0 || len(free) < n {
		return nil, n == 0
	}

	picked := make([]Square, n)
	for i := 0; i < n; i++ {
		// Centre each pick within its slice of the free list.
		picked[i] = free[(2*i+1)*len(free)/(2*n)]
	}
	return picked, true
}

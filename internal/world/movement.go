package world

// LegalMovementsFrom returns the directions whose destination is inside the
// grid and empty, in canonical order (up, down, left, right).
func LegalMovementsFrom(sq Square, g *Grid) []Direction {
	legal := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if g.IsEmpty(sq.Step(d)) {
			legal = append(legal, d)
		}
	}
	return legal
}

// IsLegalMove returns true if moving from sq in direction d lands on an
// in-bounds, empty square.
func IsLegalMove(sq Square, d Direction, g *Grid) bool {
	for _, legal := range LegalMovementsFrom(sq, g) {
		if legal == d {
			return true
		}
	}
	return false
}

// Adjacent returns true if a and b differ by exactly one unit along exactly
// one axis.
func Adjacent(a, b Square) bool {
	dr := abs(b.Row - a.Row)
	dc := abs(b.Col - a.Col)
	return dr+dc == 1
}

// DirectionBetween returns the direction that takes a one step onto b.
// The second result is false when the squares are equal, diagonal, or more
// than one unit apart.
func DirectionBetween(a, b Square) (Direction, bool) {
	if !Adjacent(a, b) {
		return 0, false
	}
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

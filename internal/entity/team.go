package entity

import (
	"fmt"
	"strings"
)

// Team identifies one of the two sides.
type Team int

const (
	TeamA Team = iota
	TeamB
)

// NumTeams is the number of sides in a skirmish.
const NumTeams = 2

// String returns the team name.
func (t Team) String() string {
	switch t {
	case TeamA:
		return "team_a"
	case TeamB:
		return "team_b"
	default:
		return "unknown"
	}
}

// Valid returns true for TeamA and TeamB.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}

// Facing is the board edge an entity treats as forwards. There is no
// rotation in movement, so this is a fixed baseline per team.
type Facing int

const (
	FacingTop Facing = iota
	FacingBottom
)

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingTop:
		return "top"
	case FacingBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ParseFacing converts "top" or "bottom" to a Facing.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return FacingTop, nil
	case "bottom":
		return FacingBottom, nil
	default:
		return 0, fmt.Errorf("unknown facing %q", s)
	}
}

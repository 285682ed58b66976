package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// Frame is a snapshot of everything a renderer shows for one update.
type Frame struct {
	Grid   *world.Grid
	Roster *entity.Roster

	Active          string // Name of the entity whose turn it is
	Phase           string
	Turn            int
	PointsRemaining int
	History         []world.Direction
	Available       []*gamedata.ActionDef

	Message string // Outcome of the last command, if any
}

// Renderer draws frames.
type Renderer interface {
	Render(f Frame) error
}

// statusLines describes the turn below the grid.
func statusLines(f Frame) []string {
	lines := make([]string, 0, 4)

	active := f.Active
	if e := f.Roster.ByName(f.Active); e != nil {
		active = fmt.Sprintf("%s (%s, facing %s)", e.Name, e.Team, e.Facing)
	}
	lines = append(lines, fmt.Sprintf("Turn %d: %s | moves left: %d | history: %s",
		f.Turn+1, active, f.PointsRemaining, joinDirections(f.History)))

	if len(f.Available) == 0 {
		lines = append(lines, "Actions: none")
	} else {
		names := make([]string, len(f.Available))
		for i, a := range f.Available {
			names[i] = fmt.Sprintf("%s [%s]", a.Name, joinDirections(a.Gesture))
		}
		lines = append(lines, "Actions: "+strings.Join(names, ", "))
	}

	hp := make([]string, 0, f.Roster.Len())
	for _, e := range f.Roster.Members {
		hp = append(hp, fmt.Sprintf("%s %d/%d", e.Name, e.HP, e.MaxHP))
	}
	lines = append(lines, "HP: "+strings.Join(hp, "  "))

	if f.Message != "" {
		lines = append(lines, f.Message)
	}
	return lines
}

func joinDirections(ds []world.Direction) string {
	if len(ds) == 0 {
		return "-"
	}
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

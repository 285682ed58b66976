package gamedata

import "github.com/gdamore/tcell/v2"

// TeamDef defines one of the two sides, loaded from JSON.
type TeamDef struct {
	ID     int    `json:"id"`     // 0 or 1
	Name   string `json:"name"`   // Display name (e.g., "Dawn")
	Facing string `json:"facing"` // "top" or "bottom"; which edge counts as forwards
	Color  string `json:"color"`  // Hex color code (e.g., "#E8B923")
}

// TCellColor returns the team color, or white if the hex code is malformed.
func (t *TeamDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TeamsFile represents the structure of teams.json.
type TeamsFile struct {
	Teams []TeamDef `json:"teams"`
}

// LoadTeams loads team definitions from the embedded teams.json file.
func LoadTeams() ([]TeamDef, error) {
	file, err := Load[TeamsFile]("teams.json")
	if err != nil {
		return nil, err
	}
	return file.Teams, nil
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// cellWidth is the width of one grid cell plus its separator.
const cellWidth = 4

// Palette maps each team to its glyph color.
type Palette map[entity.Team]tcell.Color

// PaletteFromCatalog builds a palette from the team definitions.
func PaletteFromCatalog(catalog *gamedata.Catalog) Palette {
	p := make(Palette, len(catalog.Teams))
	for i := range catalog.Teams {
		def := &catalog.Teams[i]
		p[entity.Team(def.ID)] = def.TCellColor()
	}
	return p
}

// Cell is one positioned character of a laid-out frame.
type Cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

// ScreenRenderer draws frames to a tcell screen with team colors.
type ScreenRenderer struct {
	screen  *Screen
	palette Palette
}

// NewScreenRenderer creates a renderer for the given screen.
func NewScreenRenderer(screen *Screen, palette Palette) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, palette: palette}
}

// Render draws the grid and status block.
func (r *ScreenRenderer) Render(f Frame) error {
	r.screen.Clear()
	for _, c := range r.Layout(f) {
		r.screen.SetContent(c.X, c.Y, c.Rune, c.Style)
	}
	r.screen.Show()
	return nil
}

// Layout positions every character of the frame. Grid row r is drawn on
// screen line r; column c's glyph sits at x = c*4+1 with "|" separators.
func (r *ScreenRenderer) Layout(f Frame) []Cell {
	var cells []Cell
	sepStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	rows := f.Grid.Rows()
	for y, row := range rows {
		for x, id := range row {
			if x > 0 {
				cells = append(cells, Cell{X: x*cellWidth - 1, Y: y, Rune: '|', Style: sepStyle})
			}
			glyph := '.'
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			if id != "" {
				glyph = []rune(world.Glyph(id))[0]
				style = r.entityStyle(f, id)
			}
			cells = append(cells, Cell{X: x*cellWidth + 1, Y: y, Rune: glyph, Style: style})
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range statusLines(f) {
		cells = append(cells, textCells(line, len(rows)+1+i, textStyle)...)
	}
	return cells
}

func (r *ScreenRenderer) entityStyle(f Frame, id string) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	e := f.Roster.ByName(id)
	if e == nil {
		return style
	}
	if color, ok := r.palette[e.Team]; ok {
		style = style.Foreground(color)
	}
	if !e.IsAlive() {
		style = style.Dim(true)
	}
	if id == f.Active {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

func textCells(s string, y int, style tcell.Style) []Cell {
	cells := make([]Cell, 0, len(s))
	x := 0
	for _, ch := range s {
		cells = append(cells, Cell{X: x, Y: y, Rune: ch, Style: style})
		x++
	}
	return cells
}

package ui

import (
	"fmt"
	"io"
	"strings"
)

// TextRenderer writes each frame as plain text: the grid followed by a
// status block.
type TextRenderer struct {
	out io.Writer
}

// NewTextRenderer creates a renderer writing to out.
func NewTextRenderer(out io.Writer) *TextRenderer {
	return &TextRenderer{out: out}
}

// Render writes the frame.
func (r *TextRenderer) Render(f Frame) error {
	var b strings.Builder
	b.WriteString(f.Grid.String())
	b.WriteString("\n\n")
	for _, line := range statusLines(f) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := fmt.Fprintln(r.out, b.String()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

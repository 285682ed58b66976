package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// LineSource reads one command per line from a reader. Blank lines are
// skipped.
type LineSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewLineSource creates a source reading from r. If prompt is non-nil, a
// "> " prompt is written to it before each read.
func NewLineSource(r io.Reader, prompt io.Writer) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r), prompt: prompt}
}

// Next reads until it finds a non-blank line and parses it.
func (s *LineSource) Next(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}
		if s.prompt != nil {
			fmt.Fprint(s.prompt, "> ")
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return Command{}, fmt.Errorf("read command: %w", err)
			}
			return Command{}, ErrNoMoreInput
		}

		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		return Parse(line)
	}
}

// Package input turns player input into turn commands.
package input

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/skirmish/internal/world"
)

// ErrNoMoreInput is returned by a Source once its input is exhausted.
var ErrNoMoreInput = errors.New("no more input")

// Kind is the type of a command.
type Kind int

const (
	// KindMove moves the active entity one square.
	KindMove Kind = iota
	// KindEndTurn ends the active entity's turn.
	KindEndTurn
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindEndTurn:
		return "end_turn"
	default:
		return "unknown"
	}
}

// Command is a single player instruction.
type Command struct {
	Kind      Kind
	Direction world.Direction // Set for KindMove
}

// Move returns a move command in the given direction.
func Move(d world.Direction) Command {
	return Command{Kind: KindMove, Direction: d}
}

// EndTurn returns an end-turn command.
func EndTurn() Command {
	return Command{Kind: KindEndTurn}
}

// String returns the command's canonical token.
func (c Command) String() string {
	if c.Kind == KindMove {
		return c.Direction.String()
	}
	return "end"
}

// UnknownCommandError reports a token that is not a command.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (try up, down, left, right or end)", e.Token)
}

// Parse converts a token into a command. Tokens are case-insensitive and may
// be abbreviated to their first letter.
func Parse(token string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up", "u":
		return Move(world.Up), nil
	case "down", "d":
		return Move(world.Down), nil
	case "left", "l":
		return Move(world.Left), nil
	case "right", "r":
		return Move(world.Right), nil
	case "end", "e":
		return EndTurn(), nil
	default:
		return Command{}, &UnknownCommandError{Token: token}
	}
}

// Source supplies commands one at a time. Next blocks until a command is
// available and returns ErrNoMoreInput once the input is exhausted. Any other
// error is a malformed command; the caller may report it and ask again.
type Source interface {
	Next(ctx context.Context) (Command, error)
}

// Script is a Source that replays a fixed list of commands.
type Script struct {
	commands []Command
}

// NewScript creates a Source that yields the given commands in order.
func NewScript(commands ...Command) *Script {
	return &Script{commands: commands}
}

// Next returns the next scripted command.
func (s *Script) Next(ctx context.Context) (Command, error) {
	if err := ctx.Err(); err != nil {
		return Command{}, err
	}
	if len(s.commands) == 0 {
		return Command{}, ErrNoMoreInput
	}
	next := s.commands[0]
	s.commands = s.commands[1:]
	return next, nil
}

package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/input"
	"github.com/samdwyer/skirmish/internal/world"
)

// KeySource reads commands from the keyboard: arrow keys move, Enter or
// Space ends the turn, and Esc, Ctrl-C or q quit.
type KeySource struct {
	screen *Screen
}

// NewKeySource creates a source reading key events from screen.
func NewKeySource(screen *Screen) *KeySource {
	return &KeySource{screen: screen}
}

// Next blocks until a key that maps to a command arrives. Other keys are
// ignored. Quitting, or the screen closing, yields input.ErrNoMoreInput.
// Cancelling ctx interrupts the wait and returns ctx.Err().
func (k *KeySource) Next(ctx context.Context) (input.Command, error) {
	stop := context.AfterFunc(ctx, k.screen.Interrupt)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return input.Command{}, err
		}

		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return input.Command{}, input.ErrNoMoreInput
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventInterrupt:
			// Checked against ctx at the top of the loop.
		case *tcell.EventKey:
			cmd, ok, quit := keyCommand(ev.Key(), ev.Rune())
			if quit {
				return input.Command{}, input.ErrNoMoreInput
			}
			if ok {
				return cmd, nil
			}
		}
	}
}

// keyCommand maps a key press to a command. ok is false for keys with no
// binding; quit is true for keys that end the session.
func keyCommand(key tcell.Key, r rune) (cmd input.Command, ok, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Command{}, false, true
	case tcell.KeyUp:
		return input.Move(world.Up), true, false
	case tcell.KeyDown:
		return input.Move(world.Down), true, false
	case tcell.KeyLeft:
		return input.Move(world.Left), true, false
	case tcell.KeyRight:
		return input.Move(world.Right), true, false
	case tcell.KeyEnter:
		return input.EndTurn(), true, false
	case tcell.KeyRune:
		switch r {
		case ' ':
			return input.EndTurn(), true, false
		case 'q', 'Q':
			return input.Command{}, false, true
		}
	}
	return input.Command{}, false, false
}

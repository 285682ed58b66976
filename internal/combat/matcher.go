package combat

import (
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// IsGesturePrefix returns true if history is a prefix of (or equal to) gesture.
func IsGesturePrefix(history, gesture []world.Direction) bool {
	if len(history) > len(gesture) {
		return false
	}
	for i, d := range history {
		if gesture[i] != d {
			return false
		}
	}
	return true
}

// GestureMatches returns true if history is exactly the gesture.
func GestureMatches(history, gesture []world.Direction) bool {
	return len(history) == len(gesture) && IsGesturePrefix(history, gesture)
}

// Available filters actions down to those that can still be completed this
// turn: the history so far follows the gesture, and the remaining steps fit
// in the points left. Input order is preserved.
func Available(actions []*gamedata.ActionDef, history []world.Direction, pointsRemaining int) []*gamedata.ActionDef {
	available := make([]*gamedata.ActionDef, 0, len(actions))
	for _, action := range actions {
		if !IsGesturePrefix(history, action.Gesture) {
			continue
		}
		if len(action.Gesture)-len(history) > pointsRemaining {
			continue
		}
		available = append(available, action)
	}
	return available
}

// Triggered returns the first action whose gesture equals history, or nil.
func Triggered(actions []*gamedata.ActionDef, history []world.Direction) *gamedata.ActionDef {
	for _, action := range actions {
		if GestureMatches(history, action.Gesture) {
			return action
		}
	}
	return nil
}

// Outcome describes an action that fired.
type Outcome struct {
	Action  *gamedata.ActionDef
	Actor   string
	Origin  world.Square // Actor's final square
	Effect  Effect
	Hits    []Hit
	Message string
}

// TotalDamage sums the damage dealt across all hits.
func (o *Outcome) TotalDamage() int {
	total := 0
	for _, h := range o.Hits {
		total += h.Damage
	}
	return total
}

// TryExecute fires the action whose gesture matches the completed history.
// It returns a nil outcome, and no error, when nothing matches.
func TryExecute(actor string, actions []*gamedata.ActionDef, history []world.Direction, g *world.Grid, targets Targets) (*Outcome, error) {
	action := Triggered(actions, history)
	if action == nil {
		return nil, nil
	}

	origin, ok := g.Find(actor)
	if !ok {
		return nil, &world.EntityNotFoundError{ID: actor}
	}

	effect := ResolveEffect(action, origin, g)
	hits, err := Apply(effect, g, targets)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Action:  action,
		Actor:   actor,
		Origin:  origin,
		Effect:  effect,
		Hits:    hits,
		Message: describeHits(actor, action, hits),
	}, nil
}

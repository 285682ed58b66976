// Package game provides the turn controller, game state and main loop.
package game

// Phase is the turn controller's state.
type Phase int

const (
	// PhaseSelectingMove - the active entity is choosing directions
	PhaseSelectingMove Phase = iota
	// PhaseActionCheck - the turn is over; checking whether a gesture fired
	PhaseActionCheck
	// PhaseTurnEnded - effects applied, about to hand over to the next entity
	PhaseTurnEnded
	// PhaseGameOver - the win condition holds; no further turns
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSelectingMove:
		return "selecting_move"
	case PhaseActionCheck:
		return "action_check"
	case PhaseTurnEnded:
		return "turn_ended"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

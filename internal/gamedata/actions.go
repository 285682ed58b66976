package gamedata

import (
	"fmt"

	"github.com/samdwyer/skirmish/internal/world"
)

// =============================================================================
// GESTURE ACTIONS
// =============================================================================
//
// An action fires when the moves an entity makes during its turn spell out the
// action's gesture exactly. The effect then lands on the action's tiles, which
// are offsets from the square the entity finished on.
//
// JSON Schema:
// ------------
// {
//   "id": "excelsior",
//   "name": "Excelsior",
//   "description": "...",
//   "gesture": ["left", "right", "right"],
//   "tiles": [[-1, 1]],
//   "effect": { "type": "damage", "amount": 1 }
// }
//
// Tiles are [row, col]: [-1, 1] is one row up and one column right.
//
// Effects are plain data. The combat package interprets the type tag:
//    - damage: occupant loses `amount` health
//    - heal:   occupant regains `amount` health, capped at max
//
// Out-of-bounds and empty tiles are skipped.

// EffectType tags what an action's effect does.
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
)

// Valid reports whether t is a known effect type.
func (t EffectType) Valid() bool {
	return t == EffectDamage || t == EffectHeal
}

// EffectDef describes an action's effect as data.
type EffectDef struct {
	Type   EffectType `json:"type"`
	Amount int        `json:"amount"`
}

// ActionDef defines a gesture action loaded from JSON.
type ActionDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Gesture     []world.Direction `json:"gesture"`
	Tiles       []world.Square    `json:"tiles"`
	Effect      EffectDef         `json:"effect"`
}

// Validate checks that the definition can be matched and applied.
func (a *ActionDef) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("action %q has no id", a.Name)
	}
	if len(a.Gesture) == 0 {
		return fmt.Errorf("action %s has an empty gesture", a.ID)
	}
	if !a.Effect.Type.Valid() {
		return fmt.Errorf("action %s has unknown effect type %q", a.ID, a.Effect.Type)
	}
	if a.Effect.Amount < 0 {
		return fmt.Errorf("action %s has negative effect amount %d", a.ID, a.Effect.Amount)
	}
	return nil
}

// ActionsFile represents the structure of actions.json.
type ActionsFile struct {
	Actions []ActionDef `json:"actions"`
}

// LoadActions loads and validates action definitions from the embedded actions.json file.
func LoadActions() ([]ActionDef, error) {
	file, err := Load[ActionsFile]("actions.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Actions {
		if err := file.Actions[i].Validate(); err != nil {
			return nil, fmt.Errorf("actions.json: %w", err)
		}
	}
	return file.Actions, nil
}

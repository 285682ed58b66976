// Package entity provides the combatants that move around the grid.
package entity

import (
	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// DefaultMaxHealth is the starting health when no profile overrides it.
const DefaultMaxHealth = 13

// Entity is a single combatant on the grid. Its name doubles as its grid id.
type Entity struct {
	Name   string // Unique name, also the occupant id on the grid
	Team   Team
	Facing Facing

	HP, MaxHP int

	// Actions are the gestures this entity owns. They never change during a game.
	Actions []*gamedata.ActionDef
}

// New creates an entity at full default health with no actions.
func New(name string, team Team, facing Facing) *Entity {
	return &Entity{
		Name:   name,
		Team:   team,
		Facing: facing,
		HP:     DefaultMaxHealth,
		MaxHP:  DefaultMaxHealth,
	}
}

// InitFromProfile sets health and owned actions from a loadout profile.
func (e *Entity) InitFromProfile(profile *gamedata.ProfileDef, actions *gamedata.ActionRegistry) error {
	if profile == nil {
		return nil
	}
	owned, err := actions.Resolve(profile.Actions)
	if err != nil {
		return err
	}
	if profile.MaxHealth > 0 {
		e.HP = profile.MaxHealth
		e.MaxHP = profile.MaxHealth
	}
	e.Actions = owned
	return nil
}

// Glyph returns the single-character board glyph for this entity.
func (e *Entity) Glyph() string {
	return world.Glyph(e.Name)
}

// =============================================================================
// combat.Target implementation
// =============================================================================

// GetName returns the entity's name.
func (e *Entity) GetName() string { return e.Name }

// GetHP returns current health.
func (e *Entity) GetHP() int { return e.HP }

// IsAlive returns true if the entity has health remaining.
func (e *Entity) IsAlive() bool { return e.HP > 0 }

// TakeDamage reduces health and returns the actual damage taken.
func (e *Entity) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// Heal restores health up to the maximum and returns the actual amount healed.
func (e *Entity) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if e.HP+actual > e.MaxHP {
		actual = e.MaxHP - e.HP
	}
	e.HP += actual
	return actual
}

// Ensure Entity implements combat.Target
var _ combat.Target = (*Entity)(nil)

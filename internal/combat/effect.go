// Package combat matches movement gestures against actions and applies
// their effects to whatever occupies the targeted squares.
package combat

import (
	"fmt"
	"strings"

	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// Target is anything an action's effect can land on.
type Target interface {
	GetName() string
	GetHP() int
	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Targets looks up the entity behind a grid occupant id.
type Targets interface {
	Target(id string) (Target, bool)
}

// Effect is an action's effect with its tiles resolved to absolute squares.
// It is plain data: nothing happens until Apply interprets it.
type Effect struct {
	Kind   gamedata.EffectType
	Amount int
	Tiles  []world.Square // In-bounds squares only
}

// ResolveEffect anchors an action's tile offsets at origin. Offsets that land
// outside the grid are dropped.
func ResolveEffect(action *gamedata.ActionDef, origin world.Square, g *world.Grid) Effect {
	effect := Effect{
		Kind:   action.Effect.Type,
		Amount: action.Effect.Amount,
		Tiles:  make([]world.Square, 0, len(action.Tiles)),
	}
	for _, offset := range action.Tiles {
		sq := origin.Add(offset)
		if g.InBounds(sq) {
			effect.Tiles = append(effect.Tiles, sq)
		}
	}
	return effect
}

// Hit records the effect landing on one target.
type Hit struct {
	Target  string
	Square  world.Square
	Damage  int
	Healing int
}

// Apply interprets the effect against the current occupants of its tiles.
// Empty tiles are skipped. An occupant with no matching target means the
// grid and the roster disagree, which is reported as EntityNotFoundError.
// An unknown effect kind is a ConfigurationError and touches nothing.
func Apply(effect Effect, g *world.Grid, targets Targets) ([]Hit, error) {
	if !effect.Kind.Valid() {
		return nil, world.Configurationf("unknown effect type %q", effect.Kind)
	}

	var hits []Hit
	for _, sq := range effect.Tiles {
		id, err := g.Get(sq)
		if err != nil {
			return hits, err
		}
		if id == "" {
			continue
		}

		target, ok := targets.Target(id)
		if !ok {
			return hits, &world.EntityNotFoundError{ID: id}
		}

		hit := Hit{Target: target.GetName(), Square: sq}
		switch effect.Kind {
		case gamedata.EffectDamage:
			hit.Damage = target.TakeDamage(effect.Amount)
		case gamedata.EffectHeal:
			hit.Healing = target.Heal(effect.Amount)
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// describeHits builds a human-readable summary of what an action did.
func describeHits(actor string, action *gamedata.ActionDef, hits []Hit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s uses %s!", actor, action.Name)
	if len(hits) == 0 {
		b.WriteString(" It hits nothing.")
		return b.String()
	}
	for _, h := range hits {
		switch {
		case h.Damage > 0:
			fmt.Fprintf(&b, " %s takes %d damage!", h.Target, h.Damage)
		case h.Healing > 0:
			fmt.Fprintf(&b, " %s heals %d HP!", h.Target, h.Healing)
		default:
			fmt.Fprintf(&b, " %s is unaffected.", h.Target)
		}
	}
	return b.String()
}

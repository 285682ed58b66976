package entity

import "github.com/samdwyer/skirmish/internal/combat"

// Roster is the ordered list of entities in a game. Turn order follows the
// roster order.
type Roster struct {
	Members []*Entity
}

// NewRoster creates a roster from entities in turn order.
func NewRoster(members ...*Entity) *Roster {
	return &Roster{Members: members}
}

// Len returns the number of entities.
func (r *Roster) Len() int {
	return len(r.Members)
}

// At returns the entity at the given turn index.
func (r *Roster) At(i int) *Entity {
	if i < 0 || i >= len(r.Members) {
		return nil
	}
	return r.Members[i]
}

// ByName returns the entity with the given name, or nil.
func (r *Roster) ByName(name string) *Entity {
	for _, m := range r.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Names returns entity names in turn order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.Members))
	for i, m := range r.Members {
		names[i] = m.Name
	}
	return names
}

// TeamCount returns how many entities belong to the team.
func (r *Roster) TeamCount(team Team) int {
	count := 0
	for _, m := range r.Members {
		if m.Team == team {
			count++
		}
	}
	return count
}

// AliveCount returns how many entities on the team still have health.
func (r *Roster) AliveCount(team Team) int {
	count := 0
	for _, m := range r.Members {
		if m.Team == team && m.IsAlive() {
			count++
		}
	}
	return count
}

// Target implements combat.Targets.
func (r *Roster) Target(id string) (combat.Target, bool) {
	e := r.ByName(id)
	if e == nil {
		return nil, false
	}
	return e, true
}

// Ensure Roster implements combat.Targets
var _ combat.Targets = (*Roster)(nil)

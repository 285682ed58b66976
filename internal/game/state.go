package game

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

const (
	// RequiredEntities is the exact number of entities in a skirmish.
	RequiredEntities = 4
	// EntitiesPerTeam is the exact number of entities on each side.
	EntitiesPerTeam = RequiredEntities / entity.NumTeams
)

// TurnState holds what the active entity has done so far this turn. It is
// created fresh at the start of every turn.
type TurnState struct {
	PointsRemaining int
	History         []world.Direction // Append-only
	Ended           bool
}

// NewTurnState creates the state for a fresh turn.
func NewTurnState(maxPoints int) *TurnState {
	return &TurnState{
		PointsRemaining: maxPoints,
		History:         make([]world.Direction, 0, maxPoints),
	}
}

// record appends an accepted move and spends a point.
func (t *TurnState) record(d world.Direction) {
	t.History = append(t.History, d)
	t.PointsRemaining--
}

// State holds everything about a running game. It is owned by a single
// Controller; nothing else mutates it.
type State struct {
	ID     string // Session id, used to correlate logs and traces
	Roster *entity.Roster
	Grid   *world.Grid

	Active    int        // Index into Roster of the entity whose turn it is
	Turn      *TurnState // Active entity's turn
	TurnCount int        // Completed turns

	// Available maps entity name to the owned actions still completable
	// this turn. Only the active entity's entry changes mid-turn.
	Available map[string][]*gamedata.ActionDef
}

// NewState validates the roster, builds the grid and places every entity.
// The roster must hold exactly four uniquely named entities, two per team,
// and every entity needs an in-bounds, unshared starting square.
func NewState(cfg Config, roster *entity.Roster, placements map[string]world.Square) (*State, error) {
	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	for _, e := range roster.Members {
		sq, ok := placements[e.Name]
		if !ok {
			return nil, world.Configurationf("entity %q has no starting square", e.Name)
		}
		occupant, err := grid.Get(sq)
		if err != nil {
			return nil, world.Configurationf("entity %q starts off the grid: %v", e.Name, err)
		}
		if occupant != "" {
			return nil, world.Configurationf("entities %q and %q share starting square %s", occupant, e.Name, sq)
		}
		if err := grid.Set(sq, e.Name); err != nil {
			return nil, err
		}
	}

	s := &State{
		ID:        uuid.NewString(),
		Roster:    roster,
		Grid:      grid,
		Available: make(map[string][]*gamedata.ActionDef, roster.Len()),
	}
	for _, e := range roster.Members {
		s.Available[e.Name] = combat.Available(e.Actions, nil, cfg.MaxMovementPoints)
	}
	s.startTurn(cfg.MaxMovementPoints)
	return s, nil
}

// validateRoster enforces four entities, a 2/2 team split and unique names.
func validateRoster(roster *entity.Roster) error {
	if roster == nil || roster.Len() != RequiredEntities {
		n := 0
		if roster != nil {
			n = roster.Len()
		}
		return world.Configurationf("exactly %d entities are required, got %d", RequiredEntities, n)
	}

	names := mapset.New[string]()
	for _, e := range roster.Members {
		if e.Name == "" {
			return world.Configurationf("entity names must be non-empty")
		}
		if names.Has(e.Name) {
			return world.Configurationf("entity name %q is used more than once", e.Name)
		}
		names.Put(e.Name)
		if !e.Team.Valid() {
			return world.Configurationf("entity %q has invalid team %d", e.Name, int(e.Team))
		}
	}

	for _, team := range []entity.Team{entity.TeamA, entity.TeamB} {
		if n := roster.TeamCount(team); n != EntitiesPerTeam {
			return world.Configurationf("%s has %d entities, want %d", team, n, EntitiesPerTeam)
		}
	}
	return nil
}

// ActiveEntity returns the entity whose turn it is.
func (s *State) ActiveEntity() *entity.Entity {
	return s.Roster.At(s.Active)
}

// ActivePosition returns the active entity's square.
func (s *State) ActivePosition() (world.Square, error) {
	active := s.ActiveEntity()
	sq, ok := s.Grid.Find(active.Name)
	if !ok {
		return world.Square{}, &world.EntityNotFoundError{ID: active.Name}
	}
	return sq, nil
}

// startTurn resets the turn state for the active entity.
func (s *State) startTurn(maxPoints int) {
	s.Turn = NewTurnState(maxPoints)
	s.refreshAvailable()
}

// refreshAvailable recomputes the active entity's completable actions.
func (s *State) refreshAvailable() {
	active := s.ActiveEntity()
	s.Available[active.Name] = combat.Available(active.Actions, s.Turn.History, s.Turn.PointsRemaining)
}

// advance hands the turn to the next entity in roster order. The outgoing
// entity's available actions go back to what a fresh turn allows.
func (s *State) advance(maxPoints int) {
	prev := s.ActiveEntity()
	s.Available[prev.Name] = combat.Available(prev.Actions, nil, maxPoints)
	s.Active = (s.Active + 1) % s.Roster.Len()
	s.TurnCount++
	s.startTurn(maxPoints)
}

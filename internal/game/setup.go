package game

import (
	"fmt"

	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/world"
)

// DefaultProfile is the loadout every entity gets at game start.
const DefaultProfile = "default"

// NewRoster builds entities from names in turn order. The first half join
// TeamA and the rest TeamB; facing comes from the team definition and health
// and actions from the default profile.
func NewRoster(names []string, catalog *gamedata.Catalog) (*entity.Roster, error) {
	if len(names) != RequiredEntities {
		return nil, world.Configurationf("exactly %d entities are required, got %d", RequiredEntities, len(names))
	}

	profile := catalog.Profile(DefaultProfile)
	if profile == nil {
		return nil, fmt.Errorf("profile %q not found", DefaultProfile)
	}

	members := make([]*entity.Entity, 0, len(names))
	for i, name := range names {
		team := entity.TeamA
		if i >= EntitiesPerTeam {
			team = entity.TeamB
		}

		def := catalog.Team(int(team))
		if def == nil {
			return nil, fmt.Errorf("team %d not defined", int(team))
		}
		facing, err := entity.ParseFacing(def.Facing)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", def.Name, err)
		}

		e := entity.New(name, team, facing)
		if err := e.InitFromProfile(profile, catalog.Actions); err != nil {
			return nil, fmt.Errorf("entity %s: %w", name, err)
		}
		members = append(members, e)
	}
	return entity.NewRoster(members...), nil
}

// HomePlacements spreads each team along the edge behind it: entities
// facing the top start on the bottom row, and vice versa. The grid needs at
// least two rows so the home rows stay apart.
func HomePlacements(cfg Config, roster *entity.Roster) (map[string]world.Square, error) {
	board, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	top, bottom := board.TopRow(), board.BottomRow()
	if top.Intersects(bottom) {
		return nil, world.Configurationf("a %dx%d grid has no room for opposing home rows", cfg.Width, cfg.Height)
	}

	placements := make(map[string]world.Square, roster.Len())
	for _, facing := range []entity.Facing{entity.FacingTop, entity.FacingBottom} {
		zone := bottom
		if facing == entity.FacingBottom {
			zone = top
		}

		var names []string
		for _, e := range roster.Members {
			if e.Facing == facing {
				names = append(names, e.Name)
			}
		}

		squares, ok := board.Spread(zone, len(names))
		if !ok {
			return nil, world.Configurationf("a %dx%d grid cannot fit %d entities facing %s", cfg.Width, cfg.Height, len(names), facing)
		}
		for i, name := range names {
			placements[name] = squares[i]
			if err := board.Set(squares[i], name); err != nil {
				return nil, err
			}
		}
	}
	return placements, nil
}

// NewDefaultState sets up a game from configured entity names using the
// embedded reference data.
func NewDefaultState(cfg Config, catalog *gamedata.Catalog) (*State, error) {
	roster, err := NewRoster(cfg.Entities, catalog)
	if err != nil {
		return nil, err
	}
	placements, err := HomePlacements(cfg, roster)
	if err != nil {
		return nil, err
	}
	return NewState(cfg, roster, placements)
}

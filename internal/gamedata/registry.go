package gamedata

import (
	"errors"
	"fmt"
)

// =============================================================================
// ActionRegistry
// =============================================================================

// ActionRegistry holds loaded action definitions and provides lookup utilities.
type ActionRegistry struct {
	actions map[string]*ActionDef
}

// NewActionRegistry creates a registry from loaded action definitions.
func NewActionRegistry(actions []ActionDef) *ActionRegistry {
	registry := &ActionRegistry{
		actions: make(map[string]*ActionDef, len(actions)),
	}
	for i := range actions {
		registry.actions[actions[i].ID] = &actions[i]
	}
	return registry
}

// LoadActionRegistry loads and creates a registry from the embedded actions.json.
func LoadActionRegistry() (*ActionRegistry, error) {
	actions, err := LoadActions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, errors.New("no actions loaded from actions.json")
	}
	registry := NewActionRegistry(actions)
	if registry.Count() != len(actions) {
		return nil, fmt.Errorf("actions.json has duplicate ids: %d actions, %d unique", len(actions), registry.Count())
	}
	return registry, nil
}

// MustLoadActionRegistry loads a registry, panicking on error.
func MustLoadActionRegistry() *ActionRegistry {
	registry, err := LoadActionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the action definition with the given ID, or nil if not found.
func (r *ActionRegistry) GetByID(id string) *ActionDef {
	return r.actions[id]
}

// Resolve returns definitions for a list of IDs, failing on the first unknown ID.
func (r *ActionRegistry) Resolve(ids []string) ([]*ActionDef, error) {
	result := make([]*ActionDef, 0, len(ids))
	for _, id := range ids {
		action := r.GetByID(id)
		if action == nil {
			return nil, fmt.Errorf("unknown action %q", id)
		}
		result = append(result, action)
	}
	return result, nil
}

// Count returns the number of distinct action IDs in the registry.
func (r *ActionRegistry) Count() int {
	return len(r.actions)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles all reference data needed to set up a game.
type Catalog struct {
	Actions  *ActionRegistry
	Teams    []TeamDef
	Profiles []ProfileDef
}

// LoadCatalog loads every embedded data file.
func LoadCatalog() (*Catalog, error) {
	actions, err := LoadActionRegistry()
	if err != nil {
		return nil, err
	}
	teams, err := LoadTeams()
	if err != nil {
		return nil, err
	}
	if len(teams) != 2 {
		return nil, fmt.Errorf("teams.json must define exactly 2 teams, got %d", len(teams))
	}
	profiles, err := LoadProfiles()
	if err != nil {
		return nil, err
	}
	return &Catalog{Actions: actions, Teams: teams, Profiles: profiles}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Team returns the team definition with the given ID, or nil if not found.
func (c *Catalog) Team(id int) *TeamDef {
	for i := range c.Teams {
		if c.Teams[i].ID == id {
			return &c.Teams[i]
		}
	}
	return nil
}

// Profile returns the profile with the given ID, or nil if not found.
func (c *Catalog) Profile(id string) *ProfileDef {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}

package gamedata

// ProfileDef is a starting loadout handed to entities at game start.
type ProfileDef struct {
	ID        string   `json:"id"`        // Unique identifier (e.g., "default")
	Name      string   `json:"name"`      // Display name
	MaxHealth int      `json:"maxHealth"` // Starting and maximum health
	Actions   []string `json:"actions"`   // Action ids owned by the entity
}

// ProfilesFile represents the structure of profiles.json.
type ProfilesFile struct {
	Profiles []ProfileDef `json:"profiles"`
}

// LoadProfiles loads loadout profiles from the embedded profiles.json file.
func LoadProfiles() ([]ProfileDef, error) {
	file, err := Load[ProfilesFile]("profiles.json")
	if err != nil {
		return nil, err
	}
	return file.Profiles, nil
}

package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/world"
)

func TestLoadActions(t *testing.T) {
	actions, err := LoadActions()
	if err != nil {
		t.Fatalf("Failed to load actions: %v", err)
	}

	if len(actions) != 3 {
		t.Errorf("Expected 3 actions, got %d", len(actions))
	}

	expectedIDs := map[string]bool{"excelsior": false, "kowabunga": false, "multi_strike": false}
	for _, a := range actions {
		if _, ok := expectedIDs[a.ID]; ok {
			expectedIDs[a.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected action %q not found", id)
		}
	}
}

func TestActionRegistry(t *testing.T) {
	registry := MustLoadActionRegistry()

	excelsior := registry.GetByID("excelsior")
	if excelsior == nil {
		t.Fatal("Excelsior not found by ID")
	}
	if excelsior.Name != "Excelsior" {
		t.Errorf("Expected name 'Excelsior', got %q", excelsior.Name)
	}

	wantGesture := []world.Direction{world.Left, world.Right, world.Right}
	if len(excelsior.Gesture) != len(wantGesture) {
		t.Fatalf("Excelsior gesture = %v, want %v", excelsior.Gesture, wantGesture)
	}
	for i := range wantGesture {
		if excelsior.Gesture[i] != wantGesture[i] {
			t.Errorf("Excelsior gesture[%d] = %v, want %v", i, excelsior.Gesture[i], wantGesture[i])
		}
	}
	if len(excelsior.Tiles) != 1 || excelsior.Tiles[0] != world.Sq(-1, 1) {
		t.Errorf("Excelsior tiles = %v, want [(-1,1)]", excelsior.Tiles)
	}
	if excelsior.Effect.Type != EffectDamage || excelsior.Effect.Amount != 1 {
		t.Errorf("Excelsior effect = %+v, want damage 1", excelsior.Effect)
	}

	kowabunga := registry.GetByID("kowabunga")
	if kowabunga == nil {
		t.Fatal("Kowabunga not found by ID")
	}
	if len(kowabunga.Tiles) != 1 || kowabunga.Tiles[0] != world.Sq(1, 0) {
		t.Errorf("Kowabunga tiles = %v, want [(1,0)]", kowabunga.Tiles)
	}

	if registry.GetByID("missing") != nil {
		t.Error("GetByID(missing) should return nil")
	}
}

func TestActionRegistryResolve(t *testing.T) {
	registry := MustLoadActionRegistry()

	got, err := registry.Resolve([]string{"kowabunga", "excelsior"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "kowabunga" || got[1].ID != "excelsior" {
		t.Errorf("Resolve returned %v, want kowabunga then excelsior", got)
	}

	if _, err := registry.Resolve([]string{"excelsior", "nope"}); err == nil {
		t.Error("Resolve with unknown id should fail")
	}
}

func TestActionRegistryCountsDistinctIDs(t *testing.T) {
	registry := NewActionRegistry([]ActionDef{
		{ID: "jab", Name: "Jab"},
		{ID: "jab", Name: "Jab Again"},
		{ID: "hook", Name: "Hook"},
	})
	if got := registry.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestEffectTypeValid(t *testing.T) {
	tests := []struct {
		kind EffectType
		want bool
	}{
		{EffectDamage, true},
		{EffectHeal, true},
		{"poison", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("EffectType(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestActionDefValidate(t *testing.T) {
	tests := []struct {
		name  string
		def   ActionDef
		valid bool
	}{
		{
			name:  "valid",
			def:   ActionDef{ID: "a", Gesture: []world.Direction{world.Up}, Effect: EffectDef{Type: EffectDamage, Amount: 2}},
			valid: true,
		},
		{
			name: "missing id",
			def:  ActionDef{Name: "A", Gesture: []world.Direction{world.Up}, Effect: EffectDef{Type: EffectDamage}},
		},
		{
			name: "empty gesture",
			def:  ActionDef{ID: "a", Effect: EffectDef{Type: EffectDamage, Amount: 1}},
		},
		{
			name: "unknown effect",
			def:  ActionDef{ID: "a", Gesture: []world.Direction{world.Up}, Effect: EffectDef{Type: "teleport"}},
		},
		{
			name: "negative amount",
			def:  ActionDef{ID: "a", Gesture: []world.Direction{world.Up}, Effect: EffectDef{Type: EffectHeal, Amount: -1}},
		},
	}

	for _, tt := range tests {
		err := tt.def.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() should pass, got %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: Validate() should fail", tt.name)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog error: %v", err)
	}

	if catalog.Actions.Count() != 3 {
		t.Errorf("Expected 3 actions, got %d", catalog.Actions.Count())
	}

	top := catalog.Team(0)
	bottom := catalog.Team(1)
	if top == nil || bottom == nil {
		t.Fatal("Expected teams 0 and 1")
	}
	if top.Facing != "top" || bottom.Facing != "bottom" {
		t.Errorf("Team facings = %q, %q; want top, bottom", top.Facing, bottom.Facing)
	}
	if catalog.Team(2) != nil {
		t.Error("Team(2) should be nil")
	}

	profile := catalog.Profile("default")
	if profile == nil {
		t.Fatal("default profile not found")
	}
	if profile.MaxHealth != 13 {
		t.Errorf("default MaxHealth = %d, want 13", profile.MaxHealth)
	}
	if len(profile.Actions) != 2 || profile.Actions[0] != "excelsior" || profile.Actions[1] != "kowabunga" {
		t.Errorf("default actions = %v, want [excelsior kowabunga]", profile.Actions)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTeamDefColor(t *testing.T) {
	def := TeamDef{ID: 0, Name: "Test", Color: "#FF0000"}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	bad := TeamDef{Color: "nope"}
	if got := bad.TCellColor(); got != tcell.ColorWhite {
		t.Errorf("TCellColor for malformed color = %v, want white", got)
	}
}

package gamedata

import "testing"

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(themes) != 2 {
		t.Errorf("Expected 2 themes, got %d", len(themes))
	}

	for _, th := range themes {
		if _, err := th.Palette(); err != nil {
			t.Errorf("Theme %q has an invalid palette: %v", th.ID, err)
		}
		if th.Labels.Score == "" || th.Labels.GameOver == "" || th.Labels.TooSmall == "" {
			t.Errorf("Theme %q is missing labels", th.ID)
		}
	}
}

func TestThemeRegistry(t *testing.T) {
	registry, err := LoadThemeRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 themes, got %d", registry.Count())
	}

	classic := registry.GetByID("classic")
	if classic == nil {
		t.Fatal("Classic theme not found by ID")
	}
	if classic.Name != "Classic" {
		t.Errorf("Expected name 'Classic', got %q", classic.Name)
	}

	def, err := registry.Lookup("")
	if err != nil || def.ID != DefaultThemeID {
		t.Errorf("Lookup(\"\") = %v, %v; want default theme", def, err)
	}

	if _, err := registry.Lookup("neon"); err == nil {
		t.Error("Lookup of an unknown theme should fail")
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
		{"#0D0D1A", true},
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

func TestPaletteRejectsBadColor(t *testing.T) {
	def := ThemeDef{ID: "broken"}
	if _, err := def.Palette(); err == nil {
		t.Error("Palette() with empty colors should fail")
	}
}

func TestGlyphRune(t *testing.T) {
	if got := GlyphRune("@", '?'); got != '@' {
		t.Errorf("GlyphRune(\"@\") = %c, want @", got)
	}
	if got := GlyphRune("", '?'); got != '?' {
		t.Errorf("GlyphRune(\"\") = %c, want ?", got)
	}
}

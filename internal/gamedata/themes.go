package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// DefaultThemeID is used when no theme is configured.
const DefaultThemeID = "classic"

// ColorsDef holds hex colors for each drawable element.
type ColorsDef struct {
	Background  string `json:"background"`
	Grid        string `json:"grid"`
	Head        string `json:"head"`
	Body        string `json:"body"`
	Food        string `json:"food"`
	Border      string `json:"border"`
	HUD         string `json:"hud"`
	Best        string `json:"best"`
	Info        string `json:"info"`
	Overlay     string `json:"overlay"`
	OverlayText string `json:"overlayText"`
}

// GlyphsDef holds the single-character glyph for each board tile.
type GlyphsDef struct {
	Head string `json:"head"`
	Body string `json:"body"`
	Food string `json:"food"`
	Grid string `json:"grid"`
}

// LabelsDef holds HUD and overlay text.
type LabelsDef struct {
	Score    string `json:"score"`
	Best     string `json:"best"`
	Speed    string `json:"speed"`
	Pause    string `json:"pause"`
	Resume   string `json:"resume"`
	Paused   string `json:"paused"`
	Info     string `json:"info"`
	GameOver string `json:"gameOver"`
	Restart  string `json:"restart"`
	TooSmall string `json:"tooSmall"`
}

// ThemeDef defines a color and glyph theme loaded from JSON.
type ThemeDef struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Colors ColorsDef `json:"colors"`
	Glyphs GlyphsDef `json:"glyphs"`
	Labels LabelsDef `json:"labels"`
}

// Palette is a theme's colors parsed for tcell.
type Palette struct {
	Background  tcell.Color
	Grid        tcell.Color
	Head        tcell.Color
	Body        tcell.Color
	Food        tcell.Color
	Border      tcell.Color
	HUD         tcell.Color
	Best        tcell.Color
	Info        tcell.Color
	Overlay     tcell.Color
	OverlayText tcell.Color
}

// Palette parses every color of the theme.
func (t *ThemeDef) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", t.Colors.Background, &p.Background},
		{"grid", t.Colors.Grid, &p.Grid},
		{"head", t.Colors.Head, &p.Head},
		{"body", t.Colors.Body, &p.Body},
		{"food", t.Colors.Food, &p.Food},
		{"border", t.Colors.Border, &p.Border},
		{"hud", t.Colors.HUD, &p.HUD},
		{"best", t.Colors.Best, &p.Best},
		{"info", t.Colors.Info, &p.Info},
		{"overlay", t.Colors.Overlay, &p.Overlay},
		{"overlayText", t.Colors.OverlayText, &p.OverlayText},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s color %s: %w", t.ID, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// GlyphRune returns the first rune of a glyph string, or fallback if empty.
func GlyphRune(glyph string, fallback rune) rune {
	for _, r := range glyph {
		return r
	}
	return fallback
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// ThemeRegistry holds loaded themes by ID.
type ThemeRegistry struct {
	themes []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	return &ThemeRegistry{themes: themes}
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *ThemeDef {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return &r.themes[i]
		}
	}
	return nil
}

// Lookup returns the theme with the given ID. An empty ID selects the
// default theme.
func (r *ThemeRegistry) Lookup(id string) (*ThemeDef, error) {
	if id == "" {
		id = DefaultThemeID
	}
	t := r.GetByID(id)
	if t == nil {
		return nil, fmt.Errorf("unknown theme %q", id)
	}
	return t, nil
}

// Count returns the number of loaded themes.
func (r *ThemeRegistry) Count() int {
	return len(r.themes)
}

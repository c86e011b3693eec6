package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakeband/internal/gamedata"
	"github.com/samdwyer/snakeband/internal/session"
	"github.com/samdwyer/snakeband/internal/world"
)

// newTestRenderer returns a renderer drawing to an 80x24 simulation screen.
func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom failed: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(80, 24)

	registry, err := gamedata.LoadThemeRegistry()
	if err != nil {
		t.Fatalf("LoadThemeRegistry failed: %v", err)
	}
	theme, err := registry.Lookup("classic")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	r, err := NewRenderer(screen, theme)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r, sim
}

func newTestSession(t *testing.T) *session.GameState {
	t.Helper()
	board, err := world.NewBoard(20, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	s, err := session.New(board, 0)
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	return s
}

// screenText returns the runes drawn on row y.
func screenText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderDrawsHead(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := newTestSession(t)

	r.Render(s.Snapshot())

	rect := r.Layout().CellRect(world.Cell{X: 10, Y: 5})
	got, _, _, _ := sim.GetContent(rect.X, rect.Y)
	if got != '@' {
		t.Errorf("head glyph = %q, want '@'", got)
	}
}

func TestRenderHUD(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := newTestSession(t)

	r.Render(s.Snapshot())

	if row := screenText(sim, 0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "[ Pause ]") {
		t.Errorf("top row = %q, want score and pause button", row)
	}
	if row := screenText(sim, 1); !strings.Contains(row, "Best: 0") {
		t.Errorf("second row = %q, want best score", row)
	}

	s.TogglePause()
	r.Render(s.Snapshot())
	if row := screenText(sim, 0); !strings.Contains(row, "[ Resume ]") {
		t.Errorf("paused top row = %q, want resume button", row)
	}
}

func TestRenderGameOver(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := newTestSession(t)

	for !s.GameOver() {
		s.Tick()
	}
	r.Render(s.Snapshot())

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(screenText(sim, y), "Game Over!") {
			found = true
			break
		}
	}
	if !found {
		t.Error("game over overlay not drawn")
	}
}

func TestPauseButtonMatchesLabel(t *testing.T) {
	r, _ := newTestRenderer(t)
	running := r.PauseButton(false)
	paused := r.PauseButton(true)
	if paused.W <= running.W {
		t.Errorf("resume button (%d) should be wider than pause button (%d)", paused.W, running.W)
	}
}

func TestRenderBoardBelowHUD(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := newTestSession(t)

	r.Render(s.Snapshot())

	// Row 0 of the board carries grid dots, not HUD text.
	top := r.Layout().CellRect(world.Cell{X: 0, Y: 0})
	if top.Y != 2 {
		t.Fatalf("board starts on row %d, want 2", top.Y)
	}
	if got, _, _, _ := sim.GetContent(top.X, top.Y); got != '.' {
		t.Errorf("first board cell = %q, want grid dot", got)
	}
	if row := screenText(sim, 1); !strings.Contains(row, "Best: 0") {
		t.Errorf("second row = %q, want best score", row)
	}
}

func TestRenderTooSmall(t *testing.T) {
	r, sim := newTestRenderer(t)
	s := newTestSession(t)
	board := r.Layout()

	sim.SetSize(30, 8)
	l := r.Fit()
	if l.BoardWidth != board.BoardWidth || l.BoardHeight != board.BoardHeight {
		t.Errorf("Fit changed the board from %dx%d to %dx%d",
			board.BoardWidth, board.BoardHeight, l.BoardWidth, l.BoardHeight)
	}

	r.Render(s.Snapshot())

	if row := screenText(sim, 4); !strings.Contains(row, "Terminal too small") {
		t.Errorf("row 4 = %q, want the too-small notice", row)
	}
	if row := screenText(sim, 0); strings.Contains(row, "Score") {
		t.Errorf("HUD drawn on a screen too small for the board: %q", row)
	}
}

func TestFitGrowsCells(t *testing.T) {
	r, sim := newTestRenderer(t)

	sim.SetSize(160, 45)
	if l := r.Fit(); l.CellSize != 2 {
		t.Errorf("CellSize after growing = %d, want 2", l.CellSize)
	}
}

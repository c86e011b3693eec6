package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakeband/internal/gamedata"
	"github.com/samdwyer/snakeband/internal/session"
	"github.com/samdwyer/snakeband/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	theme   *gamedata.ThemeDef
	palette gamedata.Palette
	layout  Layout
}

// NewRenderer creates a renderer for the given screen and theme. The layout
// is fitted to the current screen size.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef) (*Renderer, error) {
	palette, err := theme.Palette()
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		screen:  screen,
		theme:   theme,
		palette: palette,
		layout:  FitLayout(screen.Size()),
	}
	return r, nil
}

// Fit recomputes the layout for the current screen size, keeping the board
// dimensions chosen when the renderer was created.
func (r *Renderer) Fit() Layout {
	cols, rows := r.screen.Size()
	r.layout = FitBoard(cols, rows, r.layout.BoardWidth, r.layout.BoardHeight)
	return r.layout
}

// Layout returns the layout used for drawing.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// PauseButton returns the screen rectangle of the pause button.
func (r *Renderer) PauseButton(paused bool) Rect {
	return r.layout.ButtonRect(r.pauseLabel(paused))
}

// Render draws the board, snake, food and HUD for a snapshot.
func (r *Renderer) Render(snap session.Snapshot) {
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(r.palette.Background)
	r.fill(Rect{W: r.layout.Cols, H: r.layout.Rows}, ' ', bg)

	if !r.layout.Fits(snap.Width, snap.Height) {
		r.RenderMessage(r.theme.Labels.TooSmall, r.layout.Rows/2)
		return
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c := world.Cell{X: x, Y: y}
			r.drawCell(c, snap.TileAt(c))
		}
	}
	r.drawBorder(snap.Width, snap.Height)
	r.drawHUD(snap)

	if snap.GameOver {
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

// drawCell paints one board cell.
func (r *Renderer) drawCell(c world.Cell, tile world.Tile) {
	rect := r.layout.CellRect(c)
	glyphs := r.theme.Glyphs

	var glyph rune
	var style tcell.Style
	switch tile {
	case world.TileHead:
		glyph = gamedata.GlyphRune(glyphs.Head, tile.Rune())
		style = tcell.StyleDefault.Background(r.palette.Head).Foreground(r.palette.Background).Bold(true)
	case world.TileBody:
		glyph = gamedata.GlyphRune(glyphs.Body, tile.Rune())
		style = tcell.StyleDefault.Background(r.palette.Body).Foreground(r.palette.Background)
	case world.TileFood:
		glyph = gamedata.GlyphRune(glyphs.Food, tile.Rune())
		style = tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Food).Bold(true)
	default:
		// Grid dot in the top-left corner of each free cell.
		style = tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Grid)
		r.screen.SetContent(rect.X, rect.Y, gamedata.GlyphRune(glyphs.Grid, tile.Rune()), style)
		return
	}

	r.fill(rect, ' ', style)
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		r.screen.SetContent(rect.X, y, glyph, style)
	}
}

// drawBorder outlines the right and bottom edges of the board when the
// terminal has room beyond it.
func (r *Renderer) drawBorder(width, height int) {
	board := r.layout.BoardRect(width, height)
	style := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Border)

	right := board.X + board.W
	bottom := board.Y + board.H
	hasRight := right < r.layout.Cols
	hasBottom := bottom < r.layout.Rows-infoRows

	if hasRight {
		for y := board.Y; y < bottom; y++ {
			r.screen.SetContent(right, y, tcell.RuneVLine, style)
		}
	}
	if hasBottom {
		for x := board.X; x < right; x++ {
			r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
		}
	}
	if hasRight && hasBottom {
		r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
	}
}

// drawHUD draws the score, best score, speed, pause button and hint line.
func (r *Renderer) drawHUD(snap session.Snapshot) {
	labels := r.theme.Labels
	bg := tcell.StyleDefault.Background(r.palette.Background)

	r.drawText(1, 0, fmt.Sprintf("%s: %d  %s: %d", labels.Score, snap.Score, labels.Speed, snap.Speed),
		bg.Foreground(r.palette.HUD).Bold(true))
	r.drawText(1, 1, fmt.Sprintf("%s: %d", labels.Best, snap.HighScore),
		bg.Foreground(r.palette.Best))

	if !snap.GameOver {
		btn := r.PauseButton(snap.Paused)
		r.drawText(btn.X, btn.Y, "[ "+r.pauseLabel(snap.Paused)+" ]",
			tcell.StyleDefault.Background(r.palette.Overlay).Foreground(r.palette.OverlayText))
	}

	info := labels.Info
	r.drawText(r.centered(info), r.layout.Rows-1, info, bg.Foreground(r.palette.Info))

	if snap.Paused {
		r.drawText(r.centered(labels.Paused), r.layout.Rows/2, labels.Paused,
			bg.Foreground(r.palette.HUD).Bold(true))
	}
}

// drawGameOver draws the end-of-session box in the middle of the screen.
func (r *Renderer) drawGameOver(snap session.Snapshot) {
	labels := r.theme.Labels
	lines := []string{
		labels.GameOver,
		"",
		fmt.Sprintf("%s: %d", labels.Score, snap.Score),
		fmt.Sprintf("%s: %d", labels.Best, snap.HighScore),
		"",
		labels.Restart,
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := Rect{W: width + 4, H: len(lines) + 2}
	box.X = (r.layout.Cols - box.W) / 2
	box.Y = (r.layout.Rows - box.H) / 2

	style := tcell.StyleDefault.Background(r.palette.Overlay).Foreground(r.palette.OverlayText)
	r.fill(box, ' ', style)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		lineStyle := style
		if i == 0 {
			lineStyle = style.Bold(true)
		}
		r.drawText(x, box.Y+1+i, l, lineStyle)
	}
}

// RenderMessage displays a centered message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.HUD).Bold(true)
	r.drawText(r.centered(msg), y, msg, style)
	r.screen.Show()
}

func (r *Renderer) pauseLabel(paused bool) string {
	if paused {
		return r.theme.Labels.Resume
	}
	return r.theme.Labels.Pause
}

func (r *Renderer) centered(s string) int {
	return max(0, (r.layout.Cols-len([]rune(s)))/2)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func (r *Renderer) fill(rect Rect, ch rune, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ch, style)
		}
	}
}

package ui

import "github.com/samdwyer/snakeband/internal/world"

const (
	// GridDivisions is how many cells fit along the smaller viewport side.
	GridDivisions = 20

	// columnsPerUnit makes board cells roughly square on a terminal, where
	// a character is about twice as tall as it is wide.
	columnsPerUnit = 2

	// hudRows sit above the board and infoRows below it.
	hudRows  = 2
	infoRows = 1
)

// Rect is a screen-space rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the terminal cell (x, y) lies within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout maps board cells onto the terminal.
type Layout struct {
	Cols, Rows int // terminal size

	// Top is the first terminal row of the board, below the HUD.
	Top int

	// CellSize is the side of one board cell in viewport units. A unit is
	// columnsPerUnit terminal columns wide and one row tall.
	CellSize int

	// BoardWidth and BoardHeight are the board dimensions in cells.
	BoardWidth  int
	BoardHeight int
}

// viewport returns the board area of a terminal in viewport units.
func viewport(cols, rows int) (vw, vh int) {
	return cols / columnsPerUnit, max(0, rows-hudRows-infoRows)
}

// FitLayout derives the cell size and board dimensions from a terminal
// size: the smaller viewport side divided by GridDivisions.
func FitLayout(cols, rows int) Layout {
	vw, vh := viewport(cols, rows)

	size := min(vw, vh) / GridDivisions
	if size < 1 {
		size = 1
	}

	return Layout{
		Cols:        cols,
		Rows:        rows,
		Top:         hudRows,
		CellSize:    size,
		BoardWidth:  vw / size,
		BoardHeight: vh / size,
	}
}

// FitBoard lays out a board of fixed dimensions with the largest cell size
// that shows all of it. The cell size never drops below 1, so the result
// may not fit; check with Fits.
func FitBoard(cols, rows, width, height int) Layout {
	vw, vh := viewport(cols, rows)

	size := 1
	if width > 0 && height > 0 {
		size = max(1, min(vw/width, vh/height))
	}

	return Layout{
		Cols:        cols,
		Rows:        rows,
		Top:         hudRows,
		CellSize:    size,
		BoardWidth:  width,
		BoardHeight: height,
	}
}

// Fits reports whether a board of the given dimensions lies between the
// HUD and the info row.
func (l Layout) Fits(width, height int) bool {
	b := l.BoardRect(width, height)
	return b.X+b.W <= l.Cols && b.Y+b.H <= l.Rows-infoRows
}

// CellRect returns the terminal rectangle painted for a board cell.
func (l Layout) CellRect(c world.Cell) Rect {
	return Rect{
		X: c.X * columnsPerUnit * l.CellSize,
		Y: l.Top + c.Y*l.CellSize,
		W: columnsPerUnit * l.CellSize,
		H: l.CellSize,
	}
}

// BoardRect returns the terminal rectangle covered by a board of the given
// dimensions.
func (l Layout) BoardRect(width, height int) Rect {
	return Rect{
		Y: l.Top,
		W: width * columnsPerUnit * l.CellSize,
		H: height * l.CellSize,
	}
}

// ButtonRect returns the top-right rectangle of a "[ label ]" button.
func (l Layout) ButtonRect(label string) Rect {
	w := len([]rune(label)) + 4
	return Rect{X: l.Cols - w - 1, Y: 0, W: w, H: 1}
}

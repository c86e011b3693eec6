package ui

import (
	"testing"

	"github.com/samdwyer/snakeband/internal/world"
)

func TestFitLayout(t *testing.T) {
	tests := []struct {
		cols, rows     int
		cellSize       int
		boardW, boardH int
	}{
		{80, 24, 1, 40, 21},
		{200, 60, 2, 50, 28},
		{160, 43, 2, 40, 20},
		{20, 8, 1, 10, 5}, // below GridDivisions: cell size clamps to 1
	}

	for _, tt := range tests {
		l := FitLayout(tt.cols, tt.rows)
		if l.CellSize != tt.cellSize || l.BoardWidth != tt.boardW || l.BoardHeight != tt.boardH {
			t.Errorf("FitLayout(%d, %d) = size %d board %dx%d, want size %d board %dx%d",
				tt.cols, tt.rows, l.CellSize, l.BoardWidth, l.BoardHeight,
				tt.cellSize, tt.boardW, tt.boardH)
		}
	}
}

func TestCellRect(t *testing.T) {
	l := FitLayout(160, 43)
	got := l.CellRect(world.Cell{X: 3, Y: 4})
	want := Rect{X: 12, Y: 10, W: 4, H: 2}
	if got != want {
		t.Errorf("CellRect((3,4)) = %+v, want %+v", got, want)
	}
}

func TestButtonRect(t *testing.T) {
	l := FitLayout(80, 24)
	r := l.ButtonRect("Pause")
	if r.X+r.W != 79 || r.Y != 0 || r.W != 9 {
		t.Errorf("ButtonRect(\"Pause\") = %+v", r)
	}
	if !r.Contains(r.X, 0) || !r.Contains(r.X+r.W-1, 0) {
		t.Error("button should contain its own edges")
	}
	if r.Contains(r.X-1, 0) || r.Contains(r.X, 1) {
		t.Error("button should not contain cells outside it")
	}
}

func TestBoardStaysClearOfHUD(t *testing.T) {
	l := FitLayout(80, 24)
	for y := 0; y < l.BoardHeight; y++ {
		for x := 0; x < l.BoardWidth; x++ {
			r := l.CellRect(world.Cell{X: x, Y: y})
			if r.Y < hudRows || r.Y+r.H > l.Rows-infoRows || r.X+r.W > l.Cols {
				t.Fatalf("cell (%d,%d) at %+v overlaps the HUD or leaves the screen", x, y, r)
			}
		}
	}
	if !l.Fits(l.BoardWidth, l.BoardHeight) {
		t.Error("fitted board should fit")
	}
}

func TestFitBoard(t *testing.T) {
	tests := []struct {
		cols, rows int
		cellSize   int
		fits       bool
	}{
		{80, 24, 1, true},
		{160, 45, 2, true},
		{200, 45, 2, true}, // wider terminal, height still limits the cell size
		{60, 24, 1, false},
		{80, 20, 1, false},
	}

	for _, tt := range tests {
		l := FitBoard(tt.cols, tt.rows, 40, 21)
		if l.CellSize != tt.cellSize || l.Fits(40, 21) != tt.fits {
			t.Errorf("FitBoard(%d, %d, 40, 21) = size %d fits %v, want size %d fits %v",
				tt.cols, tt.rows, l.CellSize, l.Fits(40, 21), tt.cellSize, tt.fits)
		}
		if l.BoardWidth != 40 || l.BoardHeight != 21 {
			t.Errorf("FitBoard changed the board to %dx%d", l.BoardWidth, l.BoardHeight)
		}
	}
}

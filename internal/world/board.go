package world

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinSize is the smallest accepted board dimension. The food margin
	// leaves a (MinSize-2)^2 interior.
	MinSize = 5

	// foodMargin keeps food off the outermost ring of cells.
	foodMargin = 1
)

// Board represents the fixed-size grid the snake moves within.
type Board struct {
	Width  int
	Height int
	rng    *rand.Rand
}

// NewBoard creates a board of the given size. A nil rng is replaced by a
// time-seeded source.
func NewBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("board %dx%d is smaller than %dx%d", width, height, MinSize, MinSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Board{
		Width:  width,
		Height: height,
		rng:    rng,
	}, nil
}

// Contains returns true if the cell lies within the board.
func (b *Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Center returns the center cell of the board.
func (b *Board) Center() Cell {
	return Cell{X: b.Width / 2, Y: b.Height / 2}
}

// InInterior returns true if the cell is inside the food margin.
func (b *Board) InInterior(c Cell) bool {
	return c.X >= foodMargin && c.X < b.Width-foodMargin &&
		c.Y >= foodMargin && c.Y < b.Height-foodMargin
}

// RandomFreeCell picks a uniformly random interior cell for which occupied
// returns false. It returns false if every interior cell is occupied.
func (b *Board) RandomFreeCell(occupied func(Cell) bool) (Cell, bool) {
	w := b.Width - 2*foodMargin
	h := b.Height - 2*foodMargin

	// Rejection sampling; cheap while the snake is short.
	for i := 0; i < w*h*4; i++ {
		c := Cell{
			X: foodMargin + b.rng.Intn(w),
			Y: foodMargin + b.rng.Intn(h),
		}
		if !occupied(c) {
			return c, true
		}
	}

	// Nearly full board: pick among the remaining free cells directly.
	free := make([]Cell, 0, w)
	for y := foodMargin; y < b.Height-foodMargin; y++ {
		for x := foodMargin; x < b.Width-foodMargin; x++ {
			c := Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[b.rng.Intn(len(free))], true
}

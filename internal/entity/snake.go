// Package entity provides the snake that moves across the board.
package entity

import "github.com/samdwyer/snakeband/internal/world"

// Snake is an ordered run of cells, head first, tail last.
type Snake struct {
	body     []world.Cell
	occupied map[world.Cell]int
}

// NewSnake creates a one-cell snake at the given position.
func NewSnake(start world.Cell) *Snake {
	s := &Snake{
		body:     make([]world.Cell, 0, 16),
		occupied: make(map[world.Cell]int),
	}
	s.push(start)
	return s
}

// NewSnakeFrom creates a snake from cells ordered head first.
func NewSnakeFrom(cells ...world.Cell) *Snake {
	s := &Snake{
		body:     make([]world.Cell, 0, len(cells)),
		occupied: make(map[world.Cell]int, len(cells)),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		s.push(cells[i])
	}
	return s
}

// Head returns the head cell.
func (s *Snake) Head() world.Cell {
	return s.body[0]
}

// Tail returns the last cell.
func (s *Snake) Tail() world.Cell {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Contains returns true if any segment occupies c.
func (s *Snake) Contains(c world.Cell) bool {
	return s.occupied[c] > 0
}

// Grow moves the head to c and keeps the tail.
func (s *Snake) Grow(c world.Cell) {
	s.push(c)
}

// Advance moves the head to c and drops the tail.
func (s *Snake) Advance(c world.Cell) {
	s.push(c)
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	if s.occupied[tail]--; s.occupied[tail] <= 0 {
		delete(s.occupied, tail)
	}
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []world.Cell {
	out := make([]world.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// push prepends c as the new head.
func (s *Snake) push(c world.Cell) {
	s.body = append(s.body, world.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = c
	s.occupied[c]++
}

package session

import "github.com/samdwyer/snakeband/internal/world"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Snake     []world.Cell // head first
	Food      world.Cell
	Score     int
	HighScore int
	Speed     int
	Paused    bool
	GameOver  bool
	Status    Status
	Width     int
	Height    int

	tiles map[world.Cell]world.Tile
}

// Snapshot returns the current render model.
func (s *GameState) Snapshot() Snapshot {
	cells := s.snake.Cells()

	tiles := make(map[world.Cell]world.Tile, len(cells)+1)
	tiles[s.food] = world.TileFood
	for i := len(cells) - 1; i >= 0; i-- {
		if i == 0 {
			tiles[cells[i]] = world.TileHead
		} else {
			tiles[cells[i]] = world.TileBody
		}
	}

	return Snapshot{
		Snake:     cells,
		Food:      s.food,
		Score:     s.score,
		HighScore: s.highScore,
		Speed:     s.speed,
		Paused:    s.paused,
		GameOver:  s.gameOver,
		Status:    s.Status(),
		Width:     s.board.Width,
		Height:    s.board.Height,
		tiles:     tiles,
	}
}

// TileAt returns what occupies c.
func (sn Snapshot) TileAt(c world.Cell) world.Tile {
	if t, ok := sn.tiles[c]; ok {
		return t
	}
	return world.TileEmpty
}

// Head returns the head cell, or false for an empty snapshot.
func (sn Snapshot) Head() (world.Cell, bool) {
	if len(sn.Snake) == 0 {
		return world.Cell{}, false
	}
	return sn.Snake[0], true
}

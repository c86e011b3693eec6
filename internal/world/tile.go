// Package world provides the board grid, cells and movement directions.
package world

// Tile represents what occupies a single board cell.
type Tile rune

const (
	// TileEmpty is a free cell.
	TileEmpty Tile = '.'
	// TileHead is the cell occupied by the snake's head.
	TileHead Tile = '@'
	// TileBody is a cell occupied by any other snake segment.
	TileBody Tile = 'o'
	// TileFood is the cell holding food.
	TileFood Tile = '*'
)

// IsSnake returns true if the tile is part of the snake.
func (t Tile) IsSnake() bool {
	return t == TileHead || t == TileBody
}

// Rune returns the tile's default display character.
func (t Tile) Rune() rune {
	return rune(t)
}

package world

// Direction is a unit step on the board. Y grows downward.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite returns true if other is the exact reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// IsUnit returns true if d is one of Up, Down, Left or Right.
func (d Direction) IsUnit() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	default:
		return false
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

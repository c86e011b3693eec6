package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snakeband/internal/world"
)

// Action is what a single input event asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionPause
	ActionRestart
	ActionQuit
)

// Input is a decoded input event.
type Input struct {
	Action Action
	Dir    world.Direction // set for ActionMove
}

// keyInput maps a key press to an input.
func keyInput(key tcell.Key, r rune) Input {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Action: ActionQuit}
	case tcell.KeyEnter:
		return Input{Action: ActionRestart}

	case tcell.KeyUp:
		return Input{Action: ActionMove, Dir: world.Up}
	case tcell.KeyDown:
		return Input{Action: ActionMove, Dir: world.Down}
	case tcell.KeyLeft:
		return Input{Action: ActionMove, Dir: world.Left}
	case tcell.KeyRight:
		return Input{Action: ActionMove, Dir: world.Right}

	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return Input{Action: ActionMove, Dir: world.Up}
		case 's', 'S':
			return Input{Action: ActionMove, Dir: world.Down}
		case 'a', 'A':
			return Input{Action: ActionMove, Dir: world.Left}
		case 'd', 'D':
			return Input{Action: ActionMove, Dir: world.Right}
		case 'p', 'P', ' ':
			return Input{Action: ActionPause}
		case 'r', 'R':
			return Input{Action: ActionRestart}
		case 'q', 'Q':
			return Input{Action: ActionQuit}
		}
	}
	return Input{Action: ActionNone}
}

// rowColumns is the on-screen height of a terminal row in columns.
const rowColumns = 2

// Swipe classifies a drag of dx columns and dy rows by its dominant axis.
// Rows are scaled by rowColumns first, and the drag counts only if it moves
// more than threshold columns along that axis.
func Swipe(dx, dy, threshold int) (world.Direction, bool) {
	ax, ay := abs(dx), abs(dy)*rowColumns
	switch {
	case ax > ay && ax > threshold:
		if dx > 0 {
			return world.Right, true
		}
		return world.Left, true
	case ay > threshold:
		if dy > 0 {
			return world.Down, true
		}
		return world.Up, true
	default:
		return world.Direction{}, false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// maxQueued bounds the direction requests held between two ticks.
const maxQueued = 4

// InputQueue buffers direction requests until the next tick drains them.
type InputQueue struct {
	dirs []world.Direction
}

// NewInputQueue creates an empty queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{dirs: make([]world.Direction, 0, maxQueued)}
}

// Push enqueues a direction. Requests beyond maxQueued are dropped.
func (q *InputQueue) Push(d world.Direction) {
	if len(q.dirs) >= maxQueued {
		return
	}
	q.dirs = append(q.dirs, d)
}

// Drain calls apply for every queued direction in arrival order and
// empties the queue.
func (q *InputQueue) Drain(apply func(world.Direction)) {
	for _, d := range q.dirs {
		apply(d)
	}
	q.dirs = q.dirs[:0]
}

// Clear drops all queued directions.
func (q *InputQueue) Clear() {
	q.dirs = q.dirs[:0]
}

// Len returns the number of queued directions.
func (q *InputQueue) Len() int {
	return len(q.dirs)
}

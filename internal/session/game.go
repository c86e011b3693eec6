package session

import (
	"errors"

	"github.com/samdwyer/snakeband/internal/entity"
	"github.com/samdwyer/snakeband/internal/world"
)

// Hooks are optional callbacks fired as the session changes. The host uses
// them to drive its tick timer, sounds and telemetry.
type Hooks struct {
	OnReset       func()
	OnFoodEaten   func(score int)
	OnSpeedChange func(speed int)
	OnPauseChange func(paused bool)
	OnGameOver    func(score, highScore int)
}

// GameState holds the snake, food, score and flags of the current session.
// It is not safe for concurrent use.
type GameState struct {
	board   *world.Board
	snake   *entity.Snake
	food    world.Cell
	dir     world.Direction // applied on the last tick
	pending world.Direction // applied on the next tick

	score     int
	highScore int
	speed     int
	nextSpeed int // score at which speed next increases

	paused   bool
	gameOver bool

	hooks Hooks
}

// New creates a game state on board and starts the first session.
// highScore seeds the best score, usually from a HighScoreStore.
func New(board *world.Board, highScore int) (*GameState, error) {
	if board == nil {
		return nil, errors.New("session requires a board")
	}
	if highScore < 0 {
		highScore = 0
	}
	s := &GameState{
		board:     board,
		highScore: highScore,
	}
	s.Reset()
	return s, nil
}

// SetHooks replaces the session callbacks.
func (s *GameState) SetHooks(h Hooks) {
	s.hooks = h
}

// Reset starts a new session. The high score is kept.
func (s *GameState) Reset() {
	s.snake = entity.NewSnake(s.board.Center())
	s.dir = world.Right
	s.pending = world.Right
	s.score = 0
	s.speed = InitialSpeed
	s.nextSpeed = SpeedUpEvery
	s.paused = false
	s.gameOver = false

	if !s.placeFood() {
		s.gameOver = true
	}

	if s.hooks.OnReset != nil {
		s.hooks.OnReset()
	}
}

// SetDirection requests a direction for the next tick. The request is
// ignored when the session is paused or over, or when d reverses the
// current direction.
func (s *GameState) SetDirection(d world.Direction) {
	if s.gameOver || s.paused {
		return
	}
	if !d.IsUnit() || d.IsOpposite(s.dir) {
		return
	}
	s.pending = d
}

// Tick advances the snake by one cell.
func (s *GameState) Tick() {
	if s.gameOver || s.paused {
		return
	}

	s.dir = s.pending
	head := s.snake.Head().Add(s.dir)

	if !s.board.Contains(head) || s.snake.Contains(head) {
		s.endGame()
		return
	}

	if head == s.food {
		s.snake.Grow(head)
		s.eat()
	} else {
		s.snake.Advance(head)
	}

	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// TogglePause flips between running and paused. It does nothing once the
// session is over.
func (s *GameState) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
	if s.hooks.OnPauseChange != nil {
		s.hooks.OnPauseChange(s.paused)
	}
}

// RequestRestart resets a finished session. It returns false, and does
// nothing, while the session is still in play.
func (s *GameState) RequestRestart() bool {
	if !s.gameOver {
		return false
	}
	s.Reset()
	return true
}

// eat scores the food under the head, places new food and raises the speed
// at each threshold crossed.
func (s *GameState) eat() {
	s.score += FoodScore

	if !s.placeFood() {
		// Snake fills the interior; nothing left to eat.
		if s.score > s.highScore {
			s.highScore = s.score
		}
		s.endGame()
		return
	}

	if s.hooks.OnFoodEaten != nil {
		s.hooks.OnFoodEaten(s.score)
	}

	changed := false
	for s.score >= s.nextSpeed {
		s.nextSpeed += SpeedUpEvery
		if s.speed < MaxSpeed {
			s.speed++
			changed = true
		}
	}
	if changed && s.hooks.OnSpeedChange != nil {
		s.hooks.OnSpeedChange(s.speed)
	}
}

// placeFood moves the food to a random free interior cell.
func (s *GameState) placeFood() bool {
	c, ok := s.board.RandomFreeCell(s.snake.Contains)
	if !ok {
		return false
	}
	s.food = c
	return true
}

// endGame moves the session to its terminal state.
func (s *GameState) endGame() {
	s.gameOver = true
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(s.score, s.highScore)
	}
}

// Status returns the lifecycle state of the session.
func (s *GameState) Status() Status {
	switch {
	case s.gameOver:
		return StatusGameOver
	case s.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}

// Score returns the current session score.
func (s *GameState) Score() int { return s.score }

// HighScore returns the best score seen by this process.
func (s *GameState) HighScore() int { return s.highScore }

// Speed returns the tick rate in ticks per second.
func (s *GameState) Speed() int { return s.speed }

// Paused reports whether the session is paused.
func (s *GameState) Paused() bool { return s.paused }

// GameOver reports whether the session has ended.
func (s *GameState) GameOver() bool { return s.gameOver }

// Direction returns the direction applied on the last tick.
func (s *GameState) Direction() world.Direction { return s.dir }

// PendingDirection returns the direction the next tick will apply.
func (s *GameState) PendingDirection() world.Direction { return s.pending }

// Food returns the food cell.
func (s *GameState) Food() world.Cell { return s.food }

// Snake returns a copy of the snake cells, head first.
func (s *GameState) Snake() []world.Cell { return s.snake.Cells() }

// Board returns the board the session plays on.
func (s *GameState) Board() *world.Board { return s.board }

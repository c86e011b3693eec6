// Package game hosts a snake session in the terminal: it owns the screen,
// the tick timer and input handling.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snakeband/internal/audio"
	"github.com/samdwyer/snakeband/internal/gamedata"
	"github.com/samdwyer/snakeband/internal/session"
	"github.com/samdwyer/snakeband/internal/telemetry"
	"github.com/samdwyer/snakeband/internal/ui"
	"github.com/samdwyer/snakeband/internal/world"
)

// ErrScreenTooSmall is returned when the terminal cannot fit a board.
var ErrScreenTooSmall = errors.New("terminal too small for the board")

// Game holds the running session and everything around it.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	state    *session.GameState
	store    session.HighScoreStore
	sched    *scheduler
	queue    *InputQueue
	sound    *audio.System
	tracer   trace.Tracer

	ctx     context.Context
	session *telemetry.Session // nil between sessions

	// Mouse drag tracking for swipes.
	pressed  bool
	dragging bool
	dragX    int
	dragY    int

	running bool
}

// New creates a game on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame creates a game drawing to screen.
func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	registry, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, err
	}
	theme, err := registry.Lookup(cfg.Theme)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(screen, theme)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	layout := renderer.Layout()
	board, err := world.NewBoard(layout.BoardWidth, layout.BoardHeight, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenTooSmall, err)
	}

	store := session.NewMemoryStore()
	best, err := store.LoadHighScore()
	if err != nil {
		return nil, fmt.Errorf("load high score: %w", err)
	}
	state, err := session.New(board, best)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: renderer,
		state:    state,
		store:    store,
		sched:    newScheduler(),
		queue:    NewInputQueue(),
		tracer:   telemetry.NoopTracer(),
		ctx:      context.Background(),
		running:  true,
	}
	if cfg.Telemetry {
		g.tracer = telemetry.Tracer("game")
	}
	if cfg.Sound {
		if g.sound, err = audio.New(); err != nil {
			log.Printf("Audio disabled: %v", err)
			g.sound = nil
		}
	}

	state.SetHooks(session.Hooks{
		OnReset:       g.onReset,
		OnFoodEaten:   g.onFoodEaten,
		OnSpeedChange: g.onSpeedChange,
		OnPauseChange: g.onPauseChange,
		OnGameOver:    g.onGameOver,
	})
	return g, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx

	telemetry.RecordInit(ctx, g.tracer, telemetry.BoardInfo{
		Width:    g.state.Board().Width,
		Height:   g.state.Board().Height,
		CellSize: g.renderer.Layout().CellSize,
		Seed:     g.cfg.Seed,
		Sound:    g.sound != nil,
	})

	g.startSession()
	g.sched.Start(g.state.Speed())
	defer g.sched.Stop()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ev)
		case <-g.sched.C():
			g.step()
		}
		g.render()
	}

	g.endSession("quit")
	g.screen.Close()
	return nil
}

// pollEvents forwards terminal events until the screen is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// step applies queued directions and advances the session one tick.
func (g *Game) step() {
	g.queue.Drain(g.state.SetDirection)
	g.state.Tick()
}

func (g *Game) render() {
	g.renderer.Render(g.state.Snapshot())
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		g.screen.Sync()
		g.handleResize()
	}
}

// handleResize refits the layout and pauses a running session when the
// board no longer fits on the terminal.
func (g *Game) handleResize() {
	b := g.state.Board()
	if g.renderer.Fit().Fits(b.Width, b.Height) {
		return
	}
	if g.state.Status() == session.StatusRunning {
		log.Printf("Terminal too small for a %dx%d board, pausing", b.Width, b.Height)
		g.state.TogglePause()
	}
}

// handleKey processes keyboard input.
func (g *Game) handleKey(key tcell.Key, r rune) {
	in := keyInput(key, r)
	switch in.Action {
	case ActionMove:
		if g.state.Status() == session.StatusRunning {
			g.queue.Push(in.Dir)
		}
	case ActionPause:
		g.state.TogglePause()
	case ActionRestart:
		g.state.RequestRestart()
	case ActionQuit:
		g.running = false
	}
}

// handleMouse treats the primary button as a touch: a tap on the pause
// button toggles pause, a tap after game over restarts, and a drag
// anywhere else is a swipe.
func (g *Game) handleMouse(x, y int, buttons tcell.ButtonMask) {
	down := buttons&tcell.Button1 != 0

	if down {
		if g.pressed {
			return // drag in progress
		}
		g.pressed = true

		switch {
		case g.state.GameOver():
			g.state.RequestRestart()
		case g.renderer.PauseButton(g.state.Paused()).Contains(x, y):
			g.state.TogglePause()
		case g.state.Paused():
		default:
			g.dragging = true
			g.dragX, g.dragY = x, y
		}
		return
	}

	if !g.pressed {
		return
	}
	g.pressed = false
	if !g.dragging {
		return
	}
	g.dragging = false

	if g.state.Status() != session.StatusRunning {
		return
	}
	if dir, ok := Swipe(x-g.dragX, y-g.dragY, g.cfg.SwipeMin); ok {
		g.queue.Push(dir)
	}
}

// startSession opens the trace span for a new session.
func (g *Game) startSession() {
	g.endSession("restart")
	g.session = telemetry.StartSession(g.ctx, g.tracer, uuid.NewString(), g.state.HighScore())
}

// endSession closes the current session span, if any.
func (g *Game) endSession(outcome string) {
	g.session.End(outcome, g.state.Score(), len(g.state.Snake()), g.state.Speed())
	g.session = nil
}

func (g *Game) onReset() {
	g.queue.Clear()
	g.dragging = false
	g.startSession()
	g.sched.Start(g.state.Speed())
}

func (g *Game) onFoodEaten(score int) {
	g.session.FoodEaten(score)
	g.sound.Play(audio.SoundEat)
}

func (g *Game) onSpeedChange(speed int) {
	g.session.SpeedUp(speed)
	g.sched.Start(speed)
	g.sound.Play(audio.SoundSpeedUp)
}

func (g *Game) onPauseChange(paused bool) {
	if paused {
		g.sched.Stop()
		g.queue.Clear()
		return
	}
	g.sched.Start(g.state.Speed())
}

func (g *Game) onGameOver(score, highScore int) {
	g.sched.Stop()
	g.queue.Clear()
	if err := g.store.SaveHighScore(highScore); err != nil {
		log.Printf("Save high score: %v", err)
		g.session.Fail(err)
	}
	g.sound.Play(audio.SoundGameOver)
	g.endSession("game_over")
	log.Printf("Session over: score %d, best %d", score, highScore)
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.sched.Stop()
	if g.screen != nil {
		g.screen.Close()
	}
}

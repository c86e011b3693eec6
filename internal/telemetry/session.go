package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span and attribute names recorded for play sessions.
const (
	SpanInit    = "game.init"
	SpanSession = "session.play"

	EventFoodEaten = "food.eaten"
	EventSpeedUp   = "speed.up"

	AttrSessionID      = attribute.Key("session.id")
	AttrHighScoreStart = attribute.Key("session.high_score_start")
	AttrOutcome        = attribute.Key("session.outcome")
	AttrScore          = attribute.Key("session.score")
	AttrLength         = attribute.Key("session.length")
	AttrSpeed          = attribute.Key("session.speed")
)

// BoardInfo describes the board and settings a game started with.
type BoardInfo struct {
	Width, Height int
	CellSize      int
	Seed          int64
	Sound         bool
}

// RecordInit emits a finished game.init span for a new game.
func RecordInit(ctx context.Context, tracer trace.Tracer, info BoardInfo) {
	_, span := tracer.Start(ctx, SpanInit)
	span.SetAttributes(
		attribute.Int("board.width", info.Width),
		attribute.Int("board.height", info.Height),
		attribute.Int("layout.cell_size", info.CellSize),
		attribute.Int64("config.seed", info.Seed),
		attribute.Bool("config.sound", info.Sound),
	)
	span.End()
}

// Session traces one play-through from reset to its end. A nil *Session
// records nothing.
type Session struct {
	ID   string
	span trace.Span
}

// StartSession opens the session.play span.
func StartSession(ctx context.Context, tracer trace.Tracer, id string, highScore int) *Session {
	_, span := tracer.Start(ctx, SpanSession)
	span.SetAttributes(
		AttrSessionID.String(id),
		AttrHighScoreStart.Int(highScore),
	)
	return &Session{ID: id, span: span}
}

// FoodEaten records a food event with the new score.
func (s *Session) FoodEaten(score int) {
	if s == nil {
		return
	}
	s.span.AddEvent(EventFoodEaten, trace.WithAttributes(attribute.Int("score", score)))
}

// SpeedUp records a speed change.
func (s *Session) SpeedUp(speed int) {
	if s == nil {
		return
	}
	s.span.AddEvent(EventSpeedUp, trace.WithAttributes(attribute.Int("speed", speed)))
}

// Fail marks the session span as errored.
func (s *Session) Fail(err error) {
	if s == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End closes the span with the final session numbers.
func (s *Session) End(outcome string, score, length, speed int) {
	if s == nil {
		return
	}
	s.span.SetAttributes(
		AttrOutcome.String(outcome),
		AttrScore.Int(score),
		AttrLength.Int(length),
		AttrSpeed.Int(speed),
	)
	s.span.End()
}

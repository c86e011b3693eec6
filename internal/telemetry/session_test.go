package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestSessionSpan(t *testing.T) {
	sr, tp := newRecorder(t)

	s := StartSession(context.Background(), tp.Tracer("test"), "abc", 40)
	s.FoodEaten(10)
	s.SpeedUp(7)
	s.End("game_over", 50, 6, 7)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != SpanSession {
		t.Errorf("span name = %q, want %q", span.Name(), SpanSession)
	}

	attrs := attrMap(span.Attributes())
	if attrs[AttrSessionID].AsString() != "abc" {
		t.Errorf("session.id = %v", attrs[AttrSessionID])
	}
	if attrs[AttrHighScoreStart].AsInt64() != 40 || attrs[AttrScore].AsInt64() != 50 {
		t.Errorf("unexpected score attributes: %v", attrs)
	}
	if attrs[AttrOutcome].AsString() != "game_over" {
		t.Errorf("session.outcome = %v", attrs[AttrOutcome])
	}

	events := span.Events()
	if len(events) != 2 || events[0].Name != EventFoodEaten || events[1].Name != EventSpeedUp {
		t.Errorf("events = %v, want food then speed", events)
	}
}

func TestSessionFail(t *testing.T) {
	sr, tp := newRecorder(t)

	s := StartSession(context.Background(), tp.Tracer("test"), "abc", 0)
	s.Fail(errors.New("disk full"))
	s.End("game_over", 0, 1, 6)

	span := sr.Ended()[0]
	if span.Status().Code != codes.Error {
		t.Errorf("status = %v, want error", span.Status().Code)
	}
}

func TestNilSessionIsNoop(t *testing.T) {
	var s *Session
	s.FoodEaten(10)
	s.SpeedUp(7)
	s.Fail(errors.New("ignored"))
	s.End("quit", 0, 1, 6)
}

func TestRecordInit(t *testing.T) {
	sr, tp := newRecorder(t)

	RecordInit(context.Background(), tp.Tracer("test"), BoardInfo{Width: 40, Height: 21, CellSize: 1, Seed: 7})

	spans := sr.Ended()
	if len(spans) != 1 || spans[0].Name() != SpanInit {
		t.Fatalf("Expected one %s span, got %v", SpanInit, spans)
	}
	if w := attrMap(spans[0].Attributes())["board.width"].AsInt64(); w != 40 {
		t.Errorf("board.width = %d, want 40", w)
	}
}

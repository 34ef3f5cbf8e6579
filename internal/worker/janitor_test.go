package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls   int32
	removed int
}

func (s *countingSweeper) Sweep(time.Time) int {
	atomic.AddInt32(&s.calls, 1)
	return s.removed
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestJanitorSweepsOnInterval(t *testing.T) {
	sweeper := &countingSweeper{removed: 1}
	janitor := NewJanitor([]Sweeper{sweeper}, 10*time.Millisecond, testLogger())

	janitor.Start(context.Background())

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&sweeper.calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("expected at least two sweeps before deadline")
		case <-time.After(5 * time.Millisecond):
		}
	}

	janitor.Stop()
	settled := atomic.LoadInt32(&sweeper.calls)
	time.Sleep(30 * time.Millisecond)
	if got := atomic.LoadInt32(&sweeper.calls); got != settled {
		t.Fatalf("expected no sweeps after stop, got %d more", got-settled)
	}
}

func TestJanitorStopWithoutStart(t *testing.T) {
	janitor := NewJanitor(nil, time.Minute, testLogger())
	janitor.Stop()
}

func TestJanitorStopsOnContextCancel(t *testing.T) {
	sweeper := &countingSweeper{}
	janitor := NewJanitor([]Sweeper{sweeper}, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	janitor.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		janitor.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Stop to return after context cancellation")
	}
}

func TestJanitorAggregatesSweepers(t *testing.T) {
	first := &countingSweeper{removed: 2}
	second := &countingSweeper{removed: 3}
	janitor := NewJanitor([]Sweeper{first, second}, time.Minute, testLogger())

	janitor.sweep()

	if atomic.LoadInt32(&first.calls) != 1 || atomic.LoadInt32(&second.calls) != 1 {
		t.Fatal("expected every sweeper to run")
	}
}

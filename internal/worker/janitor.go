package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweeper evicts expired state and reports how many entries were removed.
type Sweeper interface {
	Sweep(now time.Time) int
}

// Janitor periodically sweeps idle view and session state. View state has no
// external lifecycle signal (a browser simply stops calling), so eviction is
// time-based.
type Janitor struct {
	sweepers []Sweeper
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewJanitor constructs the janitor.
func NewJanitor(sweepers []Sweeper, interval time.Duration, logger *slog.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		sweepers: sweepers,
		interval: interval,
		logger:   logger,
	}
}

// Sweepers returns the configured sweep targets.
func (j *Janitor) Sweepers() []Sweeper {
	return j.sweepers
}

// Start launches the background sweep loop.
func (j *Janitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop halts the loop and waits for it to finish.
func (j *Janitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *Janitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	now := time.Now()
	removed := 0
	for _, s := range j.sweepers {
		removed += s.Sweep(now)
	}
	if removed > 0 {
		j.logger.Info("swept idle view state", slog.Int("removed", removed))
	}
}

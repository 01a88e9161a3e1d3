package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickInterval is the classic movement speed.
const DefaultTickInterval = 150 * time.Millisecond

// Runner drives an Engine at a fixed interval on the caller's goroutine.
// While Run is active it is the only caller of Engine.Tick.
type Runner struct {
	engine   *Engine
	interval time.Duration
	logger   *log.Logger
	done     chan struct{}
}

// NewRunner creates a runner for e. A non-positive interval falls back to
// DefaultTickInterval.
func NewRunner(e *Engine, interval time.Duration, logger *log.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		engine:   e,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run ticks the engine until the game ends or ctx is cancelled. It returns
// nil on game over and ctx.Err() on cancellation. Run must be called once.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("simulation started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("simulation cancelled", "published", r.engine.Published())
			return ctx.Err()
		case <-ticker.C:
			if !r.engine.Tick() {
				r.logger.Debug("simulation finished", "published", r.engine.Published())
				return nil
			}
		}
	}
}

// Done is closed when Run returns. After that the engine may be touched by
// another goroutine again, e.g. to Initialize a new game.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Package periodic runs a function on a fixed interval until stopped.
package periodic

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courtside/internal/pkg/errs"
)

var ErrNonPositiveInterval = errs.New("periodic task interval must be positive")

type Func func(ctx context.Context) error

type Task struct {
	name     string
	interval time.Duration
	fn       Func
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTask(name string, interval time.Duration, fn Func, logger *slog.Logger) (*Task, error) {
	if interval <= 0 {
		return nil, errs.Wrapf(ErrNonPositiveInterval, "%s: %s", name, interval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Task{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
	}, nil
}

// Start launches the loop. A second Start before Stop is a no-op.
func (t *Task) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})

	go t.loop(ctx, t.done)
	t.logger.Info("periodic task started", "job", t.name, "interval", t.interval.String())
}

// Stop cancels the loop and waits for the in-flight run, bounded by ctx.
func (t *Task) Stop(ctx context.Context) error {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		t.logger.Info("periodic task stopped", "job", t.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.runOnce(ctx)
		}
	}
}

func (t *Task) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("periodic task panicked", "job", t.name, "panic", r)
		}
	}()

	if err := t.fn(ctx); err != nil && ctx.Err() == nil {
		t.logger.Error("periodic task run failed", "job", t.name, "error", err.Error())
	}
}

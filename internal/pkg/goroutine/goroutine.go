// Package goroutine runs bounded background work that must finish before
// shutdown.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/secureprop/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is multiplied by NumCPU when NewManager receives a
// non-positive limit.
const DefaultMaxGoroutine int = 100

// ErrRejected is returned by Go when the task was not started.
var ErrRejected = errors.New("goroutine: task rejected")

// Manager runs tasks with a concurrency limit and collects their errors.
type Manager struct {
	mu     sync.Mutex
	errs   []error
	wg     sync.WaitGroup
	sema   chan struct{}
	closed bool
}

// NewManager creates a Manager that runs at most maxGoroutine tasks at once.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go starts f in a goroutine. It never blocks: when the manager is closed or
// full the task is dropped and ErrRejected returned. A panic in f is logged
// and recorded as an error.
func (g *Manager) Go(ctx context.Context, name string, f func(ctx context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		slog.WarnContext(ctx, "goroutine manager is closed, task dropped", "task", name)
		return fmt.Errorf("%w: %s: manager closed", ErrRejected, name)
	}

	select {
	case g.sema <- struct{}{}:
	default:
		slog.WarnContext(ctx, "goroutine limit reached, task dropped", "task", name)
		return fmt.Errorf("%w: %s: limit reached", ErrRejected, name)
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer func() {
			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "task", name, "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "task", name, "because", rvr, "stack", string(stack))
				}
				g.record(fmt.Errorf("%s: panic: %v", name, rvr))
			}
		}()

		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "goroutine canceled", "task", name, "because", err)
			return
		}
		if err := f(ctx); err != nil {
			g.record(fmt.Errorf("%s: %w", name, err))
		}
	}()

	return nil
}

func (g *Manager) record(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait stops accepting tasks, blocks until running ones finish and returns
// their joined errors.
func (g *Manager) Wait() error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

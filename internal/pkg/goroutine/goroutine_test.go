package goroutine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RunsAndCollects(t *testing.T) {
	g := NewManager(4)

	var ran atomic.Int32
	require.NoError(t, g.Go(context.Background(), "ok", func(context.Context) error {
		ran.Add(1)
		return nil
	}))
	require.NoError(t, g.Go(context.Background(), "fail", func(context.Context) error {
		ran.Add(1)
		return errors.New("boom")
	}))
	require.NoError(t, g.Go(context.Background(), "panic", func(context.Context) error {
		ran.Add(1)
		panic("kaboom")
	}))

	err := g.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail: boom")
	assert.Contains(t, err.Error(), "panic: panic: kaboom")
	assert.Equal(t, int32(3), ran.Load())

	err = g.Go(context.Background(), "late", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrRejected)
}

func TestManager_Limit(t *testing.T) {
	g := NewManager(1)

	release := make(chan struct{})
	require.NoError(t, g.Go(context.Background(), "block", func(context.Context) error {
		<-release
		return nil
	}))

	err := g.Go(context.Background(), "overflow", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrRejected)

	close(release)
	assert.NoError(t, g.Wait())
}

func TestManager_CanceledContext(t *testing.T) {
	g := NewManager(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	require.NoError(t, g.Go(ctx, "canceled", func(context.Context) error {
		ran.Store(true)
		return nil
	}))

	assert.NoError(t, g.Wait())
	assert.False(t, ran.Load())
}

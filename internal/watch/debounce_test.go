package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gopherlings/internal/queue"
)

func TestDebouncer_Coalesces(t *testing.T) {
	for name, signals := range map[string][]int{
		"in order":    {2, 2, 5},
		"interleaved": {5, 2, 2},
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			window := 100 * time.Millisecond
			events := queue.New[Event]()
			d := NewDebouncer(6, window, events)

			done := make(chan error, 1)
			go func() { done <- d.Run(ctx) }()

			for _, i := range signals {
				require.NoError(t, d.Notify(ctx, i))
			}

			popCtx, popCancel := context.WithTimeout(ctx, time.Second)
			defer popCancel()
			first, err := events.Pop(popCtx)
			require.NoError(t, err)
			second, err := events.Pop(popCtx)
			require.NoError(t, err)

			assert.Equal(t, ItemChanged{Index: 2}, first)
			assert.Equal(t, ItemChanged{Index: 5}, second)

			time.Sleep(3 * window)
			assert.Zero(t, events.Len())

			cancel()
			assert.NoError(t, <-done)
		})
	}
}

func TestDebouncer_OutOfRange(t *testing.T) {
	events := queue.New[Event]()
	d := NewDebouncer(3, time.Hour, events)

	done := make(chan error, 1)
	go func() { done <- d.Run(t.Context()) }()

	require.NoError(t, d.Notify(t.Context(), 3))

	err := <-done
	var werr *WatcherError
	require.ErrorAs(t, err, &werr)

	ev, ok := events.TryPop()
	require.True(t, ok)
	assert.IsType(t, WatcherFailed{}, ev)
}

func TestDebouncer_NotifyBlocksWhenFull(t *testing.T) {
	d := NewDebouncer(3, time.Hour, queue.New[Event]())

	require.NoError(t, d.Notify(t.Context(), 1))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Notify(ctx, 2), context.DeadlineExceeded)
}

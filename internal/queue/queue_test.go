package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[int]()
	for i := range 5 {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())

	for i := range 5 {
		v, err := q.Pop(t.Context())
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, ok := q.TryPop()
	assert.False(t, ok)
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q := New[string]()

	go func() {
		time.Sleep(20 * time.Millisecond)
		q.Push("hello")
	}()

	v, err := q.Pop(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestQueue_PopCancelled(t *testing.T) {
	q := New[int]()
	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := New[int]()
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
		}()
	}

	seen := make(map[int]bool)
	for range producers * perProducer {
		v, err := q.Pop(t.Context())
		require.NoError(t, err)
		seen[v] = true
	}
	wg.Wait()
	assert.Len(t, seen, producers*perProducer)
}

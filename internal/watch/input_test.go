package watch

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gopherlings/internal/queue"
)

type canceledReader struct{}

func (canceledReader) Read([]byte) (int, error) { return 0, cancelreader.ErrCanceled }

func TestInputSource_ReadKeys(t *testing.T) {
	out := queue.New[RawInput]()
	src := NewInputSource(strings.NewReader("nh€"), nil, time.Hour, out)

	require.NoError(t, src.ReadKeys(t.Context()))

	var keys []rune
	var last RawInput
	for {
		in, ok := out.TryPop()
		if !ok {
			break
		}
		if in.Kind == RawKey {
			keys = append(keys, in.Key)
		}
		last = in
	}
	assert.Equal(t, []rune{'n', 'h', '€'}, keys)
	assert.Equal(t, RawError, last.Kind)
	assert.ErrorIs(t, last.Err, io.EOF)
}

func TestInputSource_CancelIsClean(t *testing.T) {
	out := queue.New[RawInput]()
	src := NewInputSource(canceledReader{}, nil, time.Hour, out)

	require.NoError(t, src.ReadKeys(t.Context()))
	assert.Zero(t, out.Len())
}

func TestInputSource_PollSize(t *testing.T) {
	var mu sync.Mutex
	widths := []int{80, 80, 100, 100, 120}
	width := func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		w := widths[0]
		if len(widths) > 1 {
			widths = widths[1:]
		}
		return w, nil
	}

	ctx, cancel := context.WithCancel(t.Context())
	out := queue.New[RawInput]()
	src := NewInputSource(strings.NewReader(""), width, time.Millisecond, out)

	done := make(chan error, 1)
	go func() { done <- src.PollSize(ctx) }()

	require.Eventually(t, func() bool { return out.Len() == 2 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	first, _ := out.TryPop()
	second, _ := out.TryPop()
	assert.Equal(t, RawInput{Kind: RawResize, Width: 100}, first)
	assert.Equal(t, RawInput{Kind: RawResize, Width: 120}, second)
}

func TestCRLFWriter(t *testing.T) {
	var sb strings.Builder
	n, err := crlfWriter{w: &sb}.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", sb.String())
}

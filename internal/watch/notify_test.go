package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/queue"
)

func TestNotifier_Lookup(t *testing.T) {
	exs := []curriculum.Exercise{
		{Name: "intro1", Path: "exercises/00_intro/intro1.go"},
		{Name: "tests1", Path: "exercises/03_tests/tests1_test.go", Test: true},
		{Name: "my_test", Path: "exercises/05_naming/my_test.go"},
		{Name: "my", Path: "exercises/05_naming/my.go"},
	}
	n, err := NewNotifier(t.TempDir(), exs, &PauseGuard{}, nil, queue.New[Event](), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { n.Close() })

	tests := map[string]struct {
		path string
		want int
		ok   bool
	}{
		"program":           {path: "exercises/00_intro/intro1.go", want: 0, ok: true},
		"test file":         {path: "exercises/03_tests/tests1_test.go", want: 1, ok: true},
		"name ending _test": {path: "exercises/05_naming/my_test.go", want: 2, ok: true},
		"plain name":        {path: "exercises/05_naming/my.go", want: 3, ok: true},
		"not go":            {path: "exercises/README.md"},
		"swap file":         {path: "exercises/00_intro/.intro1.go.swp"},
		"other directory":   {path: "exercises/06_other/intro1.go"},
		"unclean path":      {path: "exercises/00_intro/../00_intro/intro1.go", want: 0, ok: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := n.lookup(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func startNotifier(t *testing.T, guard *PauseGuard) (string, *queue.Queue[Event]) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "00_intro"), 0o755))
	exs := []curriculum.Exercise{
		{Name: "intro1", Path: filepath.Join(dir, "00_intro", "intro1.go")},
		{Name: "intro2", Path: filepath.Join(dir, "00_intro", "intro2.go")},
		{Name: "vars1", Path: filepath.Join(dir, "01_variables", "vars1.go")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := queue.New[Event]()
	deb := NewDebouncer(len(exs), 20*time.Millisecond, events)
	n, err := NewNotifier(dir, exs, guard, deb, events, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		go deb.Run(ctx)
		n.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		n.Close()
	})
	return dir, events
}

func TestNotifier_ForwardsChanges(t *testing.T) {
	dir, events := startNotifier(t, &PauseGuard{})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "00_intro", "intro2.go"), []byte("package main\n"), 0o644))

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	ev, err := events.Pop(ctx)
	require.NoError(t, err)
	assert.Equal(t, ItemChanged{Index: 1}, ev)
}

func TestNotifier_IgnoresWhilePausedAndUnknownFiles(t *testing.T) {
	guard := &PauseGuard{}
	dir, events := startNotifier(t, guard)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "00_intro", "other.go"), []byte("package main\n"), 0o644))
	release := guard.Acquire()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00_intro", "intro1.go"), []byte("package main\n"), 0o644))

	time.Sleep(200 * time.Millisecond)
	release()
	assert.Zero(t, events.Len())
}

func TestNotifier_WatchesNewDirectories(t *testing.T) {
	dir, events := startNotifier(t, &PauseGuard{})

	topic := filepath.Join(dir, "01_variables")
	require.NoError(t, os.Mkdir(topic, 0o755))

	path := filepath.Join(topic, "vars1.go")
	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	for {
		require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))
		pctx, pcancel := context.WithTimeout(ctx, 100*time.Millisecond)
		ev, err := events.Pop(pctx)
		pcancel()
		if err == nil {
			assert.Equal(t, ItemChanged{Index: 2}, ev)
			return
		}
		require.NoError(t, ctx.Err(), "change in a new directory was not seen")
	}
}

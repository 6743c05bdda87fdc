package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gopherlings/internal/queue"
)

// DefaultDebounce is the tick of the debouncer.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer batches raw "exercise i changed" signals. Every window it
// emits one ItemChanged per exercise touched since the previous tick, in
// index order. Incoming signals do not restart the window.
type Debouncer struct {
	raw    chan int
	n      int
	window time.Duration
	events *queue.Queue[Event]
}

// NewDebouncer creates a debouncer for n exercises.
func NewDebouncer(n int, window time.Duration, events *queue.Queue[Event]) *Debouncer {
	return &Debouncer{
		raw:    make(chan int, 1),
		n:      n,
		window: window,
		events: events,
	}
}

// Notify hands a raw signal to the debounce loop. It blocks while the
// previous signal has not been picked up yet.
func (d *Debouncer) Notify(ctx context.Context, index int) error {
	select {
	case d.raw <- index:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run is the debounce loop. It returns nil when ctx is cancelled. Any
// other failure is pushed as WatcherFailed before Run returns it.
func (d *Debouncer) Run(ctx context.Context) error {
	dirty := make([]bool, d.n)

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case i := <-d.raw:
			if i < 0 || i >= d.n {
				err := &WatcherError{Err: fmt.Errorf("change signal for exercise index %d out of range [0, %d)", i, d.n)}
				d.events.Push(WatcherFailed{Err: err})
				return err
			}
			dirty[i] = true

		case <-timer.C:
			for i, set := range dirty {
				if !set {
					continue
				}
				d.events.Push(ItemChanged{Index: i})
				dirty[i] = false
			}
			timer.Reset(d.window)
		}
	}
}

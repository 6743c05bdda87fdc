package watch

import (
	"sync"
	"sync/atomic"
)

// PauseGuard counts operations in flight. While any is held, keystrokes
// and file notifications are discarded instead of queued.
//
//	release := guard.Acquire()
//	defer release()
type PauseGuard struct {
	n atomic.Int32
}

// Acquire increments the counter. The returned function decrements it
// once, no matter how often it is called.
func (g *PauseGuard) Acquire() (release func()) {
	g.n.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { g.n.Add(-1) })
	}
}

// Paused reports whether an operation is in flight.
func (g *PauseGuard) Paused() bool {
	return g.n.Load() != 0
}

package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPauseGuard(t *testing.T) {
	var g PauseGuard
	assert.False(t, g.Paused())

	r1 := g.Acquire()
	r2 := g.Acquire()
	assert.True(t, g.Paused())

	r1()
	r1()
	assert.True(t, g.Paused(), "a release function only counts once")

	r2()
	assert.False(t, g.Paused())
}

func TestPauseGuard_ReleasedOnPanic(t *testing.T) {
	var g PauseGuard

	func() {
		defer func() { _ = recover() }()
		release := g.Acquire()
		defer release()
		panic("boom")
	}()

	assert.False(t, g.Paused())
}

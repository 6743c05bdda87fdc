package watch

import (
	"context"
	"fmt"

	"github.com/abhisek/gopherlings/internal/queue"
)

const keyCtrlC = '\x03'

// Multiplexer turns raw terminal input into watch events.
//
// Keys are dropped while the pause guard is held. List and Quit end the
// loop after being forwarded. Reset is forwarded and the loop then waits
// for the controller to send its width on unpause, leaving the raw queue
// to the confirmation prompt. Ctrl-C is never gated: it calls interrupt
// and ends the loop.
type Multiplexer struct {
	in        *queue.Queue[RawInput]
	out       *queue.Queue[Event]
	guard     *PauseGuard
	unpause   <-chan int
	interrupt func()
	manualRun bool
	lastWidth int
}

// NewMultiplexer creates a multiplexer. width is the width the controller
// already knows about. interrupt cancels the watch session; when nil,
// Ctrl-C is forwarded as Quit.
func NewMultiplexer(in *queue.Queue[RawInput], out *queue.Queue[Event], guard *PauseGuard, unpause <-chan int, interrupt func(), manualRun bool, width int) *Multiplexer {
	return &Multiplexer{
		in:        in,
		out:       out,
		guard:     guard,
		unpause:   unpause,
		interrupt: interrupt,
		manualRun: manualRun,
		lastWidth: width,
	}
}

// Run forwards events until List or Quit, an input failure, or ctx is
// cancelled.
func (m *Multiplexer) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ierr := &InputError{Err: fmt.Errorf("panic: %v", r)}
			m.out.Push(InputFailed{Err: ierr})
			err = ierr
		}
	}()

	for {
		raw, err := m.in.Pop(ctx)
		if err != nil {
			return nil
		}

		switch raw.Kind {
		case RawResize:
			if raw.Width == m.lastWidth {
				continue
			}
			m.lastWidth = raw.Width
			m.out.Push(TerminalResized{Width: raw.Width})

		case RawError:
			ierr := &InputError{Err: raw.Err}
			m.out.Push(InputFailed{Err: ierr})
			return ierr

		case RawKey:
			if raw.Key == keyCtrlC {
				if m.interrupt == nil {
					m.out.Push(Command{Kind: CmdQuit})
				} else {
					m.interrupt()
				}
				return nil
			}
			if m.guard.Paused() {
				continue
			}
			kind, ok := m.command(raw.Key)
			if !ok {
				continue
			}
			m.out.Push(Command{Kind: kind})

			switch kind {
			case CmdList, CmdQuit:
				return nil
			case CmdReset:
				select {
				case w := <-m.unpause:
					m.lastWidth = w
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

func (m *Multiplexer) command(key rune) (CommandKind, bool) {
	switch key {
	case 'n':
		return CmdNext, true
	case 'r':
		return CmdRun, m.manualRun
	case 'h':
		return CmdHint, true
	case 'l':
		return CmdList, true
	case 'c':
		return CmdCheckAll, true
	case 'x':
		return CmdReset, true
	case 'q':
		return CmdQuit, true
	default:
		return 0, false
	}
}

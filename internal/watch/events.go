// Package watch is the interactive watch mode: it reruns the current
// exercise whenever its file changes, reads single-key commands from the
// terminal and advances the curriculum as exercises get solved.
//
// Producers (file notifier, debouncer, input reader, resize poller,
// multiplexer) push into one unbounded Event queue. WatchState is its only
// consumer and handles one Event at a time.
package watch

import "fmt"

// Event is a message consumed by the watch loop. The set of events is
// closed; see the types below.
type Event interface {
	isEvent()
}

// ItemChanged reports that the file of exercise Index was modified.
type ItemChanged struct{ Index int }

// TerminalResized reports a new terminal width.
type TerminalResized struct{ Width int }

// Command is a user command read from the keyboard.
type Command struct{ Kind CommandKind }

// WatcherFailed reports that file change detection stopped working.
type WatcherFailed struct{ Err error }

// InputFailed reports that reading the terminal stopped working.
type InputFailed struct{ Err error }

func (ItemChanged) isEvent()     {}
func (TerminalResized) isEvent() {}
func (Command) isEvent()         {}
func (WatcherFailed) isEvent()   {}
func (InputFailed) isEvent()     {}

// CommandKind enumerates the watch mode commands.
type CommandKind int

const (
	CmdNext CommandKind = iota
	CmdRun
	CmdHint
	CmdList
	CmdCheckAll
	CmdReset
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdNext:
		return "next"
	case CmdRun:
		return "run"
	case CmdHint:
		return "hint"
	case CmdList:
		return "list"
	case CmdCheckAll:
		return "check-all"
	case CmdReset:
		return "reset"
	case CmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Progress is the result of a transition that can move the current
// exercise.
type Progress int

const (
	// AllDone means every exercise passed.
	AllDone Progress = iota
	// CurrentPending means the current exercise still has to be solved.
	CurrentPending
	// NewPending means the current exercise changed and needs a run.
	NewPending
)

func (p Progress) String() string {
	switch p {
	case AllDone:
		return "all-done"
	case CurrentPending:
		return "current-pending"
	case NewPending:
		return "new-pending"
	default:
		return fmt.Sprintf("Progress(%d)", int(p))
	}
}

// Exit tells the caller of Run what to do after watch mode returns.
type Exit int

const (
	// ExitShutdown ends the program.
	ExitShutdown Exit = iota
	// ExitList enters list mode; watch mode is restarted afterwards.
	ExitList
)

package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/exercises"
	"github.com/abhisek/gopherlings/internal/queue"
	"github.com/abhisek/gopherlings/internal/runner"
)

const quitMessage = `We hope you're enjoying learning Go!
If you want to continue working on the exercises at a later point, you can simply run "gopherlings" again in this directory.`

// Resetter restores an exercise file to its starting content.
type Resetter interface {
	Reset(ctx context.Context, ex curriculum.Exercise) error
}

// SolutionFinder returns the solution path of a done exercise, or
// exercises.ErrNoSolution.
type SolutionFinder interface {
	Path(ex curriculum.Exercise) (string, error)
}

// Deps are the collaborators of WatchState.
type Deps struct {
	Runner    runner.Runner
	Resetter  Resetter
	Solutions SolutionFinder
	Renderer  Renderer
	Guard     *PauseGuard
	// Raw is read directly while the reset confirmation is shown.
	Raw *queue.Queue[RawInput]
	Log *slog.Logger
}

// Options tune WatchState.
type Options struct {
	ManualRun    bool
	FinalMessage string
	CheckJobs    int
	Width        int
}

// WatchState is the watch mode state machine. It is driven by a single
// goroutine and needs no locking.
type WatchState struct {
	cur  *curriculum.Curriculum
	deps Deps
	opts Options

	// unpause resumes the multiplexer after a reset prompt and carries the
	// width the controller ended the prompt with.
	unpause chan int

	outcome  RunOutcome
	showHint bool
	width    int
	output   string
}

// NewWatchState creates the state machine for cur.
func NewWatchState(cur *curriculum.Curriculum, deps Deps, opts Options) *WatchState {
	if deps.Guard == nil {
		deps.Guard = &PauseGuard{}
	}
	if deps.Log == nil {
		deps.Log = slog.New(slog.DiscardHandler)
	}
	return &WatchState{
		cur:     cur,
		deps:    deps,
		opts:    opts,
		unpause: make(chan int, 1),
		width:   opts.Width,
	}
}

// Unpause is the channel the multiplexer waits on after a reset command.
// The value received is the current terminal width.
func (s *WatchState) Unpause() <-chan int { return s.unpause }

// Outcome returns the outcome of the last run.
func (s *WatchState) Outcome() RunOutcome { return s.outcome }

// Snapshot returns what the renderer draws.
func (s *WatchState) Snapshot() Snapshot {
	ex := s.cur.Current()
	snap := Snapshot{
		Done:      s.cur.DoneCount(),
		Total:     s.cur.Len(),
		Name:      ex.Name,
		Path:      ex.Path,
		Outcome:   s.outcome,
		Width:     s.width,
		Output:    s.output,
		ManualRun: s.opts.ManualRun,
	}
	if s.showHint {
		snap.Hint = ex.Hint
	}
	return snap
}

// Render redraws the watch screen.
func (s *WatchState) Render() error {
	return s.deps.Renderer.Render(s.Snapshot())
}

// RunCurrent runs the current exercise and classifies its outcome. A
// failing run demotes the exercise to pending.
func (s *WatchState) RunCurrent(ctx context.Context) error {
	release := s.deps.Guard.Acquire()
	defer release()

	s.showHint = false
	ex := s.cur.Current()
	if err := s.deps.Renderer.Status(fmt.Sprintf("Checking the exercise `%s`. Please wait…", ex.Name)); err != nil {
		return err
	}

	res, err := s.deps.Runner.Run(ctx, ex)
	if err != nil {
		return fmt.Errorf("run %s: %w", ex.Name, err)
	}
	s.output = res.Output
	s.deps.Log.Debug("exercise run", "exercise", ex.Name, "success", res.Success)

	if res.Success {
		path, err := s.deps.Solutions.Path(ex)
		switch {
		case err == nil:
			s.outcome = RunOutcome{Kind: DoneWithSolution, SolutionPath: path}
		case errors.Is(err, exercises.ErrNoSolution):
			s.outcome = RunOutcome{Kind: DoneWithoutSolution}
		default:
			return fmt.Errorf("solution of %s: %w", ex.Name, err)
		}
	} else {
		if err := s.cur.SetPending(s.cur.CurrentIndex()); err != nil {
			return err
		}
		s.outcome = RunOutcome{Kind: Pending}
	}

	return s.Render()
}

// HandleChange reruns the current exercise when its file changed.
func (s *WatchState) HandleChange(ctx context.Context, index int) error {
	if index != s.cur.CurrentIndex() {
		return nil
	}
	return s.RunCurrent(ctx)
}

// Next marks the current exercise done and moves to the next pending one.
// With nothing left pending, every exercise is verified again before
// AllDone is reported.
func (s *WatchState) Next(ctx context.Context) (Progress, error) {
	if s.outcome.Kind == Pending {
		return CurrentPending, nil
	}

	if s.cur.SetDone(s.cur.CurrentIndex(), true) {
		if err := s.cur.Persist(); err != nil {
			return 0, err
		}
	}

	if next, ok := s.cur.NextPendingIndex(); ok {
		if err := s.cur.SetCurrent(next); err != nil {
			return 0, err
		}
		return NewPending, nil
	}

	first, pending, err := s.checkAll(ctx)
	if err != nil {
		return 0, err
	}
	if pending {
		if err := s.cur.SetCurrent(first); err != nil {
			return 0, err
		}
		return NewPending, nil
	}

	if err := s.deps.Renderer.Final(s.opts.FinalMessage); err != nil {
		return 0, err
	}
	return AllDone, nil
}

// ShowHint shows the hint of the current exercise.
func (s *WatchState) ShowHint() error {
	if s.showHint {
		return nil
	}
	s.showHint = true
	return s.Render()
}

// CheckAll checks every exercise. When some are pending, the current
// exercise only moves if it passed itself.
func (s *WatchState) CheckAll(ctx context.Context) (Progress, error) {
	first, pending, err := s.checkAll(ctx)
	if err != nil {
		return 0, err
	}

	if pending {
		if !s.cur.Current().Done {
			return CurrentPending, nil
		}
		if err := s.cur.SetCurrent(first); err != nil {
			return 0, err
		}
		return NewPending, nil
	}

	if err := s.deps.Renderer.Final(s.opts.FinalMessage); err != nil {
		return 0, err
	}
	return AllDone, nil
}

// checkAll runs every exercise, stores the results as done flags and
// returns the first pending exercise.
func (s *WatchState) checkAll(ctx context.Context) (int, bool, error) {
	release := s.deps.Guard.Acquire()
	defer release()

	exs := s.cur.Exercises()
	if err := s.deps.Renderer.CheckProgress(0, len(exs)); err != nil {
		return 0, false, err
	}

	finished := 0
	var drawErr error
	results, err := runner.CheckAll(ctx, s.deps.Runner, exs, s.opts.CheckJobs, func(int, bool) {
		finished++
		if err := s.deps.Renderer.CheckProgress(finished, len(exs)); err != nil && drawErr == nil {
			drawErr = err
		}
	})
	if err != nil {
		return 0, false, err
	}
	if drawErr != nil {
		return 0, false, drawErr
	}

	for i, ok := range results {
		s.cur.SetDone(i, ok)
	}
	if err := s.cur.Persist(); err != nil {
		return 0, false, err
	}

	for i, ok := range results {
		if !ok {
			s.deps.Log.Info("check found pending exercise", "exercise", exs[i].Name)
			return i, true, nil
		}
	}
	return 0, false, nil
}

// Reset asks for confirmation and resets the current exercise. Keys are
// read from the raw input queue while the multiplexer waits on Unpause;
// it is released on every path. Ctrl-C ends the prompt with
// context.Canceled.
func (s *WatchState) Reset(ctx context.Context) error {
	defer s.release()

	ex := s.cur.Current()
	if err := s.deps.Renderer.ConfirmReset(ex.Path); err != nil {
		return err
	}

	for {
		raw, err := s.deps.Raw.Pop(ctx)
		if err != nil {
			return err
		}

		switch raw.Kind {
		case RawError:
			return &InputError{Err: raw.Err}
		case RawResize:
			s.width = raw.Width
			continue
		}

		switch raw.Key {
		case keyCtrlC:
			return context.Canceled
		case 'y', 'Y':
			if err := s.cur.SetPending(s.cur.CurrentIndex()); err != nil {
				return err
			}
			if err := s.deps.Resetter.Reset(ctx, ex); err != nil {
				return fmt.Errorf("reset %s: %w", ex.Name, err)
			}
			s.deps.Log.Info("exercise reset", "exercise", ex.Name)
			s.outcome = RunOutcome{Kind: Pending}
			s.output = ""
			if s.opts.ManualRun {
				return s.RunCurrent(ctx)
			}
			return s.Render()
		case 'n', 'N':
			return s.Render()
		}
	}
}

func (s *WatchState) release() {
	select {
	case s.unpause <- s.width:
	default:
	}
}

// UpdateWidth stores a new terminal width and redraws when it changed.
func (s *WatchState) UpdateWidth(width int) error {
	if s.width == width {
		return nil
	}
	s.width = width
	return s.Render()
}

// Loop runs the current exercise and then handles events until the user
// quits, enters list mode, or a producer fails. A cancelled ctx is a clean
// shutdown.
func (s *WatchState) Loop(ctx context.Context, events *queue.Queue[Event]) (Exit, error) {
	exit, err := s.loop(ctx, events)
	if errors.Is(err, context.Canceled) {
		return ExitShutdown, nil
	}
	return exit, err
}

func (s *WatchState) loop(ctx context.Context, events *queue.Queue[Event]) (Exit, error) {
	if err := s.RunCurrent(ctx); err != nil {
		return ExitShutdown, err
	}

	for {
		ev, err := events.Pop(ctx)
		if err != nil {
			return ExitShutdown, err
		}

		switch ev := ev.(type) {
		case ItemChanged:
			err = s.HandleChange(ctx, ev.Index)

		case TerminalResized:
			err = s.UpdateWidth(ev.Width)

		case WatcherFailed:
			return ExitShutdown, ev.Err

		case InputFailed:
			return ExitShutdown, ev.Err

		case Command:
			s.deps.Log.Debug("command", "kind", ev.Kind)

			switch ev.Kind {
			case CmdNext:
				var p Progress
				if p, err = s.Next(ctx); err == nil {
					err = s.afterProgress(ctx, p, false)
				}
				if err == nil && p == AllDone {
					return ExitShutdown, nil
				}

			case CmdRun:
				err = s.RunCurrent(ctx)

			case CmdHint:
				err = s.ShowHint()

			case CmdList:
				return ExitList, nil

			case CmdCheckAll:
				var p Progress
				if p, err = s.CheckAll(ctx); err == nil {
					err = s.afterProgress(ctx, p, true)
				}
				if err == nil && p == AllDone {
					return ExitShutdown, nil
				}

			case CmdReset:
				err = s.Reset(ctx)

			case CmdQuit:
				return ExitShutdown, s.deps.Renderer.Status(quitMessage)
			}
		}

		if err != nil {
			return ExitShutdown, err
		}
	}
}

func (s *WatchState) afterProgress(ctx context.Context, p Progress, rerender bool) error {
	switch p {
	case NewPending:
		return s.RunCurrent(ctx)
	case CurrentPending:
		if rerender {
			return s.Render()
		}
	}
	return nil
}

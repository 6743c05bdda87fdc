package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/gopherlings/internal/config"
	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/queue"
	"github.com/abhisek/gopherlings/internal/runner"
	"github.com/abhisek/gopherlings/internal/ui/layout"
)

// ListFunc runs list mode. Watch mode restarts when it returns nil.
type ListFunc func(ctx context.Context, cur *curriculum.Curriculum) error

// Session configures watch mode.
type Session struct {
	Curriculum   *curriculum.Curriculum
	Runner       runner.Runner
	Resetter     Resetter
	Solutions    SolutionFinder
	FinalMessage string
	Config       config.Config
	Log          *slog.Logger
	List         ListFunc

	Stdin  *os.File
	Stdout *os.File
}

// Run alternates between watch mode and list mode until the user quits,
// every exercise is done, or something fails.
func Run(ctx context.Context, s Session) error {
	for {
		exit, err := RunWatch(ctx, s)
		if err != nil {
			return err
		}

		switch exit {
		case ExitShutdown:
			return nil
		case ExitList:
			if err := s.List(ctx, s.Curriculum); err != nil {
				return fmt.Errorf("list mode: %w", err)
			}
		}
	}
}

// RunWatch runs one watch session. The terminal is released before it
// returns, so list mode can take over stdin.
func RunWatch(ctx context.Context, s Session) (Exit, error) {
	log := s.Log.With("session_id", uuid.NewString())
	log.Info("watch session started", "manual_run", s.Config.ManualRun, "exercise", s.Curriculum.Current().Name)

	term, err := OpenTerminal(s.Stdin, s.Stdout)
	if err != nil {
		return ExitShutdown, err
	}
	defer term.Close()

	width, err := term.Width()
	if err != nil {
		width = layout.DefaultWidth
	}

	events := queue.New[Event]()
	raw := queue.New[RawInput]()
	guard := &PauseGuard{}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if !s.Config.ManualRun {
		deb := NewDebouncer(s.Curriculum.Len(), s.Config.Debounce, events)
		n, err := NewNotifier(s.Config.ExercisesDir, s.Curriculum.Exercises(), guard, deb, events, log)
		if err != nil {
			return ExitShutdown, &WatcherError{Err: err}
		}
		defer n.Close()

		g.Go(func() error { return deb.Run(gctx) })
		g.Go(func() error { return n.Run(gctx) })
	}

	src := NewInputSource(term, term.Width, s.Config.ResizePoll, raw)
	g.Go(func() error { return src.ReadKeys(gctx) })
	g.Go(func() error { return src.PollSize(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		term.Cancel()
		return nil
	})

	state := NewWatchState(s.Curriculum, Deps{
		Runner:    s.Runner,
		Resetter:  s.Resetter,
		Solutions: s.Solutions,
		Renderer:  NewTermRenderer(term.Writer()),
		Guard:     guard,
		Raw:       raw,
		Log:       log,
	}, Options{
		ManualRun:    s.Config.ManualRun,
		FinalMessage: s.FinalMessage,
		CheckJobs:    s.Config.CheckConcurrency,
		Width:        width,
	})

	mux := NewMultiplexer(raw, events, guard, state.Unpause(), cancel, s.Config.ManualRun, width)
	g.Go(func() error { return mux.Run(gctx) })

	var exit Exit
	g.Go(func() error {
		defer cancel()
		var err error
		exit, err = state.Loop(gctx, events)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("watch session failed", "error", err)
		return ExitShutdown, err
	}
	log.Info("watch session ended", "list", exit == ExitList)
	return exit, nil
}

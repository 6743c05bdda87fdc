package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gopherlings/internal/config"
	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/exercises"
	"github.com/abhisek/gopherlings/internal/info"
	"github.com/abhisek/gopherlings/internal/runner"
	"github.com/abhisek/gopherlings/internal/watch"
)

const banner = `       Welcome to...
                   _                _ _
  __ _  ___  _ __ | |__   ___ _ __| (_)_ __   __ _ ___
 / _' |/ _ \| '_ \| '_ \ / _ \ '__| | | '_ \ / _' / __|
| (_| | (_) | |_) | | | |  __/ |  | | | | | | (_| \__ \
 \__, |\___/| .__/|_| |_|\___|_|  |_|_|_| |_|\__, |___/
 |___/      |_|                              |___/
`

var errNotInitialized = errors.New(banner + `
The "exercises/" directory couldn't be found in the current directory.
If you are just starting with gopherlings, run the command "gopherlings init" to initialize it.`)

// workspace is an exercise directory opened for one command.
type workspace struct {
	cfg  config.Config
	log  *slog.Logger
	info *info.InfoFile
	cur  *curriculum.Curriculum
	// fresh is true when no progress record was found.
	fresh bool

	closeLog func() error
}

// resolveConfig returns the configuration using flags (highest priority),
// then GOPHERLINGS_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	if f := cmd.Flags().Lookup("manual-run"); f != nil && f.Changed {
		cfg.ManualRun, _ = cmd.Flags().GetBool("manual-run")
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openWorkspace loads the info file and the progress record of the
// current directory. The progress file stays locked until close.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	if fi, err := os.Stat(cfg.ExercisesDir); err != nil || !fi.IsDir() {
		return nil, errNotInitialized
	}

	log, closeLog, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	f, err := info.Load(cfg.InfoFile, exercises.InfoFile())
	if err != nil {
		closeLog()
		return nil, err
	}

	cur, read, err := curriculum.Load(f.Exercises, cfg.ExercisesDir, cfg.ProgressFile)
	if err != nil {
		closeLog()
		return nil, err
	}

	log.Info("workspace opened", "official", f.Official, "exercises", cur.Len(), "done", cur.DoneCount(), "record", read)
	return &workspace{
		cfg:      cfg,
		log:      log,
		info:     f,
		cur:      cur,
		fresh:    !read,
		closeLog: closeLog,
	}, nil
}

func (w *workspace) close() {
	if err := w.cur.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to unlock progress file: %v\n", err)
	}
	w.closeLog()
}

func (w *workspace) runner() runner.Runner {
	return runner.NewGoRunner()
}

func (w *workspace) resetter() watch.Resetter {
	if w.info.Official {
		return exercises.EmbeddedResetter{}
	}
	return exercises.GitResetter{}
}

func (w *workspace) solutions() exercises.Solutions {
	return exercises.Solutions{Dir: w.cfg.SolutionsDir, Official: w.info.Official}
}

// exercise returns the index of the named exercise, or of the current one
// when args is empty.
func (w *workspace) exercise(args []string) (int, error) {
	if len(args) == 0 {
		return w.cur.CurrentIndex(), nil
	}
	i, ok := w.cur.IndexOf(args[0])
	if !ok {
		return 0, fmt.Errorf("no exercise found for %q", args[0])
	}
	return i, nil
}

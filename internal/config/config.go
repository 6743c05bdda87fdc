package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	// ManualRun disables the file watcher. The current exercise is only
	// run when the user presses `r`.
	ManualRun bool

	// ExercisesDir is the directory holding the exercise files.
	ExercisesDir string

	// SolutionsDir is the directory solutions are written to once an
	// exercise is done.
	SolutionsDir string

	// ProgressFile is the path of the progress record, relative to the
	// working directory.
	ProgressFile string

	// InfoFile is the community info file. When it is missing the embedded
	// official exercises are used.
	InfoFile string

	// Debounce is the window over which file change signals are coalesced.
	Debounce time.Duration

	// ResizePoll is how often the terminal size is sampled.
	ResizePoll time.Duration

	// LogFile receives diagnostic logs. Empty disables logging.
	LogFile string

	// CheckConcurrency bounds how many exercises are checked in parallel.
	CheckConcurrency int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ExercisesDir:     "exercises",
		SolutionsDir:     "solutions",
		ProgressFile:     ".gopherlings-state.txt",
		InfoFile:         "info.yaml",
		Debounce:         200 * time.Millisecond,
		ResizePoll:       200 * time.Millisecond,
		CheckConcurrency: runtime.NumCPU(),
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed values are reported.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("GOPHERLINGS_MANUAL_RUN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("GOPHERLINGS_MANUAL_RUN: %w", err)
		}
		cfg.ManualRun = b
	}

	if v := os.Getenv("GOPHERLINGS_LOG"); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv("GOPHERLINGS_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("GOPHERLINGS_DEBOUNCE: %w", err)
		}
		cfg.Debounce = d
	}

	if v := os.Getenv("GOPHERLINGS_CHECK_JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("GOPHERLINGS_CHECK_JOBS: %w", err)
		}
		cfg.CheckConcurrency = n
	}

	return cfg, nil
}

// Validate checks that durations and limits are usable.
func (c Config) Validate() error {
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce window must be positive, got %s", c.Debounce)
	}
	if c.ResizePoll <= 0 {
		return fmt.Errorf("resize poll interval must be positive, got %s", c.ResizePoll)
	}
	if c.CheckConcurrency < 1 {
		return fmt.Errorf("check concurrency must be at least 1, got %d", c.CheckConcurrency)
	}
	if c.ProgressFile == "" {
		return fmt.Errorf("progress file path is empty")
	}
	return nil
}

// NewLogger returns a text logger writing to LogFile, or a logger that
// discards everything when no file is configured. The returned close
// function must be called before exit.
func (c Config) NewLogger() (*slog.Logger, func() error, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

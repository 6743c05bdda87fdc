package watch

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/gopherlings/internal/ui/components"
	"github.com/abhisek/gopherlings/internal/ui/layout"
	"github.com/abhisek/gopherlings/internal/ui/theme"
)

const clearScreen = "\x1b[H\x1b[2J\x1b[3J"

// OutcomeKind classifies the last run of the current exercise.
type OutcomeKind int

const (
	Pending OutcomeKind = iota
	DoneWithoutSolution
	DoneWithSolution
)

// RunOutcome is the result of the last run. SolutionPath is set for
// DoneWithSolution.
type RunOutcome struct {
	Kind         OutcomeKind
	SolutionPath string
}

// Snapshot is everything needed to redraw the watch screen.
type Snapshot struct {
	Done      int
	Total     int
	Name      string
	Path      string
	Hint      string // empty unless the hint was requested
	Outcome   RunOutcome
	Width     int
	Output    string
	ManualRun bool
}

// Renderer draws the watch screen and its transient messages.
type Renderer interface {
	Render(s Snapshot) error
	Status(msg string) error
	CheckProgress(done, total int) error
	ConfirmReset(path string) error
	Final(msg string) error
}

// TermRenderer renders to a terminal.
type TermRenderer struct {
	w io.Writer
}

// NewTermRenderer creates a renderer writing to w.
func NewTermRenderer(w io.Writer) *TermRenderer {
	return &TermRenderer{w: w}
}

func (r *TermRenderer) Render(s Snapshot) error {
	_, err := fmt.Fprint(r.w, "\n"+clearScreen+View(s))
	return err
}

func (r *TermRenderer) Status(msg string) error {
	_, err := fmt.Fprintf(r.w, "\n%s\n", msg)
	return err
}

func (r *TermRenderer) CheckProgress(done, total int) error {
	_, err := fmt.Fprintf(r.w, "\r\x1b[KChecking all exercises: %d/%d", done, total)
	return err
}

func (r *TermRenderer) ConfirmReset(path string) error {
	_, err := fmt.Fprintf(r.w, "%sResetting will undo all your changes to the file %s\n\nReset (y/n)? ", clearScreen, theme.Path.Render(path))
	return err
}

func (r *TermRenderer) Final(msg string) error {
	_, err := fmt.Fprintf(r.w, "%s%s\n\n%s\n", clearScreen, theme.Done.Render("Congratulations! You finished every exercise."), strings.TrimRight(msg, "\n"))
	return err
}

// View renders the watch screen for s.
func View(s Snapshot) string {
	width := layout.ClampWidth(s.Width)

	var hint string
	if s.Hint != "" {
		hint = theme.Title.Underline(true).Render("Hint") + "\n" + theme.Hint.Render(strings.TrimRight(s.Hint, "\n"))
	}

	var done string
	if s.Outcome.Kind != Pending {
		done = theme.Done.Render("Exercise done ✓")
		if s.Outcome.Kind == DoneWithSolution {
			done += "\nSolution for comparison: " + theme.Path.Render(s.Outcome.SolutionPath)
		}
		done += "\nWhen done experimenting, enter `n` to move on to the next exercise 🐹"
	}

	return layout.RenderFrame(
		strings.TrimRight(s.Output, "\n"),
		hint,
		done,
		components.NewProgressBar(s.Done, s.Total, width).View(),
		"Current exercise: "+theme.Path.Render(s.Path),
		layout.RenderFooter(prompt(s))+" ? ",
	)
}

func prompt(s Snapshot) []layout.KeyHint {
	var hints []layout.KeyHint
	if s.Outcome.Kind != Pending {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "next"})
	}
	if s.ManualRun {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "run"})
	}
	if s.Hint == "" {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "hint"})
	}
	return append(hints,
		layout.KeyHint{Key: "l", Description: "list"},
		layout.KeyHint{Key: "c", Description: "check all"},
		layout.KeyHint{Key: "x", Description: "reset"},
		layout.KeyHint{Key: "q", Description: "quit"},
	)
}

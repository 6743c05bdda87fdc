package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gopherlings/internal/exercises"
	"github.com/abhisek/gopherlings/internal/ui/theme"
)

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Run the current exercise, or the named one, once",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer w.close()

		i, err := w.exercise(args)
		if err != nil {
			return err
		}
		if err := w.cur.SetCurrent(i); err != nil {
			return err
		}

		ex := w.cur.Exercise(i)
		res, err := w.runner().Run(cmd.Context(), ex)
		if err != nil {
			return fmt.Errorf("run %s: %w", ex.Name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, res.Output)

		if !res.Success {
			if err := w.cur.SetPending(i); err != nil {
				return err
			}
			return fmt.Errorf("ran %s with errors", ex.Path)
		}

		fmt.Fprintln(out, theme.Done.Render("✓ Successfully ran "+ex.Path))
		if path, err := w.solutions().Path(ex); err == nil {
			fmt.Fprintf(out, "Solution for comparison: %s\n", theme.Path.Render(path))
		} else if !errors.Is(err, exercises.ErrNoSolution) {
			return err
		}

		w.cur.SetDone(i, true)
		if next, ok := w.cur.NextPendingIndex(); ok {
			if err := w.cur.SetCurrent(next); err != nil {
				return err
			}
			fmt.Fprintf(out, "Next exercise: %s\n", theme.Path.Render(w.cur.Current().Path))
			return nil
		}
		if err := w.cur.Persist(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Every exercise is done. Run \"gopherlings check\" to verify them all.")
		return nil
	},
}

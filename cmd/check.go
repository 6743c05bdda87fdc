package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gopherlings/internal/runner"
	"github.com/abhisek/gopherlings/internal/ui/components"
	"github.com/abhisek/gopherlings/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every exercise and continue at the first pending one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer w.close()

		out := cmd.OutOrStdout()
		exs := w.cur.Exercises()
		finished := 0
		results, err := runner.CheckAll(cmd.Context(), w.runner(), exs, w.cfg.CheckConcurrency, func(int, bool) {
			finished++
			fmt.Fprintf(out, "\rChecking all exercises: %d/%d", finished, len(exs))
		})
		fmt.Fprintln(out)
		if err != nil {
			return err
		}

		first := -1
		for i, ok := range results {
			w.cur.SetDone(i, ok)
			if !ok {
				if first < 0 {
					first = i
				}
				fmt.Fprintf(out, "%s %s\n", theme.Pending.Render("PENDING"), exs[i].Path)
			}
		}
		if err := w.cur.Persist(); err != nil {
			return err
		}

		fmt.Fprintln(out, components.NewProgressBar(w.cur.DoneCount(), w.cur.Len(), 60).View())

		if first < 0 {
			fmt.Fprintln(out, theme.Done.Render("Every exercise is done ✓"))
			fmt.Fprintln(out, w.info.FinalMessage)
			return nil
		}
		if err := w.cur.SetCurrent(first); err != nil {
			return err
		}
		fmt.Fprintf(out, "Continue at %s\n", theme.Path.Render(w.cur.Current().Path))
		return nil
	},
}

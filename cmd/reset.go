package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Reset an exercise to its starting content and mark it pending",
	Args:  cobra.ExactArgs(1),
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
		ex := w.cur.Exercise(i)

		if err := w.cur.SetPending(i); err != nil {
			return err
		}
		if err := w.resetter().Reset(cmd.Context(), ex); err != nil {
			return fmt.Errorf("reset %s: %w", ex.Name, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "The exercise %s has been reset\n", ex.Path)
		return nil
	},
}

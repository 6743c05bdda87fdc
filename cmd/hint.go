package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint [name]",
	Short: "Show the hint of the current exercise, or the named one",
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
		fmt.Fprintln(cmd.OutOrStdout(), w.cur.Exercise(i).Hint)
		return nil
	},
}

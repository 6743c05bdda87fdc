package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gopherlings/internal/exercises"
	"github.com/abhisek/gopherlings/internal/info"
)

const initDone = `Initialization done ✓

Run "cd %s" to go into the generated directory.
Then run "gopherlings" to get started.
`

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize the official exercises in a new directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "gopherlings"
		if len(args) == 1 {
			dir = args[0]
		}

		f, err := info.Parse(exercises.InfoFile())
		if err != nil {
			return fmt.Errorf("parse embedded info file: %w", err)
		}

		if err := exercises.Init(dir, f); err != nil {
			if errors.Is(err, exercises.ErrAlreadyInitialized) {
				return fmt.Errorf("%w\nYou probably want to run \"gopherlings\" in that directory instead", err)
			}
			return fmt.Errorf("initialize %s: %w", dir, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), initDone, dir)
		return nil
	},
}

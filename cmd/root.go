package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/listmode"
	"github.com/abhisek/gopherlings/internal/watch"
)

var rootCmd = &cobra.Command{
	Use:           "gopherlings",
	Short:         "Small exercises to get you used to reading and writing Go code",
	Long:          "gopherlings watches the current exercise, reruns it on every save and moves on once it is solved.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file (overrides GOPHERLINGS_LOG env var)")
	rootCmd.Flags().Bool("manual-run", false, "Disable the file watcher; run the current exercise with `r` (overrides GOPHERLINGS_MANUAL_RUN env var)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func runWatch(cmd *cobra.Command) error {
	w, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer w.close()

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("unsupported or missing terminal/TTY")
	}

	if w.fresh && w.info.WelcomeMessage != "" {
		fmt.Print("\x1b[H\x1b[2J")
		fmt.Println(w.info.WelcomeMessage)
		fmt.Print("Press ENTER to continue ")
		if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		// Persist the record so the welcome message is only shown once.
		if err := w.cur.Persist(); err != nil {
			return err
		}
	}

	resetter := w.resetter()
	return watch.Run(cmd.Context(), watch.Session{
		Curriculum:   w.cur,
		Runner:       w.runner(),
		Resetter:     resetter,
		Solutions:    w.solutions(),
		FinalMessage: w.info.FinalMessage,
		Config:       w.cfg,
		Log:          w.log,
		List: func(ctx context.Context, cur *curriculum.Curriculum) error {
			return listmode.Run(ctx, cur, resetter)
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
}

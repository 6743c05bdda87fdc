package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/gopherlings/internal/info"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gopherlings version and supported info format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := buildVersion()
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "gopherlings %s (info format %d)\n", v, info.CurrentFormatVersion)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version")
}

// buildVersion falls back to the module version recorded by go install.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return version
}

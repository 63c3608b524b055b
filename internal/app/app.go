//go:build linux

package app

import (
	"github.com/spf13/cobra"

	"github.com/asidko/fastkill/internal/logging"
	"github.com/asidko/fastkill/internal/tui"
)

// version is set at build time via -ldflags.
var version = "dev"

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:     "fastkill",
	Short:   "Inspect and terminate your own processes",
	Version: version,
	Long: `fastkill lists the processes owned by the current user, filtering out
desktop and session infrastructure, and terminates the selected ones.
The first kill sends SIGTERM; a repeat within 30 seconds sends SIGKILL.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(flagDebug)
		return tui.Run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

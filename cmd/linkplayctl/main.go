// Linkplayctl is a command-line client for Linkplay-based wireless
// speakers.
//
// It issues HTTP commands to a device's control endpoint to drive
// playback, volume, equalizer presets, reboots, and device information
// queries, and can sequence reboots and resets across a fleet of devices.
//
// Usage:
//
//	linkplayctl --device <address> [command] [args...]
//
// See 'linkplayctl --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfm1/linkplayctl/internal/linkplay"
	"github.com/kfm1/linkplayctl/internal/logging"
	"github.com/kfm1/linkplayctl/internal/ui"
	"github.com/kfm1/linkplayctl/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		var cerr *linkplay.Error
		if errors.As(err, &cerr) {
			fmt.Fprintln(os.Stderr, ui.Errorf("%s", linkplay.ShortMessage(err)))
		} else {
			fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkplayctl",
	Short: "Control Linkplay wireless speakers",
	Long: `A command-line client for Linkplay-based wireless speakers.

Sends commands to a device's HTTP control endpoint to drive playback,
volume, equalizer presets, reboot behavior, and device information
queries. The fleet subcommand sequences reboots and resets across a
list of devices.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeVerbosity(verbosity)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linkplayctl %s\n", version.Full())
	},
}

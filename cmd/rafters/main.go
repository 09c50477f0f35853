// Rafters is the command line tool for the Rafters component library.
//
// It sets up consumer projects, copies components (and their Storybook
// stories) from the component registry into the project source tree, and
// serves the built documentation site with live reload.
//
// Usage:
//
//	rafters [command] [flags]
//
// See 'rafters --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafters-ui/rafters/internal/config"
	"github.com/rafters-ui/rafters/internal/logging"
	"github.com/rafters-ui/rafters/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if remedy := config.Remedy(err); remedy != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", remedy)
		}
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

var rootCmd = &cobra.Command{
	Use:   "rafters",
	Short: "Rafters component library CLI",
	Long: `The command line tool for the Rafters component library.

Copies accessible React components into your project the copy-in way: the
source lands in your tree, imports rewritten to your project's alias, and
you own it from there. No runtime dependency on Rafters itself.

Start with 'rafters init' in your project root.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless RAFTERS_LOG_LEVEL is set
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
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
		fmt.Printf("rafters %s\n", version.Full())
	},
}

package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "testtools",
	Short: "Editor test fixture helpers",
	Long: `Testtools ships the scene and game-object lifecycle fixtures used by
editor test suites, plus small maintenance commands: normalize canonicalizes
scene asset paths, verify smoke-runs every fixture against the bundled
in-memory engine.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("testtools version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

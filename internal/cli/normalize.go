package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/scenepath"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path> [path...]",
	Short: "Print canonical scene asset paths",
	Long: `Normalize prints the canonical asset path for each scene identifier:
prefixed with Assets/ and suffixed with .unity unless already present.
No other rewriting happens; segments are kept as given.

Examples:
  testtools normalize Level1
  testtools normalize Levels/Boss Assets/Level1.unity`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	for _, raw := range args {
		p := scenepath.Normalize(raw)
		if p == "" {
			return fmt.Errorf("empty scene path %q", raw)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/plugopts/packages/artifacts"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <identifier>",
	Short: "Print the artifact-safe form of a test identifier",
	Long: `Print the sanitized directory name derived from a test identifier.

Examples:
  plugopts sanitize "mod.py::test_x[1]"
  plugopts sanitize "suite/case with spaces"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), artifacts.Sanitize(args[0]))
	},
}

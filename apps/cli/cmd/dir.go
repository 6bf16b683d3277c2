package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/plugopts/packages/artifacts"
	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

var dirCmd = &cobra.Command{
	Use:   "dir <test-id>",
	Short: "Create and print the artifact directory for a test identifier",
	Long: `Resolve the configured artifact root, create the sanitized per-test
subdirectory under it, and print the resulting path.

Examples:
  plugopts dir "mod.py::test_x[1]"
  plugopts dir "mod.py::test_x[1]" --artifacts-dir /tmp/out
  plugopts dir "mod.py::test_x[1]" --run-scoped true`,
	Args: cobra.ExactArgs(1),
	RunE: dirCommand,
}

func dirCommand(cmd *cobra.Command, args []string) error {
	if scoped, _ := options.Resolve(Namespace, cfg, "run_scoped").(bool); scoped {
		if _, ok := artifacts.RunID(Namespace); !ok {
			artifacts.SetRunID(Namespace, artifacts.NewRunID())
		}
	}

	dir, err := artifacts.TestDir(Namespace, cfg, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}

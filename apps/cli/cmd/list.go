package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Display every option declared in the registry",
	RunE:  listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	for _, ns := range options.Default.Namespaces() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("namespace:"), cyan(ns))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "  NAME\tHINT\tINI KIND\tEXPOSURE\tDEFAULT\tHELP\n")
		for _, def := range options.Default.Options(ns) {
			iniKind := string(def.IniKind)
			if iniKind == "" {
				iniKind = "-"
			}
			defaultVal := "-"
			if def.Default != nil && def.Default != "" {
				defaultVal = fmt.Sprintf("%v", def.Default)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				def.Name, def.Hint, iniKind, def.Exposure, defaultVal, def.Help)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

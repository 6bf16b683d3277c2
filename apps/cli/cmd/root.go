package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/plugopts/packages/artifacts"
	"github.com/abdul-hamid-achik/plugopts/packages/host"
	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// Namespace is the registry namespace the CLI declares its own options under.
const Namespace = "plugopts"

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	hostFlags *host.Flags
	settings  *host.Settings
	cfg       *host.Config
)

var rootCmd = &cobra.Command{
	Use:   "plugopts",
	Short: "Inspect plugin options and test artifact paths.",
	Long: `plugopts is a helper library that lets test framework plugins declare,
register, and resolve configuration options through one shared registry,
plus a utility mapping each test case to a sanitized artifact directory.

This CLI dogfoods the library: its own options live in the registry and
resolve with the same precedence chain plugins use
(runtime/CLI > settings file > declared default).`,
	PersistentPreRunE: loadSettings,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	declareOptions()

	hostFlags = host.NewFlags(rootCmd.PersistentFlags())
	settings = host.NewSettings()
	options.RegisterWithHost(Namespace, &host.Parser{Flags: hostFlags, Settings: settings})
	cfg = host.NewConfig(hostFlags, settings)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(dirCmd)
	rootCmd.AddCommand(versionCmd)
}

func declareOptions() {
	options.Declare(Namespace, "settings",
		options.WithHelp("Path to a JSON or YAML settings file"),
		options.WithHint(options.KindPath),
		options.WithExposure(options.ExposureCLI),
	)
	options.Declare(Namespace, "artifacts_dir",
		options.WithDefault("test-artifacts"),
		options.WithHelp("Root directory for per-test artifacts"),
		options.WithHint(options.KindPath),
		options.WithExposure(options.ExposureAll),
	)
	options.Declare(Namespace, "run_scoped",
		options.WithDefault(false),
		options.WithHelp("Nest artifact directories under a fresh run id"),
		options.WithHint(options.KindBool),
		options.WithExposure(options.ExposureAll),
	)
	options.Declare(Namespace, "no_color",
		options.WithDefault(false),
		options.WithHelp("Disable colored output"),
		options.WithHint(options.KindBool),
		options.WithExposure(options.ExposureCLI),
	)

	artifacts.SetRootOption(Namespace, "artifacts_dir")
}

// loadSettings reads the settings file named by --settings, if any, before
// commands resolve options against it.
func loadSettings(cmd *cobra.Command, args []string) error {
	if path := settingsPath(); path != "" {
		if err := settings.Load(path); err != nil {
			return err
		}
	}
	if noColor, _ := options.Resolve(Namespace, cfg, "no_color").(bool); noColor {
		color.NoColor = true
	}
	return nil
}

// settingsPath returns the --settings flag value, empty when unset. Read
// straight from the flag store: the settings file cannot name itself.
func settingsPath() string {
	v, ok := cfg.Option("settings")
	if !ok {
		return ""
	}
	path, _ := v.(string)
	return path
}

package cli

import (
	"fmt"

	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

/*
NewRootCommand builds the launcher command tree. Running the root command
launches the application for the bundle named by argv0; any arguments it is
given, such as the -psn_* argument Finder adds, are ignored. The bundles and
plan subcommands are diagnostics and never run anything.
*/
func NewRootCommand(
	version string,
	argv0 string,
	shell string,
	launchService ports.LaunchService,
	catalogProvider ports.BundleCatalogProvider,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "beastlauncher",
		Short: "beastlauncher starts the Java application of the bundle it lives in.",
		Long: `beastlauncher is the native executable inside the BEAST family of macOS
application bundles. It works out which bundle it was started from, finds the
directory the bundle is installed in and runs the bundled Java runtime with
that application's main class.`,
		Version:            version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if launchService == nil && (cmd.Name() == "beastlauncher" || cmd.Name() == "plan") {
				return fmt.Errorf("launch service not initialized for command %s", cmd.Name())
			}
			if catalogProvider == nil && cmd.Name() == "bundles" {
				return fmt.Errorf("bundle catalog not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchService.Launch(argv0)
		},
	}

	rootCmd.AddCommand(NewBundlesCommand(catalogProvider))
	rootCmd.AddCommand(NewPlanCommand(argv0, shell, launchService))

	return rootCmd
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"github.com/CompEvol/beastlauncher/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBundlesCommand creates the 'bundles' subcommand.
func NewBundlesCommand(catalogProvider ports.BundleCatalogProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "List the application bundles the launcher recognizes.",
		Long: `Displays the bundle table in priority order. The first bundle whose name
occurs in the launcher's invocation path is the one that gets started.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundlesCmd(cmd, args, catalogProvider)
		},
	}
	return cmd
}

// runBundlesCmd contains the core logic for the 'bundles' command.
func runBundlesCmd(
	cmd *cobra.Command,
	_ []string,
	catalogProvider ports.BundleCatalogProvider,
) error {
	catalog, err := catalogProvider.GetCatalog()
	if err != nil {
		return fmt.Errorf("could not load bundles: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Recognized bundles (first match wins):"))
	if src, ok := catalogProvider.(interface{ Source() string }); ok {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", src.Source())))
	}
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Runtime: <root>/%s/bin/java %s", catalog.Runtime, strings.Join(catalog.JVMFlags, " "))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Bundle", "Clause", "Main Class", "Args"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, b := range catalog.Bundles {
		kind, path := b.Clause()
		table.Append([]string{
			strconv.Itoa(i + 1),
			b.Name,
			kind.String() + " <root>" + path,
			b.MainClass,
			strings.Join(b.Args, " "),
		})
	}
	table.Render()
	return nil
}

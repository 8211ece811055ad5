package cli

import (
	"fmt"

	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"github.com/CompEvol/beastlauncher/internal/handlers/ui"
	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
)

// NewPlanCommand creates the 'plan' subcommand.
func NewPlanCommand(argv0, shell string, launchService ports.LaunchService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [PATH]",
		Short: "Show the command the launcher would run, without running it.",
		Long: `Identifies the bundle, derives the bundle root and prints the resulting
command line. PATH is treated as both argv[0] and the executable path; without
it the launcher's own invocation is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanCmd(cmd, args, argv0, shell, launchService)
		},
	}
	return cmd
}

func runPlanCmd(
	cmd *cobra.Command,
	args []string,
	argv0 string,
	shell string,
	launchService ports.LaunchService,
) error {
	var (
		plan launch.Plan
		err  error
	)
	if len(args) == 1 {
		plan, err = launchService.PlanFor(args[0], args[0])
	} else {
		plan, err = launchService.Plan(argv0)
	}
	if err != nil {
		return fmt.Errorf("could not plan launch: %w", err)
	}

	out := cmd.OutOrStdout()
	kind, _ := plan.Bundle.Clause()
	fmt.Fprintf(out, "%s %s\n", ui.LabelColor("Bundle:      "), ui.BundleNameColor(plan.Bundle.Name))
	fmt.Fprintf(out, "%s %s (%s)\n", ui.LabelColor("Main class:  "), ui.MainClassColor(plan.Bundle.MainClass), kind)
	fmt.Fprintf(out, "%s %s\n", ui.LabelColor("argv[0]:     "), plan.Argv0)
	fmt.Fprintf(out, "%s %s\n", ui.LabelColor("Executable:  "), plan.ExecutablePath)
	fmt.Fprintf(out, "%s %q\n", ui.LabelColor("Bundle root: "), plan.Root)
	fmt.Fprintf(out, "%s %s\n", ui.LabelColor("Escaped:     "), plan.EscapedRoot)
	fmt.Fprintln(out, ui.InfoColor("Command:"))
	fmt.Fprintf(out, "  %s\n", ui.CodeColor(plan.CommandLine))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Executed as: %s)", shellescape.QuoteCommand([]string{shell, "-c", plan.CommandLine}))))
	return nil
}

package ports

import "github.com/CompEvol/beastlauncher/internal/core/domain/launch"

// LaunchService defines the contract for starting the application a bundle belongs to.
type LaunchService interface {
	// Plan identifies the bundle named by argv0 and builds its command line
	// against the located executable path, without executing anything.
	Plan(argv0 string) (launch.Plan, error)

	// PlanFor is Plan with an explicit executable path instead of the located one.
	PlanFor(argv0, executablePath string) (launch.Plan, error)

	// Launch plans and then runs the command. A non-zero exit of the launched
	// command is returned as *launch.ExitError when exit codes are propagated.
	Launch(argv0 string) error
}

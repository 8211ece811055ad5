/*
Package launch holds the values that exist for a single run of the launcher:
the settings it was started with, the plan it derived and the errors it can
terminate with.
*/
package launch

import (
	"errors"
	"fmt"

	"github.com/CompEvol/beastlauncher/internal/core/domain/bundle"
)

// DefaultMaxPathLength is the longest executable path or bundle root accepted.
const DefaultMaxPathLength = 1024

var (
	// ErrBundleNotRecognized is returned when the invocation path names none of the known bundles.
	ErrBundleNotRecognized = errors.New("bundle not recognized")
	// ErrPathTooLong is returned when a path exceeds the configured maximum length.
	ErrPathTooLong = errors.New("path exceeds maximum supported length")
	// ErrArgv0TooLong is returned when argv[0] is longer than the executable path it should be a suffix of.
	ErrArgv0TooLong = errors.New("argv[0] is longer than the executable path")
)

// Settings controls how the launcher runs the command it builds.
type Settings struct {
	Shell             string
	CatalogPath       string // empty means the embedded table
	DiscardOutput     bool
	PropagateExitCode bool
	MaxPathLength     int
	Debug             bool
}

// DefaultSettings returns the settings used when the environment sets nothing.
func DefaultSettings() Settings {
	return Settings{
		Shell:             "/bin/sh",
		DiscardOutput:     true,
		PropagateExitCode: true,
		MaxPathLength:     DefaultMaxPathLength,
	}
}

// Plan is everything derived from the invocation path before anything is executed.
type Plan struct {
	Argv0          string
	ExecutablePath string
	Bundle         bundle.Bundle
	Root           string
	EscapedRoot    string
	CommandLine    string
}

// ExitError carries a non-zero exit status of the launched command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("launched command exited with status %d", e.Code)
}

/*
ExitCode maps an error returned from a launch to the process exit status:
0 for nil, the child's status for an ExitError and 1 for everything else.
*/
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

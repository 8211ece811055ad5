package ports

// CommandExecutor runs a single shell command line to completion.
type CommandExecutor interface {
	// Run executes commandLine through the shell and blocks until it exits.
	// A command that starts but exits non-zero is reported through exitCode
	// with a nil error; err is reserved for failing to run it at all.
	Run(commandLine string) (exitCode int, err error)
}

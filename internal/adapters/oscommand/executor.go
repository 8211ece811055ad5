package oscommand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"github.com/alessio/shellescape"
	"github.com/sirupsen/logrus"
)

// DefaultShell is the shell used when none is configured, matching system(3).
const DefaultShell = "/bin/sh"

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	shell   string
	discard bool
	stdout  io.Writer
	stdin   io.Reader
	stderr  io.Writer
	log     logrus.FieldLogger
}

// Option configures an OSCommandExecutor.
type Option func(*OSCommandExecutor)

// WithShell runs command lines with shell instead of DefaultShell.
func WithShell(shell string) Option {
	return func(e *OSCommandExecutor) {
		if shell != "" {
			e.shell = shell
		}
	}
}

// WithForwardedOutput copies the child's stdout to w instead of discarding it.
func WithForwardedOutput(w io.Writer) Option {
	return func(e *OSCommandExecutor) {
		if w != nil {
			e.discard = false
			e.stdout = w
		}
	}
}

// WithStdio replaces the stdin and stderr the child inherits.
func WithStdio(stdin io.Reader, stderr io.Writer) Option {
	return func(e *OSCommandExecutor) {
		e.stdin = stdin
		e.stderr = stderr
	}
}

// NewOSCommandExecutor creates a new OSCommandExecutor. By default the child's
// stdout is read to the end and thrown away, and stdin and stderr are inherited.
// It panics if log is nil.
func NewOSCommandExecutor(log logrus.FieldLogger, opts ...Option) ports.CommandExecutor {
	if log == nil {
		panic("log cannot be nil")
	}
	e := &OSCommandExecutor{
		shell:   DefaultShell,
		discard: true,
		stdin:   os.Stdin,
		stderr:  os.Stderr,
		log:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run implements the ports.CommandExecutor interface. It blocks until the
// child's stdout reaches EOF and the child has exited.
func (e *OSCommandExecutor) Run(commandLine string) (int, error) {
	cmd := exec.Command(e.shell, "-c", commandLine)
	cmd.Stdin = e.stdin
	cmd.Stderr = e.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("opening stdout of shell '%s': %w", e.shell, err)
	}

	e.log.Debugf("exec %s", shellescape.QuoteCommand(cmd.Args))
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting shell '%s': %w", e.shell, err)
	}

	drainErr := e.drain(stdout)

	// Wait closes stdout on every path.
	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case err != nil:
		return -1, fmt.Errorf("waiting for shell '%s': %w", e.shell, err)
	case drainErr != nil:
		e.log.WithError(drainErr).Warn("reading output of launched command")
	}
	return 0, nil
}

func (e *OSCommandExecutor) drain(r io.Reader) error {
	discard := e.discard
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 && !discard {
			if _, werr := io.WriteString(e.stdout, line); werr != nil {
				// The child still needs its pipe drained.
				discard = true
				e.log.WithError(werr).Warn("forwarding output of launched command; discarding the rest")
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			_, _ = io.Copy(io.Discard, r)
			return err
		}
	}
}

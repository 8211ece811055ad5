package testutil

import (
	"errors"

	"github.com/CompEvol/beastlauncher/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Calls records every command line passed to Run.
type MockCommandExecutor struct {
	RunFunc func(commandLine string) (exitCode int, err error)
	Calls   []string
}

// Run calls the mock RunFunc.
func (m *MockCommandExecutor) Run(commandLine string) (int, error) {
	m.Calls = append(m.Calls, commandLine)
	if m.RunFunc != nil {
		return m.RunFunc(commandLine)
	}
	return 0, errors.New("MockCommandExecutor.RunFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)

package testutil

import "github.com/CompEvol/beastlauncher/internal/core/ports"

// MockExecutableLocator is a mock implementation of ports.ExecutableLocator.
type MockExecutableLocator struct {
	LocateFunc func() (string, error)
}

// Locate mocks the Locate method.
func (m *MockExecutableLocator) Locate() (string, error) {
	if m.LocateFunc != nil {
		return m.LocateFunc()
	}
	return "", nil // Default behavior
}

var _ ports.ExecutableLocator = (*MockExecutableLocator)(nil)

package testutil

import (
	"errors"

	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
	"github.com/CompEvol/beastlauncher/internal/core/ports"
)

// MockLaunchService is a mock implementation of ports.LaunchService.
type MockLaunchService struct {
	PlanFunc    func(argv0 string) (launch.Plan, error)
	PlanForFunc func(argv0, executablePath string) (launch.Plan, error)
	LaunchFunc  func(argv0 string) error
}

// Plan calls the mock PlanFunc.
func (m *MockLaunchService) Plan(argv0 string) (launch.Plan, error) {
	if m.PlanFunc != nil {
		return m.PlanFunc(argv0)
	}
	return launch.Plan{}, errors.New("MockLaunchService.PlanFunc not implemented")
}

// PlanFor calls the mock PlanForFunc.
func (m *MockLaunchService) PlanFor(argv0, executablePath string) (launch.Plan, error) {
	if m.PlanForFunc != nil {
		return m.PlanForFunc(argv0, executablePath)
	}
	return launch.Plan{}, errors.New("MockLaunchService.PlanForFunc not implemented")
}

// Launch calls the mock LaunchFunc.
func (m *MockLaunchService) Launch(argv0 string) error {
	if m.LaunchFunc != nil {
		return m.LaunchFunc(argv0)
	}
	return errors.New("MockLaunchService.LaunchFunc not implemented")
}

var _ ports.LaunchService = (*MockLaunchService)(nil)

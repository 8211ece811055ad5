package launcher

import (
	"fmt"
	"strings"

	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type service struct {
	catalogProvider ports.BundleCatalogProvider
	locator         ports.ExecutableLocator
	executor        ports.CommandExecutor
	settings        launch.Settings
	log             logrus.FieldLogger
}

// NewService creates a new launch service.
// It panics if catalogProvider, locator, executor or log are nil.
func NewService(
	cp ports.BundleCatalogProvider,
	loc ports.ExecutableLocator,
	exec ports.CommandExecutor,
	settings launch.Settings,
	log logrus.FieldLogger,
) ports.LaunchService {
	if cp == nil {
		panic("catalogProvider cannot be nil")
	}
	if loc == nil {
		panic("locator cannot be nil")
	}
	if exec == nil {
		panic("executor cannot be nil")
	}
	if log == nil {
		panic("log cannot be nil")
	}
	if settings.MaxPathLength <= 0 {
		settings.MaxPathLength = launch.DefaultMaxPathLength
	}
	return &service{
		catalogProvider: cp,
		locator:         loc,
		executor:        exec,
		settings:        settings,
		log:             log,
	}
}

// Plan implements the ports.LaunchService interface.
func (s *service) Plan(argv0 string) (launch.Plan, error) {
	executablePath, err := s.locator.Locate()
	if err != nil {
		return launch.Plan{}, fmt.Errorf("failed to locate running executable: %w", err)
	}
	return s.PlanFor(argv0, executablePath)
}

// PlanFor implements the ports.LaunchService interface.
func (s *service) PlanFor(argv0, executablePath string) (launch.Plan, error) {
	catalog, err := s.catalogProvider.GetCatalog()
	if err != nil {
		return launch.Plan{}, fmt.Errorf("failed to load bundle catalog: %w", err)
	}

	b, at, err := IdentifyBundle(catalog, argv0)
	if err != nil {
		return launch.Plan{}, err
	}

	suffix := argv0[at:]
	if !strings.HasSuffix(executablePath, suffix) {
		s.log.WithFields(logrus.Fields{
			"argv0":      argv0,
			"executable": executablePath,
		}).Warn("argv[0] is not a suffix of the executable path; bundle root may be wrong")
	}

	root, err := BundleRoot(executablePath, suffix, s.settings.MaxPathLength)
	if err != nil {
		return launch.Plan{}, err
	}
	escapedRoot, err := EscapeRoot(root, s.settings.MaxPathLength)
	if err != nil {
		return launch.Plan{}, err
	}

	return launch.Plan{
		Argv0:          argv0,
		ExecutablePath: executablePath,
		Bundle:         b,
		Root:           root,
		EscapedRoot:    escapedRoot,
		CommandLine:    BuildCommand(catalog, b, escapedRoot),
	}, nil
}

// Launch implements the ports.LaunchService interface.
func (s *service) Launch(argv0 string) error {
	plan, err := s.Plan(argv0)
	if err != nil {
		return err
	}

	log := s.log.WithField("bundle", plan.Bundle.Name)
	log.WithField("root", plan.Root).Debugf("launching %s", plan.Bundle.MainClass)
	log.Debug(plan.CommandLine)

	code, err := s.executor.Run(plan.CommandLine)
	if err != nil {
		return fmt.Errorf("failed to launch %s: %w", plan.Bundle.Name, err)
	}
	if code != 0 {
		log.WithField("status", code).Warn("launched command exited with non-zero status")
		if s.settings.PropagateExitCode {
			return &launch.ExitError{Code: code}
		}
	}
	return nil
}

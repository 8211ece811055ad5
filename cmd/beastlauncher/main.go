package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/CompEvol/beastlauncher/internal/adapters/bundlecatalog"
	"github.com/CompEvol/beastlauncher/internal/adapters/oscommand"
	"github.com/CompEvol/beastlauncher/internal/adapters/selfpath"
	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
	"github.com/CompEvol/beastlauncher/internal/core/services/launcher"
	"github.com/CompEvol/beastlauncher/internal/handlers/cli"
	"github.com/CompEvol/beastlauncher/internal/handlers/ui"
	"github.com/CompEvol/beastlauncher/internal/repositories/settings"
	"github.com/sirupsen/logrus"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	conf, err := settings.Load(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error reading launcher settings: %v", err)))
		return 1
	}

	logger := newLogger(conf.Debug)

	catalogProvider := bundlecatalog.NewYAMLProvider(conf.CatalogPath)

	execOpts := []oscommand.Option{oscommand.WithShell(conf.Shell)}
	if !conf.DiscardOutput {
		execOpts = append(execOpts, oscommand.WithForwardedOutput(os.Stdout))
	}
	cmdExec := oscommand.NewOSCommandExecutor(logger, execOpts...)

	launchSvc := launcher.NewService(catalogProvider, selfpath.NewOSExecutableLocator(), cmdExec, conf, logger)
	rootCmd := cli.NewRootCommand(Version, os.Args[0], conf.Shell, launchSvc, catalogProvider)

	if err := rootCmd.Execute(); err != nil {
		// The service has already logged the child's status.
		var exitErr *launch.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		}
		return launch.ExitCode(err)
	}
	return 0
}

func newLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02 15:04:05",
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

/*
Package settings reads the launcher's runtime settings from the environment.
Every variable is optional; unset variables keep launch.DefaultSettings.
*/
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
)

// Environment variables understood by Load.
const (
	EnvShell         = "BEAST_LAUNCHER_SHELL"
	EnvCatalog       = "BEAST_LAUNCHER_CATALOG"
	EnvForwardOutput = "BEAST_LAUNCHER_FORWARD_OUTPUT"
	EnvIgnoreExit    = "BEAST_LAUNCHER_IGNORE_EXIT"
	EnvMaxPath       = "BEAST_LAUNCHER_MAX_PATH"
	EnvDebug         = "BEAST_LAUNCHER_DEBUG"
)

// Load builds Settings from getenv, usually os.Getenv.
func Load(getenv func(string) string) (launch.Settings, error) {
	s := launch.DefaultSettings()

	if v := strings.TrimSpace(getenv(EnvShell)); v != "" {
		s.Shell = v
	}
	s.CatalogPath = strings.TrimSpace(getenv(EnvCatalog))

	forward, err := parseBool(getenv, EnvForwardOutput)
	if err != nil {
		return launch.Settings{}, err
	}
	s.DiscardOutput = !forward

	ignoreExit, err := parseBool(getenv, EnvIgnoreExit)
	if err != nil {
		return launch.Settings{}, err
	}
	s.PropagateExitCode = !ignoreExit

	if s.Debug, err = parseBool(getenv, EnvDebug); err != nil {
		return launch.Settings{}, err
	}

	if v := strings.TrimSpace(getenv(EnvMaxPath)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return launch.Settings{}, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxPath, v)
		}
		s.MaxPathLength = n
	}

	return s, nil
}

func parseBool(getenv func(string) string, key string) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q: %w", key, v, err)
	}
	return b, nil
}

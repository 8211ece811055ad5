// Package selfpath locates the executable of the running process.
package selfpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CompEvol/beastlauncher/internal/core/ports"
)

// OSExecutableLocator implements ports.ExecutableLocator with os.Executable,
// which on macOS reads the path the kernel recorded for the image rather than
// argv[0]. Symlinks are not resolved: the bundle root is derived by
// stripping argv[0] from the end of this path.
type OSExecutableLocator struct {
	executable func() (string, error)
}

// NewOSExecutableLocator creates a new OSExecutableLocator.
func NewOSExecutableLocator() ports.ExecutableLocator {
	return &OSExecutableLocator{executable: os.Executable}
}

// Locate implements the ports.ExecutableLocator interface.
func (l *OSExecutableLocator) Locate() (string, error) {
	path, err := l.executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("executable path %q is not absolute", path)
	}
	return path, nil
}

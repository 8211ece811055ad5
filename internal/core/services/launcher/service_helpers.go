package launcher

import (
	"fmt"
	"strings"

	"github.com/CompEvol/beastlauncher/internal/core/domain/bundle"
	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
)

/*
IdentifyBundle returns the first bundle in catalog order whose name occurs in
argv0, together with the byte offset where the name starts.

Example:

	b, at, err := IdentifyBundle(catalog, "/Applications/BEAST.app/Contents/MacOS/BEAST")
	// b.Name == "BEAST.app", at == 14
*/
func IdentifyBundle(catalog bundle.Catalog, argv0 string) (bundle.Bundle, int, error) {
	for _, b := range catalog.Bundles {
		if b.Name == "" {
			continue
		}
		if at := strings.Index(argv0, b.Name); at >= 0 {
			return b, at, nil
		}
	}
	return bundle.Bundle{}, -1, fmt.Errorf("%w: %q names none of %s", launch.ErrBundleNotRecognized, argv0, strings.Join(catalog.Names(), ", "))
}

/*
BundleRoot removes the trailing len(argv0Suffix) bytes from executablePath.
argv0Suffix is argv[0] starting at the matched bundle name, so for a normal
launch the result is the directory that contains the bundle, with its
trailing slash.
*/
func BundleRoot(executablePath, argv0Suffix string, maxLen int) (string, error) {
	if len(executablePath) > maxLen {
		return "", fmt.Errorf("%w: executable path is %d bytes, limit %d", launch.ErrPathTooLong, len(executablePath), maxLen)
	}
	if len(argv0Suffix) > len(executablePath) {
		return "", fmt.Errorf("%w: %q does not fit in %q", launch.ErrArgv0TooLong, argv0Suffix, executablePath)
	}
	return executablePath[:len(executablePath)-len(argv0Suffix)], nil
}

// EscapeSpaces puts a backslash in front of every space in s.
func EscapeSpaces(s string) string {
	n := strings.Count(s, " ")
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + n)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeRoot escapes root for the shell and rejects results longer than maxLen.
func EscapeRoot(root string, maxLen int) (string, error) {
	escaped := EscapeSpaces(root)
	if len(escaped) > maxLen {
		return "", fmt.Errorf("%w: escaped bundle root is %d bytes, limit %d", launch.ErrPathTooLong, len(escaped), maxLen)
	}
	return escaped, nil
}

/*
BuildCommand fills the shared template with the row for b:

	<root>/<runtime>/bin/java <jvm flags> -cp|-jar <root><path> <main class> [args]

escapedRoot is substituted verbatim, so it must already be shell safe.
*/
func BuildCommand(catalog bundle.Catalog, b bundle.Bundle, escapedRoot string) string {
	kind, path := b.Clause()

	parts := make([]string, 0, len(catalog.JVMFlags)+len(b.Args)+4)
	parts = append(parts, escapedRoot+"/"+catalog.Runtime+"/bin/java")
	parts = append(parts, catalog.JVMFlags...)
	parts = append(parts, kind.String(), escapedRoot+path)
	parts = append(parts, b.MainClass)
	parts = append(parts, b.Args...)
	return strings.Join(parts, " ")
}

/*
Package bundle defines the configuration table that maps a macOS application
bundle name to the Java invocation used to start it.
*/
package bundle

import "fmt"

// ClauseKind selects how the application code is put on the JVM command line.
type ClauseKind int

const (
	// ClassPath starts the main class from a classpath entry (-cp).
	ClassPath ClauseKind = iota
	// Jar starts an executable jar (-jar).
	Jar
)

func (k ClauseKind) String() string {
	switch k {
	case ClassPath:
		return "-cp"
	case Jar:
		return "-jar"
	default:
		return fmt.Sprintf("ClauseKind(%d)", int(k))
	}
}

/*
Bundle is one row of the configuration table. Exactly one of ClassPath and Jar
is set; both are relative to the bundle root.
*/
type Bundle struct {
	Name      string   `yaml:"name"`
	ClassPath string   `yaml:"classpath,omitempty"`
	Jar       string   `yaml:"jar,omitempty"`
	MainClass string   `yaml:"main_class"`
	Args      []string `yaml:"args,omitempty"`
}

// Clause reports which kind of clause the bundle uses and its root-relative path.
func (b Bundle) Clause() (ClauseKind, string) {
	if b.Jar != "" {
		return Jar, b.Jar
	}
	return ClassPath, b.ClassPath
}

/*
Catalog is the complete table. Bundles are kept in priority order: when more
than one name could match an invocation path, the earlier one wins.
*/
type Catalog struct {
	Runtime  string   `yaml:"runtime"`
	JVMFlags []string `yaml:"jvm_flags"`
	Bundles  []Bundle `yaml:"bundles"`
}

// Names returns the bundle names in priority order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Bundles))
	for _, b := range c.Bundles {
		names = append(names, b.Name)
	}
	return names
}

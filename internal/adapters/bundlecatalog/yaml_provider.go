package bundlecatalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CompEvol/beastlauncher/internal/core/domain/bundle"
	"github.com/CompEvol/beastlauncher/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed bundles.yaml
var embeddedCatalog []byte

// EmbeddedSource is reported by Source when no override file is configured.
const EmbeddedSource = "embedded bundles.yaml"

// YAMLProvider implements the BundleCatalogProvider interface
// by decoding the bundle table from YAML.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath overrides the embedded table; an empty path selects the embedded one.
func NewYAMLProvider(filePath string) ports.BundleCatalogProvider {
	return &YAMLProvider{filePath: filePath}
}

// Source describes where the table is read from, for display.
func (p *YAMLProvider) Source() string {
	if p.filePath == "" {
		return EmbeddedSource
	}
	return p.filePath
}

// GetCatalog reads, decodes and validates the table.
func (p *YAMLProvider) GetCatalog() (bundle.Catalog, error) {
	data := embeddedCatalog
	if p.filePath != "" {
		var err error
		data, err = os.ReadFile(p.filePath)
		if err != nil {
			return bundle.Catalog{}, fmt.Errorf("failed to read bundle catalog %s: %w", p.filePath, err)
		}
	}

	var catalog bundle.Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&catalog); err != nil {
		// An empty document decodes to io.EOF; a table with no bundles is rejected below.
		if !errors.Is(err, io.EOF) {
			return bundle.Catalog{}, fmt.Errorf("failed to unmarshal bundle catalog from %s: %w", p.Source(), err)
		}
	}

	if err := validate(catalog); err != nil {
		return bundle.Catalog{}, fmt.Errorf("invalid bundle catalog in %s: %w", p.Source(), err)
	}
	return catalog, nil
}

func validate(c bundle.Catalog) error {
	if c.Runtime == "" {
		return errors.New("runtime must be set")
	}
	if len(c.Bundles) == 0 {
		return errors.New("no bundles defined")
	}

	seen := make(map[string]bool, len(c.Bundles))
	for i, b := range c.Bundles {
		switch {
		case b.Name == "":
			return fmt.Errorf("bundle %d: name must be set", i)
		case !strings.HasSuffix(b.Name, ".app"):
			return fmt.Errorf("bundle %s: name must end in .app", b.Name)
		case seen[b.Name]:
			return fmt.Errorf("bundle %s: defined more than once", b.Name)
		case b.MainClass == "":
			return fmt.Errorf("bundle %s: main_class must be set", b.Name)
		case (b.ClassPath == "") == (b.Jar == ""):
			return fmt.Errorf("bundle %s: exactly one of classpath and jar must be set", b.Name)
		}
		seen[b.Name] = true
	}
	return nil
}

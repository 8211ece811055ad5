package ports

import "github.com/CompEvol/beastlauncher/internal/core/domain/bundle"

// BundleCatalogProvider defines the interface for sourcing the bundle
// configuration table, like an embedded document or a configuration file.
type BundleCatalogProvider interface {
	// GetCatalog loads and validates the table.
	GetCatalog() (bundle.Catalog, error)
}

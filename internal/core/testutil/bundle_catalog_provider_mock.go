package testutil

import (
	"github.com/CompEvol/beastlauncher/internal/core/domain/bundle"
	"github.com/CompEvol/beastlauncher/internal/core/ports"
)

// MockBundleCatalogProvider is a mock implementation of ports.BundleCatalogProvider.
type MockBundleCatalogProvider struct {
	GetCatalogFunc func() (bundle.Catalog, error)
}

// GetCatalog calls GetCatalogFunc, or returns DefaultCatalog when it is unset.
func (m *MockBundleCatalogProvider) GetCatalog() (bundle.Catalog, error) {
	if m.GetCatalogFunc != nil {
		return m.GetCatalogFunc()
	}
	return DefaultCatalog(), nil
}

var _ ports.BundleCatalogProvider = (*MockBundleCatalogProvider)(nil)

// DefaultCatalog mirrors the shipped table so service tests do not depend on the YAML adapter.
func DefaultCatalog() bundle.Catalog {
	return bundle.Catalog{
		Runtime: "jre1.8.0_161",
		JVMFlags: []string{
			"-Xmx4g",
			"-Dapple.laf.useScreenMenuBar=true",
			"-Djava.library.path=$JAVAROOT:/usr/local/lib",
			"-Duser.language=en",
		},
		Bundles: []bundle.Bundle{
			{Name: "AppLauncher.app", ClassPath: "lib/launcher.jar", MainClass: "beast.app.tools.AppLauncherLauncher"},
			{Name: "BEAST.app", ClassPath: "lib/launcher.jar", MainClass: "beast.app.beastapp.BeastLauncher", Args: []string{"-window", "-options", "-working"}},
			{Name: "DensiTree.app", Jar: "DensiTree.app/Contents/Java/DensiTree.jar", MainClass: "viz.DensiTree"},
			{Name: "LogCombiner.app", ClassPath: "lib/launcher.jar", MainClass: "beast.app.tools.LogCombinerLauncher"},
			{Name: "TreeAnnotator.app", ClassPath: "lib/launcher.jar", MainClass: "beast.app.treeannotator.TreeAnnotatorLauncher"},
			{Name: "BEAUti.app", ClassPath: "lib/launcher.jar", MainClass: "beast.app.beauti.BeautiLauncher", Args: []string{"-capture"}},
		},
	}
}

package domain

// ManifestLoader resolves and parses a Cargo manifest
type ManifestLoader interface {
	// Locate resolves root (empty, file or directory) to a manifest path
	Locate(root string) (string, error)
	// Load reads and parses the manifest at path
	Load(path string) (*Package, error)
}

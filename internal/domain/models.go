package domain

// Package holds the [package] table of a Cargo manifest.
// Optional scalars are nil when absent; lists are nil when absent and
// empty (non-nil) when declared as [].
type Package struct {
	Name        string
	Version     string
	Authors     []string
	Edition     *string
	Homepage    *string
	Keywords    []string
	License     *string
	Links       *string
	Description *string
	Categories  []string

	// Inherited holds the keys declared as `{ workspace = true }`
	Inherited map[string]bool
}

// IsInherited reports whether key takes its value from the workspace
func (p *Package) IsInherited(key string) bool {
	return p.Inherited[key]
}

// VersionParts selects which parts of the package version are printed
type VersionParts struct {
	Major  bool
	Minor  bool
	Patch  bool
	Pre    bool
	Build  bool
	Pretty bool
	Full   bool
}

// Any reports whether at least one semver part was requested
func (v VersionParts) Any() bool {
	return v.Major || v.Minor || v.Patch || v.Pre || v.Build
}

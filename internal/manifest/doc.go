// Package manifest locates and parses Cargo manifests (Cargo.toml).
// Only the [package] table is decoded; every other section is ignored.
//
// # Locating
//
// A root argument may be empty (current directory), a directory, or a file:
//
//	locator := manifest.NewLocator(manifest.LocatorOptions{})
//	path, err := locator.Locate("../other")
//	// path == "../other/Cargo.toml"
//
// With SearchParents enabled, a directory without a manifest is searched
// upwards until a manifest is found or the filesystem root is reached.
//
// # Parsing
//
//	loader := manifest.NewLoader(manifest.LoaderOptions{})
//	pkg, err := loader.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pkg.Name)
//
// Absent optional values stay nil so that an absent list and an empty list
// can be told apart. Keys written as `{ workspace = true }` are recorded in
// Package.Inherited instead of failing the parse.
//
// # Error Handling
//
// Failures wrap the sentinels from the domain package:
//   - domain.ErrNotFound: the resolved path does not exist
//   - domain.ErrUnreadable: the path exists but cannot be read
//   - domain.ErrMalformedManifest: the content is not valid TOML
//   - domain.ErrSchemaMismatch: the [package] table or a required key is missing,
//     or a known key has the wrong type
package manifest

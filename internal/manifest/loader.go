package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quantmind-br/cargo-get/internal/domain"
	"github.com/quantmind-br/cargo-get/internal/utils"
)

// Loader locates, reads and parses Cargo manifests
type Loader struct {
	locator *Locator
	logger  *utils.Logger
}

// LoaderOptions contains options for the loader
type LoaderOptions struct {
	LocatorOptions
}

// NewLoader creates a new manifest loader
func NewLoader(opts LoaderOptions) *Loader {
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Loader{
		locator: NewLocator(opts.LocatorOptions),
		logger:  opts.Logger.WithComponent("parser"),
	}
}

// Locate resolves root to a manifest path
func (l *Loader) Locate(root string) (string, error) {
	return l.locator.Locate(root)
}

// Load reads and parses the manifest at path
func (l *Loader) Load(path string) (*domain.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewManifestError(path, domain.ErrNotFound)
		}
		return nil, domain.NewManifestError(path, fmt.Errorf("%w: %v", domain.ErrUnreadable, err))
	}

	pkg, err := Parse(data)
	if err != nil {
		return nil, domain.NewManifestError(path, err)
	}

	l.logger.WithPath(path).Debug().
		Str("name", pkg.Name).
		Int("inherited", len(pkg.Inherited)).
		Msg("Parsed manifest")

	return pkg, nil
}

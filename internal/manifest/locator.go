package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quantmind-br/cargo-get/internal/domain"
	"github.com/quantmind-br/cargo-get/internal/utils"
)

// DefaultFilename is the manifest file looked up inside directories
const DefaultFilename = "Cargo.toml"

// Locator resolves a user supplied root to a manifest path
type Locator struct {
	filename      string
	searchParents bool
	getwd         func() (string, error)
	logger        *utils.Logger
}

// LocatorOptions contains options for the locator
type LocatorOptions struct {
	Filename      string
	SearchParents bool
	Getwd         func() (string, error)
	Logger        *utils.Logger
}

// NewLocator creates a new manifest locator
func NewLocator(opts LocatorOptions) *Locator {
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Locator{
		filename:      opts.Filename,
		searchParents: opts.SearchParents,
		getwd:         opts.Getwd,
		logger:        opts.Logger.WithComponent("locator"),
	}
}

// Locate returns the manifest path for root.
// An empty root means the current working directory; a directory gets the
// manifest filename appended; a file is returned verbatim.
func (l *Locator) Locate(root string) (string, error) {
	if root == "" {
		wd, err := l.getwd()
		if err != nil {
			return "", fmt.Errorf("%w: cannot determine working directory: %v", domain.ErrUnreadable, err)
		}
		l.logger.Debug().Str("dir", wd).Msg("No root given, using working directory")
		return l.inDir(wd)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", statError(root, err)
	}

	if info.IsDir() {
		return l.inDir(root)
	}
	if !info.Mode().IsRegular() {
		return "", domain.NewManifestError(root, fmt.Errorf("%w: not a regular file", domain.ErrUnreadable))
	}

	l.logger.Debug().Str("path", root).Msg("Using manifest file")
	return root, nil
}

// inDir looks for the manifest inside dir, walking up when searchParents is set
func (l *Locator) inDir(dir string) (string, error) {
	first := filepath.Join(dir, l.filename)

	current := dir
	for {
		candidate := filepath.Join(current, l.filename)
		info, err := os.Stat(candidate)
		switch {
		case err == nil:
			if !info.Mode().IsRegular() {
				return "", domain.NewManifestError(candidate, fmt.Errorf("%w: not a regular file", domain.ErrUnreadable))
			}
			l.logger.Debug().Str("path", candidate).Msg("Found manifest")
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", statError(candidate, err)
		}

		if !l.searchParents {
			break
		}

		abs, err := filepath.Abs(current)
		if err != nil {
			break
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		l.logger.Debug().Str("dir", parent).Msg("Manifest not found, searching parent")
		current = parent
	}

	return "", domain.NewManifestError(first, domain.ErrNotFound)
}

// statError classifies an os.Stat failure
func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewManifestError(path, domain.ErrNotFound)
	}
	return domain.NewManifestError(path, fmt.Errorf("%w: %v", domain.ErrUnreadable, err))
}

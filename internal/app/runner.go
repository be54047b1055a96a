package app

import (
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/cargo-get/internal/domain"
	"github.com/quantmind-br/cargo-get/internal/query"
	"github.com/quantmind-br/cargo-get/internal/utils"
)

// Runner executes a single query: locate, load, format, print
type Runner struct {
	loader domain.ManifestLoader
	out    io.Writer
	logger *utils.Logger
}

// RunnerOptions contains options for creating a runner
type RunnerOptions struct {
	Loader domain.ManifestLoader
	Output io.Writer
	Logger *utils.Logger
}

// Request describes one invocation
type Request struct {
	Root         string
	Field        domain.Field
	Delimiter    string
	VersionParts domain.VersionParts
}

// NewRunner creates a new runner with the given options
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("manifest loader is required")
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Runner{
		loader: opts.Loader,
		out:    opts.Output,
		logger: opts.Logger.WithComponent("runner"),
	}, nil
}

// Run resolves the manifest, renders the requested field and writes it
// followed by a newline. Nothing is written when any step fails.
func (r *Runner) Run(req Request) error {
	if _, ok := req.Field.Spec(); !ok {
		return fmt.Errorf("%w: no field selected", domain.ErrInvalidSelection)
	}
	log := r.logger.WithField(req.Field.String())

	path, err := r.loader.Locate(req.Root)
	if err != nil {
		return err
	}
	log.Debug().Str("root", req.Root).Str("path", path).Msg("Resolved manifest")

	pkg, err := r.loader.Load(path)
	if err != nil {
		return err
	}

	value, err := r.render(pkg, req)
	if err != nil {
		return err
	}

	log.Debug().Int("bytes", len(value)).Msg("Writing result")
	if _, err := fmt.Fprintln(r.out, value); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) render(pkg *domain.Package, req Request) (string, error) {
	if req.Field == domain.FieldVersion {
		return query.FormatVersion(pkg, req.VersionParts, req.Delimiter)
	}
	return query.Format(pkg, req.Field, req.Delimiter)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/cargo-get/internal/app"
	"github.com/quantmind-br/cargo-get/internal/config"
	"github.com/quantmind-br/cargo-get/internal/domain"
	"github.com/quantmind-br/cargo-get/internal/manifest"
	"github.com/quantmind-br/cargo-get/internal/query"
	"github.com/quantmind-br/cargo-get/internal/utils"
	"github.com/quantmind-br/cargo-get/pkg/version"
)

var (
	// Dependencies for testing
	osGetwd = os.Getwd
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(stripGet(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return domain.ExitCodeForError(err)
	}
	return domain.ExitSuccess
}

// stripGet drops a leading "get" so the binary also works as `cargo get ...`
func stripGet(args []string) []string {
	if len(args) > 0 && args[0] == "get" {
		args = args[1:]
	}
	if args == nil {
		args = []string{}
	}
	return args
}

// options holds the parsed command line of one invocation
type options struct {
	cfgFile string
	root    string
	verbose bool
	fields  map[domain.Field]*bool
	parts   domain.VersionParts
}

// selectedField returns the single field chosen with the field flags
func (o *options) selectedField() (domain.Field, error) {
	var selected []string
	field := domain.FieldNone

	for _, spec := range domain.Fields() {
		if set := o.fields[spec.Field]; set != nil && *set {
			selected = append(selected, "--"+spec.Key)
			field = spec.Field
		}
	}

	switch len(selected) {
	case 1:
		return field, nil
	case 0:
		return domain.FieldNone, fmt.Errorf("%w: no field flag given (see --help)", domain.ErrInvalidSelection)
	default:
		return domain.FieldNone, fmt.Errorf("%w: got %s", domain.ErrInvalidSelection, strings.Join(selected, ", "))
	}
}

// validateParts rejects --full or --pretty combined with any other part flag
func (o *options) validateParts() error {
	p := o.parts
	if p.Full && p.Pretty {
		return fmt.Errorf("%w: --full and --pretty cannot be combined", domain.ErrUsage)
	}
	if (p.Full || p.Pretty) && p.Any() {
		return fmt.Errorf("%w: --full and --pretty cannot be combined with part flags", domain.ErrUsage)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &options{fields: make(map[domain.Field]*bool)}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "cargo-get",
		Short: "Query package info from Cargo.toml in a script-friendly way",
		Long: `cargo-get reads a Cargo manifest and prints exactly one field of its
[package] table to standard output. Lists (authors, keywords, categories) are
joined with the delimiter, a newline by default.

Examples:
  cargo-get --version
  cargo-get --keywords --delimiter=";"
  cargo-get --name --root=../other/Cargo.toml
  cargo-get version --major --minor --delimiter=.

Exit Codes:
  0 - Success
  1 - General error
  2 - Usage error (no field, several fields, bad flags)
  3 - Manifest not found
  4 - Manifest unreadable
  5 - Malformed manifest
  6 - Missing [package] table or required key, or wrong value type
  7 - Field is inherited from the workspace
  8 - Version is not valid semver`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := opts.selectedField()
			if err != nil {
				return err
			}
			return execute(cmd, v, opts, field)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	})

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.cargo-get/config.yaml)")
	pf.StringVar(&opts.root, "root", "", "optional entry point: manifest file or directory")
	pf.String("delimiter", "", "delimiter for values: Tab | CR | LF | CRLF | <string> (default LF)")
	pf.Bool("search-parents", false, "search parent directories for the manifest")
	pf.BoolVar(&opts.verbose, "verbose", false, "Verbose output on stderr")

	// Bind flags to viper
	_ = v.BindPFlag("delimiter", pf.Lookup("delimiter"))
	_ = v.BindPFlag("manifest.search_parents", pf.Lookup("search-parents"))

	// Field flags
	for _, spec := range domain.Fields() {
		opts.fields[spec.Field] = rootCmd.Flags().BoolP(spec.Key, spec.Short, false, spec.Help)
	}

	// Add subcommands
	for _, c := range newFieldCmds(v, opts) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(newAboutCmd())

	return rootCmd
}

// newFieldCmds creates one `package.<field>` subcommand per field
func newFieldCmds(v *viper.Viper, opts *options) []*cobra.Command {
	var cmds []*cobra.Command

	for _, spec := range domain.Fields() {
		field := spec.Field
		c := &cobra.Command{
			Use:   "package." + spec.Key,
			Short: spec.Help,
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.validateParts(); err != nil {
					return err
				}
				return execute(cmd, v, opts, field)
			},
		}

		if field == domain.FieldVersion {
			c.Aliases = []string{"version"}
			f := c.Flags()
			f.BoolVar(&opts.parts.Full, "full", false, "get full version")
			f.BoolVar(&opts.parts.Pretty, "pretty", false, "get pretty version eg. v1.2.3")
			f.BoolVar(&opts.parts.Major, "major", false, "get major part")
			f.BoolVar(&opts.parts.Minor, "minor", false, "get minor part")
			f.BoolVar(&opts.parts.Patch, "patch", false, "get patch part")
			f.BoolVar(&opts.parts.Build, "build", false, "get build part")
			f.BoolVar(&opts.parts.Pre, "pre", false, "get pre-release part")
			_ = f.MarkHidden("full")
		}

		cmds = append(cmds, c)
	}

	return cmds
}

func newAboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Print build information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

// noArgs rejects positional arguments as a usage error
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q for %q", domain.ErrUsage, args[0], cmd.CommandPath())
	}
	return nil
}

// execute loads configuration and runs the query for field
func execute(cmd *cobra.Command, v *viper.Viper, opts *options, field domain.Field) error {
	cfg, err := config.Load(v, utils.ExpandPath(opts.cfgFile))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	})

	loader := manifest.NewLoader(manifest.LoaderOptions{
		LocatorOptions: manifest.LocatorOptions{
			Filename:      cfg.Manifest.Filename,
			SearchParents: cfg.Manifest.SearchParents,
			Getwd:         osGetwd,
			Logger:        log,
		},
	})

	runner, err := app.NewRunner(app.RunnerOptions{
		Loader: loader,
		Output: cmd.OutOrStdout(),
		Logger: log,
	})
	if err != nil {
		return err
	}

	return runner.Run(app.Request{
		Root:         utils.ExpandPath(opts.root),
		Field:        field,
		Delimiter:    query.ParseDelimiter(cfg.Delimiter),
		VersionParts: opts.parts,
	})
}

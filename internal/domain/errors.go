package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidSelection indicates zero or more than one field was selected
	ErrInvalidSelection = errors.New("exactly one field must be selected")

	// ErrUsage indicates the command line could not be parsed
	ErrUsage = errors.New("invalid usage")

	// ErrNotFound indicates the resolved manifest path does not exist
	ErrNotFound = errors.New("manifest not found")

	// ErrUnreadable indicates the manifest path exists but cannot be opened
	ErrUnreadable = errors.New("manifest unreadable")

	// ErrMalformedManifest indicates the content is not valid TOML
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrSchemaMismatch indicates valid TOML without the expected package structure
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInheritedValue indicates the field is declared as `{ workspace = true }`
	ErrInheritedValue = errors.New("value is inherited from the workspace")

	// ErrInvalidSemver indicates the version could not be split into semver parts
	ErrInvalidSemver = errors.New("invalid semver")
)

// Exit codes returned by the CLI
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitUsageError     = 2
	ExitNotFound       = 3
	ExitUnreadable     = 4
	ExitMalformed      = 5
	ExitSchemaMismatch = 6
	ExitInheritedValue = 7
	ExitInvalidSemver  = 8
)

// ManifestError ties a manifest failure to the file it came from
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a new ManifestError
func NewManifestError(path string, err error) *ManifestError {
	return &ManifestError{
		Path: path,
		Err:  err,
	}
}

// FieldError reports a problem with a single package key
type FieldError struct {
	Key     string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("package.%s: %s", e.Key, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewSchemaError creates a FieldError classified as ErrSchemaMismatch
func NewSchemaError(key, message string) *FieldError {
	return &FieldError{
		Key:     key,
		Message: message,
		Err:     ErrSchemaMismatch,
	}
}

// NewInheritedError creates a FieldError classified as ErrInheritedValue
func NewInheritedError(key string) *FieldError {
	return &FieldError{
		Key:     key,
		Message: ErrInheritedValue.Error(),
		Err:     ErrInheritedValue,
	}
}

// ExitCodeForError returns the process exit code for an error.
// nil maps to ExitSuccess and unclassified errors to ExitGeneralError.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrUnreadable):
		return ExitUnreadable
	case errors.Is(err, ErrMalformedManifest):
		return ExitMalformed
	case errors.Is(err, ErrSchemaMismatch):
		return ExitSchemaMismatch
	case errors.Is(err, ErrInheritedValue):
		return ExitInheritedValue
	case errors.Is(err, ErrInvalidSemver):
		return ExitInvalidSemver
	}

	return ExitGeneralError
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleManifest populates every queryable field
const SampleManifest = `[package]
name = "some-other-project"
version = "0.2.1"
authors = ["Alice <alice@example.com>", "Bob"]
edition = "2021"
homepage = "https://example.com/some-other-project"
keywords = ["cli", "tools"]
license = "MIT OR Apache-2.0"
links = "z"
description = "A project used in tests"
categories = ["command-line-utilities", "development-tools"]

[dependencies]
anyhow = "1"
`

// MinimalManifest only has the required keys
const MinimalManifest = `[package]
name = "minimal"
version = "1.0.0"
`

// WriteManifest writes content to dir/Cargo.toml and returns its path
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()

	return WriteFile(t, dir, "Cargo.toml", content)
}

// WriteFile writes content to dir/name and returns its path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

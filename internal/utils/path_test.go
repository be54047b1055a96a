package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "home directory with slash",
			input:    "~/project/Cargo.toml",
			expected: filepath.Join(home, "project", "Cargo.toml"),
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: home,
		},
		{
			name:     "absolute path",
			input:    "/tmp/Cargo.toml",
			expected: "/tmp/Cargo.toml",
		},
		{
			name:     "relative path",
			input:    "./crate",
			expected: "./crate",
		},
		{
			name:     "tilde inside name",
			input:    "~crate",
			expected: "~crate",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

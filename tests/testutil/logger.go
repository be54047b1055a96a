package testutil

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quantmind-br/cargo-get/internal/utils"
)

// NewTestLogger creates a debug-level logger that discards its output
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}

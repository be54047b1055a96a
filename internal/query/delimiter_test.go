package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tab", "\t"},
		{"CR", "\r"},
		{"LF", "\n"},
		{"CRLF", "\r\n"},
		{";", ";"},
		{", ", ", "},
		{"", ""},
		{"tab", "tab"},
		{"TAB", "TAB"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDelimiter(tt.in))
		})
	}
}

func TestDefaultDelimiter(t *testing.T) {
	assert.Equal(t, "\n", DefaultDelimiter)
	assert.Equal(t, DefaultDelimiter, ParseDelimiter("LF"))
}

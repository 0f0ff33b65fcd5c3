package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"auto", FormatAuto},
		{"", FormatAuto},
		{"term", FormatTerminal},
		{"terminal", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"TEXT", FormatText},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
}

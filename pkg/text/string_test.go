package text_test

import (
	"testing"

	"github.com/ednadion/lamark/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		blank bool
	}{
		{
			name:  "Empty",
			input: "",
			blank: true,
		},
		{
			name:  "Only spaces",
			input: "   ",
			blank: true,
		},
		{
			name:  "Leading spaces",
			input: " Not blank",
			blank: false,
		},
		{
			name:  "EOL",
			input: "\n",
			blank: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.IsBlank(tt.input)
			assert.Equal(t, actual, tt.blank)
		})
	}
}

func TestTrimExtension(t *testing.T) {
	var tests = []struct {
		name     string // name
		path     string // input
		expected string // output
	}{
		{
			name:     "Basic filename",
			path:     "mona-lisa.md",
			expected: "mona-lisa",
		},
		{
			name:     "Relative path",
			path:     "artworks/mona-lisa.md",
			expected: "artworks/mona-lisa",
		},
		{
			name:     "No extension",
			path:     "artworks/mona-lisa",
			expected: "artworks/mona-lisa",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := text.TrimExtension(tt.path)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		expected []Attr
	}{
		{
			name:     "empty info",
			info:     "",
			expected: nil,
		},
		{
			name: "simple pairs keep order",
			info: "language=go width=80%",
			expected: []Attr{
				{Key: "language", Value: "go"},
				{Key: "width", Value: "80%"},
			},
		},
		{
			name: "quoted value with spaces",
			info: `language=go title="hello world"`,
			expected: []Attr{
				{Key: "language", Value: "go"},
				{Key: "title", Value: "hello world"},
			},
		},
		{
			name: "bare word becomes empty-valued attribute",
			info: "linenos language=go",
			expected: []Attr{
				{Key: "linenos"},
				{Key: "language", Value: "go"},
			},
		},
		{
			name: "extra whitespace is ignored",
			info: "  language=go \t width=50% ",
			expected: []Attr{
				{Key: "language", Value: "go"},
				{Key: "width", Value: "50%"},
			},
		},
		{
			name: "empty quoted value",
			info: `title=""`,
			expected: []Attr{
				{Key: "title", Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAttrs(tt.info))
		})
	}
}

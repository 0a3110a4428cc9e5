package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and trims", "  Importer License  ", "importer license"},
		{"collapses immediate duplicate tokens", "importer importer license", "importer license"},
		{"keeps non-adjacent repeats", "best coffee best beans", "best coffee best beans"},
		{"collapses whitespace runs", "email   marketing\tsoftware", "email marketing software"},
		{"empty input", "   ", ""},
		{"single token", "Pricing", "pricing"},
		{"triple repeat collapses fully", "import import import license", "import license"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeAll_DropsEmpties(t *testing.T) {
	got := NormalizeAll([]string{"  ", "Coffee Importer", "", "coffee  importer"})
	assert.Equal(t, []string{"coffee importer", "coffee importer"}, got)
}

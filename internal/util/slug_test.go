package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "GHALIB", "ghalib"},
		{"spaces to dashes", "mirza ghalib", "mirza-ghalib"},
		{"underscores to dashes", "mirza_ghalib", "mirza-ghalib"},
		{"already normalized", "mirza-ghalib", "mirza-ghalib"},

		// Whitespace handling
		{"trim whitespace", "  ghalib  ", "ghalib"},
		{"multiple spaces", "faiz   ahmed", "faiz-ahmed"},
		{"tabs and spaces", "faiz\t ahmed", "faiz-ahmed"},

		// Special characters
		{"urdu script removal", "غالب Ghalib", "ghalib"},
		{"punctuation removal", "dil-e-nadaan!", "dil-e-nadaan"},
		{"apostrophe removal", "jaun's", "jauns"},

		// Dash handling
		{"multiple dashes", "dil--nadaan", "dil-nadaan"},
		{"leading dashes", "--ghalib", "ghalib"},
		{"trailing dashes", "ghalib--", "ghalib"},

		// Edge cases
		{"empty string", "", ""},
		{"only spaces", "   ", ""},
		{"only special chars", "!@#$%", ""},
		{"numbers allowed", "top10", "top10"},
		{"mixed case with numbers", "Top 10 Ghazals", "top-10-ghazals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	if got := SlugWithSuffix("ghalib", 0); got != "ghalib" {
		t.Errorf("SlugWithSuffix(ghalib, 0) = %q, want ghalib", got)
	}

	if got := SlugWithSuffix("ghalib", 2); got != "ghalib-2" {
		t.Errorf("SlugWithSuffix(ghalib, 2) = %q, want ghalib-2", got)
	}
}

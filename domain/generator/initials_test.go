package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveInitials(t *testing.T) {
	tests := map[string]string{
		"John Smith":              "JS",
		"Hello":                   "H",
		"":                        "",
		"   \t  ":                 "",
		"mary  ann   jones":       "MJ",
		"https://example.com":     "H",
		"  leading and trailing ": "LT",
		"---":                     "-",
	}

	for in, want := range tests {
		assert.Equal(t, want, DeriveInitials(in), "input %q", in)
	}
}

func TestSanitizeInitials(t *testing.T) {
	tests := map[string]string{
		"j$ s!":  "JS",
		"abcdef": "ABC",
		"!!!":    "",
		"a1b2":   "A1B",
		"ÉLO":    "LO",
		"":       "",
		"-":      "",
	}

	for in, want := range tests {
		assert.Equal(t, want, SanitizeInitials(in), "input %q", in)
	}
}

func TestResolveInitials(t *testing.T) {
	assert.Equal(t, "JS", ResolveInitials(nil, "John Smith"))
	assert.Equal(t, "AB", ResolveInitials(strPtr("ab"), "John Smith"))
	assert.Equal(t, "XYZ", ResolveInitials(strPtr(" x-y-z-w "), "John Smith"))

	// Blank explicit initials fall back to derivation.
	assert.Equal(t, "JS", ResolveInitials(strPtr("   "), "John Smith"))
	assert.Equal(t, "JS", ResolveInitials(strPtr(""), "John Smith"))

	// Explicit initials that sanitize to nothing draw no badge.
	assert.Equal(t, "", ResolveInitials(strPtr("!!!"), "John Smith"))

	// Nothing derivable and nothing supplied.
	assert.Equal(t, "", ResolveInitials(strPtr(""), "---"))
	assert.Equal(t, "", ResolveInitials(nil, "---"))
}

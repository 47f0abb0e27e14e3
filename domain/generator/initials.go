package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxInitials is the most characters a badge holds.
const MaxInitials = 3

// DeriveInitials guesses initials from free text: the first character of a
// single token, or the first characters of the first and last tokens.
// It is a heuristic, not a name parser; URLs and sentences give whatever
// their first and last words start with.
func DeriveInitials(text string) string {
	parts := strings.Fields(text)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// SanitizeInitials keeps only ASCII letters and digits, uppercases them and
// truncates to MaxInitials. An empty result means no badge.
func SanitizeInitials(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if b.Len() == MaxInitials {
			break
		}
	}
	return b.String()
}

// ResolveInitials picks the badge text for a request. Explicit initials win
// unless they are blank, in which case they are derived from text.
func ResolveInitials(explicit *string, text string) string {
	candidate := ""
	if explicit != nil {
		candidate = strings.TrimSpace(*explicit)
	}
	if candidate == "" {
		candidate = DeriveInitials(text)
	}
	return SanitizeInitials(candidate)
}

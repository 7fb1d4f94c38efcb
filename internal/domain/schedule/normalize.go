package schedule

import (
	"strings"
	"unicode"
)

// NormalizeName lowers a display name and strips punctuation and whitespace,
// keeping only letters and digits. It is applied symmetrically to roster
// entries and cell text before comparison, so "Tajieva A." and "tajieva a"
// compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// CleanCell trims a raw cell value and unwraps ="..." formula literals the
// way exported workbooks sometimes encode plain text.
func CleanCell(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "=") {
		value = strings.TrimPrefix(value, "=")
		value = strings.Trim(value, "\"")
	}
	value = strings.TrimSpace(value)
	if value == "\"\"" {
		return ""
	}
	return value
}

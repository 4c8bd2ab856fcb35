package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName lowercases a place name and strips combining diacritical
// marks so that "Sénégal" and "senegal" compare equal. Empty input stays empty.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	decomposed := norm.NFD.String(strings.ToLower(name))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		// U+0300..U+036F: combining diacritical marks
		if r >= 0x0300 && r <= 0x036f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode/utf8"
)

// SanitizeText removes control characters except tab/newline/CR, repairs
// invalid UTF-8 sequences, and trims surrounding whitespace. Degraded text
// from external extractors passes through; it is never rejected here.
func SanitizeText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Fold lower-cases text once for containment matching. All lexicon terms are
// stored pre-folded, so matching never folds per term.
func Fold(s string) string {
	return strings.ToLower(s)
}

// MostlyPrintable reports whether the byte content looks like text rather
// than an undecoded binary payload. The threshold is deliberately loose so
// garbled extractor output still passes.
func MostlyPrintable(s string) bool {
	if s == "" {
		return true
	}
	printable := 0
	total := 0
	for _, r := range s {
		total++
		if r == '\n' || r == '\r' || r == '\t' || r == ' ' || (r > 32 && r != utf8.RuneError) {
			printable++
		}
	}
	return printable*100 >= total*70
}

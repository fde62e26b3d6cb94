package analyzer

import (
	"strings"
	"unicode"
)

const minTermLength = 3

// SplitWords breaks a path segment into words. Underscores separate words, and
// a new word starts where an upper-case letter follows a lower-case letter or
// digit, or where an upper-case run meets an upper-case letter followed by a
// lower-case one ("HTTPServer" -> "HTTP", "Server").
func SplitWords(segment string) []string {
	var words []string
	for _, piece := range strings.Split(segment, "_") {
		words = append(words, splitCamel(piece)...)
	}
	return words
}

func splitCamel(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// SegmentTerms returns the lower-cased words of segment that are long enough
// to count as terms. Plain segments (one lower-case word, no underscore) are
// structural names like "src" or "docs" and yield nothing.
func SegmentTerms(segment string) []string {
	words := SplitWords(segment)
	if isPlain(segment, words) {
		return nil
	}

	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < minTermLength {
			continue
		}
		terms = append(terms, strings.ToLower(w))
	}
	return terms
}

func isPlain(segment string, words []string) bool {
	if strings.Contains(segment, "_") || len(words) != 1 {
		return false
	}
	return strings.ToLower(words[0]) == words[0]
}

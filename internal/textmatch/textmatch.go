// Package textmatch provides the case-insensitive lexical matching used by
// skill extraction and section detection. The matcher treats needles as
// literal labels, never as patterns: special characters in names like "C++"
// or "C#" are escaped before compilation.
package textmatch

import (
	"regexp"
	"strings"
	"sync"
)

// patternCache caches compiled patterns per needle. The taxonomy vocabulary
// is small and fixed, so the cache stays bounded in practice.
var patternCache sync.Map // string -> *regexp.Regexp

// compile returns a case-insensitive literal pattern for needle
func compile(needle string) *regexp.Regexp {
	if cached, ok := patternCache.Load(needle); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(needle))
	patternCache.Store(needle, re)
	return re
}

// isWordByte reports whether b is part of a token (ASCII letter or digit).
// Taxonomy labels are ASCII; multibyte text around a match is by definition
// not an ASCII alphanumeric, so byte-level boundary checks are sufficient.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// CountWholeWord returns the number of whole-word, case-insensitive
// occurrences of needle in haystack. An occurrence is whole-word when it is
// not flanked by alphanumerics on either side, so "Go" never fires inside
// "Google" while "C++" still matches right before a space or end of text.
func CountWholeWord(haystack, needle string) int {
	if needle == "" || haystack == "" {
		return 0
	}

	count := 0
	for _, loc := range compile(needle).FindAllStringIndex(haystack, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isWordByte(haystack[start-1]) {
			continue
		}
		if end < len(haystack) && isWordByte(haystack[end]) {
			continue
		}
		count++
	}
	return count
}

// ContainsAnyFold reports whether any of the phrases occurs in text,
// case-insensitively. This is plain substring containment, not whole-word:
// section indicators are meant to fire inside headings like "Work Experience:"
// or words like "experienced".
func ContainsAnyFold(text string, phrases []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// Package names shortens verbose test identifiers into display labels.
//
// The cleanup is an ordered pipeline of total string rewrites. It is
// heuristic and lossy on purpose: the full original name is still shown
// in the report next to the cleaned label.
package names

import (
	"regexp"
	"strings"
)

const (
	// PlaceholderEmptyInput is returned when the raw name is empty.
	PlaceholderEmptyInput = "Unknown Test"
	// PlaceholderCleanedAway is returned when cleanup removes everything.
	PlaceholderCleanedAway = "Test Case"

	maxDisplayLength = 60
	truncateLength   = 57
	ellipsis         = "..."
)

var (
	bracketTagPattern     = regexp.MustCompile(`\[[^\]]+\]\s*`)
	verifyPrefixPattern   = regexp.MustCompile(`(?i)^Verify:\s*`)
	testCasePrefixPattern = regexp.MustCompile(`(?i)^TEST_CASE:\s*`)
	longParensPattern     = regexp.MustCompile(`\s*\([^)]{50,}\)`)
	keywordSuffixPattern  = regexp.MustCompile(`\s+(that=|fail_msg=|success_msg=).*`)
	portSuffixPattern     = regexp.MustCompile(`\s+port=\d+.*`)
	hostSuffixPattern     = regexp.MustCompile(`\s+host=.*`)
	stateSuffixPattern    = regexp.MustCompile(`\s+state=.*`)
	timeoutSuffixPattern  = regexp.MustCompile(`\s+timeout=\d+.*`)
	whitespaceRunPattern  = regexp.MustCompile(`\s+`)
)

// Clean reduces a raw test name to a short human-readable label. It is
// total: any input, including the empty string, yields a non-empty
// result of at most 60 characters.
func Clean(name string) string {
	if name == "" {
		return PlaceholderEmptyInput
	}

	cleaned := stripBracketTags(name)
	cleaned = stripPrefixes(cleaned)
	cleaned = stripLongParens(cleaned)
	cleaned = keepFirstCommaPart(cleaned)
	cleaned = stripTrailingKeywords(cleaned)
	cleaned = collapseWhitespace(cleaned)
	cleaned = truncate(cleaned)

	if cleaned == "" {
		return PlaceholderCleanedAway
	}
	return cleaned
}

// stripBracketTags removes bracketed tag segments such as host or
// environment markers ("[centos] ", "[ubuntu] ") wherever they occur.
func stripBracketTags(s string) string {
	return bracketTagPattern.ReplaceAllString(s, "")
}

// stripPrefixes drops leading "Verify:" and "TEST_CASE:" labels,
// case-insensitively, along with the whitespace that follows them.
func stripPrefixes(s string) string {
	s = verifyPrefixPattern.ReplaceAllString(s, "")
	return testCasePrefixPattern.ReplaceAllString(s, "")
}

// stripLongParens removes parenthesized segments whose content is 50
// characters or longer, typically inlined parameter lists.
func stripLongParens(s string) string {
	return longParensPattern.ReplaceAllString(s, "")
}

// keepFirstCommaPart keeps only the text before the first comma and
// trims keyword-argument fragments from it.
func keepFirstCommaPart(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	first := strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
	return keywordSuffixPattern.ReplaceAllString(first, "")
}

// stripTrailingKeywords removes trailing keyword-argument fragments
// (that=, fail_msg=, success_msg=, port=, host=, state=, timeout=)
// together with everything after them.
func stripTrailingKeywords(s string) string {
	s = keywordSuffixPattern.ReplaceAllString(s, "")
	s = portSuffixPattern.ReplaceAllString(s, "")
	s = hostSuffixPattern.ReplaceAllString(s, "")
	s = stateSuffixPattern.ReplaceAllString(s, "")
	return timeoutSuffixPattern.ReplaceAllString(s, "")
}

// collapseWhitespace reduces whitespace runs to single spaces and trims
// the ends.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(s, " "))
}

// truncate caps the label at 60 characters, cutting to 57 and appending
// an ellipsis when it is longer.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDisplayLength {
		return s
	}
	return string(runes[:truncateLength]) + ellipsis
}

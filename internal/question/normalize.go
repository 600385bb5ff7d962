package question

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Matches reports whether input equals any accepted answer after normalization.
// Blank input never matches.
func Matches(input string, accepted []string) bool {
	normalized := NormalizeAnswerText(input)
	if normalized == "" {
		return false
	}
	for _, answer := range accepted {
		if NormalizeAnswerText(answer) == normalized {
			return true
		}
	}
	return false
}

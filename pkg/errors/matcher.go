package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; the first match wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		rules: []categoryPatterns{
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
				"readonly database",
			}},
			{CategorySettings, []string{
				"invalid setting",
				"unknown settings format",
				"unsupported settings format",
				"yaml:",
				"file is not a database",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"does not exist",
				"is a directory",
				"unable to open database file",
			}},
			{CategoryConfig, []string{
				"displays must",
				"display size must",
				"user must",
			}},
		},
	}
}

type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

type patternMatcher struct {
	rules []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, rule := range m.rules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return rule.category
			}
		}
	}

	return CategoryUnknown
}

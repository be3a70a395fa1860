package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled once and shared across enrichers
	pathExtractionPattern = regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`)
)

type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich categorises err and attaches suggestions. An ActionableError is returned unchanged,
// and nil stays nil. If affectedPath is empty, a path is taken from the message when present.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()
	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := e.matcher.Match(errMsg)

	return NewActionableError(err, category, e.generator.Generate(category, affectedPath), affectedPath)
}

// extractPath pulls a path out of messages like "open /etc/settings.yaml: permission denied".
func extractPath(errorMsg string) string {
	if matches := pathExtractionPattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

// Package errors turns startup failures into actionable errors with suggestions.
//
// The simulator can only fail before it starts: while reading configuration or opening the
// settings source. The enricher categorises such errors (settings, path, permission, config)
// and attaches suggestions the CLI prints under the error:
//
//	enricher := errors.NewEnricher()
//	src, err := settings.Open(path)
//	if err != nil {
//	    err = enricher.Enrich(err, path)
//	    fmt.Fprintln(os.Stderr, err)
//	    fmt.Fprintln(os.Stderr, errors.FormatSuggestions(err))
//	}
package errors

import "strings"

// Exported constants.
const (
	CategoryConfig     ErrorCategory = "config"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategorySettings   ErrorCategory = "settings"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	Unwrap() error
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError wrapping err.
func NewActionableError(err error, category ErrorCategory, suggestions []string, affectedPath string) ActionableError {
	return &actionableError{
		err:          err,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions of an ActionableError as a bulleted list.
// Returns empty string if the error is nil, not actionable, or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Try these solutions:")
	for _, suggestion := range suggestions {
		builder.WriteString("\n  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

type actionableError struct {
	err          error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

func (e *actionableError) AffectedPath() string    { return e.affectedPath }
func (e *actionableError) Category() ErrorCategory { return e.category }
func (e *actionableError) Error() string           { return e.err.Error() }
func (e *actionableError) Suggestions() []string   { return e.suggestions }
func (e *actionableError) Unwrap() error           { return e.err }

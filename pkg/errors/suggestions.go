package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.permission(affectedPath)
	case CategorySettings:
		return g.settings(affectedPath)
	case CategoryPath:
		return g.path(affectedPath)
	case CategoryConfig:
		return []string{
			"Run with --help to see the accepted ranges",
			"Use between 1 and 8 displays with a positive width and height",
		}
	default:
		return []string{
			"Run without --settings to use the built-in defaults",
			"Re-run with --log-file to capture details",
		}
	}
}

func (g *suggestionGenerator) permission(path string) []string {
	if path == "" {
		return []string{"Check that the settings source is readable by the current user"}
	}
	return []string{
		"Check that the settings source is readable by the current user",
		fmt.Sprintf("Check permissions with 'ls -la %s'", path),
	}
}

func (g *suggestionGenerator) settings(path string) []string {
	suggestions := []string{
		"Use a .yaml file with a 'users' map, or a .db database with a 'secure' table",
		"Store accessibility_display_magnification_scale as a number, for example 3.0",
	}
	if path != "" {
		suggestions = append(suggestions, "Validate the contents of "+path)
	}
	return suggestions
}

func (g *suggestionGenerator) path(path string) []string {
	if path == "" {
		return []string{"Verify the settings path exists and is spelled correctly"}
	}
	return []string{
		"Verify the settings path exists and is spelled correctly",
		"Check if the path exists: " + path,
	}
}

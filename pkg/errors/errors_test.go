package errors_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	pkgerrors "github.com/joe/magnify/pkg/errors"
	"github.com/joe/magnify/internal/settings"
)

func TestPatternMatcher(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected pkgerrors.ErrorCategory
	}{
		{"permission", "open /etc/prefs.yaml: PERMISSION DENIED", pkgerrors.CategoryPermission},
		{"invalid yaml", "invalid setting value: prefs.yaml: yaml: line 1: did not find expected ','", pkgerrors.CategorySettings},
		{"unknown format", "unknown settings format: prefs.json", pkgerrors.CategorySettings},
		{"missing file", "settings path does not exist: /tmp/prefs.yaml", pkgerrors.CategoryPath},
		{"config range", "displays must be between 1 and 8, got 9", pkgerrors.CategoryConfig},
		{"anything else", "something odd happened", pkgerrors.CategoryUnknown},
	}

	matcher := pkgerrors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if category := matcher.Match(testCase.errorMsg); category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q", testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestEnricher_KeepsWrappedError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	original := fmt.Errorf("%w: prefs.json", settings.ErrUnknownFormat)

	enriched := pkgerrors.NewEnricher().Enrich(original, "prefs.json")

	g.Expect(enriched).To(MatchError(settings.ErrUnknownFormat))
	var actionable pkgerrors.ActionableError
	g.Expect(errors.As(enriched, &actionable)).To(BeTrue())
	g.Expect(actionable.Category()).To(Equal(pkgerrors.CategorySettings))
	g.Expect(actionable.AffectedPath()).To(Equal("prefs.json"))
	g.Expect(actionable.Suggestions()).To(ContainElement(ContainSubstring("prefs.json")))
}

func TestEnricher_ExtractsPathFromMessage(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	enriched := pkgerrors.NewEnricher().Enrich(errors.New("open /etc/prefs.yaml: permission denied"), "")

	actionable, ok := enriched.(pkgerrors.ActionableError)
	g.Expect(ok).To(BeTrue())
	g.Expect(actionable.AffectedPath()).To(Equal("/etc/prefs.yaml"))
	g.Expect(actionable.Category()).To(Equal(pkgerrors.CategoryPermission))
}

func TestEnricher_ActionableAndNil(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	enricher := pkgerrors.NewEnricher()
	original := pkgerrors.NewActionableError(errors.New("boom"), pkgerrors.CategoryConfig, []string{"x"}, "")

	g.Expect(enricher.Enrich(original, "/other")).To(BeIdenticalTo(original))
	g.Expect(enricher.Enrich(nil, "")).To(BeNil())
}

func TestFormatSuggestions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := pkgerrors.NewActionableError(errors.New("boom"), pkgerrors.CategoryUnknown, []string{"first", "second"}, "")

	g.Expect(pkgerrors.FormatSuggestions(err)).To(Equal("Try these solutions:\n  • first\n  • second"))
	g.Expect(pkgerrors.FormatSuggestions(errors.New("plain"))).To(BeEmpty())
	g.Expect(pkgerrors.FormatSuggestions(nil)).To(BeEmpty())
	g.Expect(pkgerrors.FormatSuggestions(
		pkgerrors.NewActionableError(errors.New("boom"), pkgerrors.CategoryUnknown, nil, ""),
	)).To(BeEmpty())
}

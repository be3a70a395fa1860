package shared

import "github.com/charmbracelet/lipgloss"

// Exported constants.
const (
	// DefaultPadding is the horizontal padding inside display panels
	DefaultPadding = 2
	// PanelWidth is the width of one display panel, borders included
	PanelWidth = 34
	// MaxLogEntries is how many activity log entries are shown
	MaxLogEntries = 12

	// KeyCtrlC is the key binding for quitting
	KeyCtrlC = "ctrl+c"
	// SelectedMarker prefixes the title of the selected display panel
	SelectedMarker = "▶ "
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// ActivePanelStyle returns the style for the selected display panel
func ActivePanelStyle() lipgloss.Style {
	return PanelStyle().BorderForeground(HighlightColor())
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for failures
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

// PanelStyle returns the style for display panels
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(0, DefaultPadding).
		Width(PanelWidth - 2)
}

// PrimaryColor returns the primary color for the UI
func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// RenderDim renders dimmed text
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders a failure
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderLabel renders a label
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderPanel renders a display panel, highlighted when active
func RenderPanel(content string, active bool) string {
	if active {
		return ActivePanelStyle().Render(content)
	}
	return PanelStyle().Render(content)
}

// RenderSuccess renders a success
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a title
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// RenderWarning renders a warning
func RenderWarning(text string) string {
	return WarningStyle().Render(text)
}

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// SuccessStyle returns the style for successes
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor()).
		MarginBottom(1)
}

func WarningColor() lipgloss.Color { return lipgloss.Color(warningColorCode) }

// WarningStyle returns the style for warnings
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(WarningColor()).
		Bold(true)
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "86"  // Cyan
	primaryColorCode   = "205" // Pink/purple
	successColorCode   = "42"  // Green
	warningColorCode   = "226" // Yellow
)

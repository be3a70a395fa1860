package shared

import "github.com/charmbracelet/lipgloss"

// RenderPanelRow lays display panels out side by side, wrapping into rows that fit width.
// A width of zero or less puts every panel on one row.
func RenderPanelRow(panels []string, width int) string {
	if len(panels) == 0 {
		return ""
	}

	perRow := len(panels)
	if width > 0 {
		perRow = max(1, width/PanelWidth)
	}

	rows := make([]string, 0, (len(panels)+perRow-1)/perRow)
	for start := 0; start < len(panels); start += perRow {
		end := min(start+perRow, len(panels))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

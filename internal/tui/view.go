package tui

import (
	"fmt"
	"strings"

	"github.com/joe/magnify/internal/transition"
	"github.com/joe/magnify/internal/tui/shared"
	"github.com/joe/magnify/pkg/magnification"
)

// View implements tea.Model
func (a AppModel) View() string {
	if a.quitting {
		return ""
	}

	panels := make([]string, 0, a.deps.Displays)
	for i := range a.deps.Displays {
		panels = append(panels, a.renderDisplay(magnification.DisplayID(i), i == a.selected))
	}

	var builder strings.Builder
	builder.WriteString(shared.RenderTitle("Magnification transitions"))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderPanelRow(panels, a.width))
	builder.WriteString("\n\n")
	builder.WriteString(shared.RenderActivityLog("Activity", a.log, shared.MaxLogEntries))
	builder.WriteString("\n\n")
	builder.WriteString(shared.RenderDim(helpText))

	return builder.String()
}

func (a AppModel) renderDisplay(display magnification.DisplayID, active bool) string {
	fullScreen, window := a.deps.FullScreen, a.deps.Window

	title := fmt.Sprintf("Display %d", display)
	if active {
		title = shared.SelectedMarker + title
	}

	lines := []string{
		shared.RenderLabel(title),
		"",
		"Full-screen " + renderMagnifier(
			fullScreen.IsMagnifying(display),
			fullScreen.Scale(display),
			fullScreen.CenterX(display),
			fullScreen.CenterY(display),
		),
		"Window      " + renderMagnifier(
			window.IsEnabled(display),
			window.Scale(display),
			window.CenterX(display),
			window.CenterY(display),
		),
		"",
	}

	if target, ok := a.deps.Controller.TransitionTarget(display); ok {
		pending := fullScreen.Pending(display) + window.Pending(display)
		lines = append(lines, shared.RenderWarning(fmt.Sprintf("%s → %s", a.spinner.View(), target))+
			shared.RenderDim(fmt.Sprintf(" (%d pending)", pending)))
	} else {
		lines = append(lines, shared.RenderDim("idle"))
	}

	return shared.RenderPanel(strings.Join(lines, "\n"), active)
}

func renderMagnifier(on bool, scale, x, y float64) string {
	if !on {
		return shared.RenderDim("off")
	}
	return shared.RenderSuccess("on") + fmt.Sprintf(" ×%.1f (%.0f, %.0f)", scale, x, y)
}

func describeEvent(event transition.Event) string {
	switch e := event.(type) {
	case transition.TransitionStarted:
		return fmt.Sprintf("display %d: %s → %s from (%.0f, %.0f)", e.Display, e.From, e.To, e.Center.X, e.Center.Y)
	case transition.TransitionSkipped:
		return fmt.Sprintf("display %d: %s request skipped, %s", e.Display, e.Target, e.Reason)
	case transition.TransitionAbandoned:
		return fmt.Sprintf("display %d: transition to %s abandoned", e.Display, e.Target)
	case transition.TransitionReversed:
		return fmt.Sprintf("display %d: reversed, %s restored", e.Display, e.Restored)
	case transition.CenterClipped:
		return fmt.Sprintf("display %d: center (%.0f, %.0f) moved to (%.0f, %.0f)",
			e.Display, e.From.X, e.From.Y, e.To.X, e.To.Y)
	case transition.TransitionCompleted:
		return fmt.Sprintf("display %d: %s applied at (%.0f, %.0f)", e.Display, e.Mode, e.Center.X, e.Center.Y)
	case transition.TransitionFailed:
		return fmt.Sprintf("display %d: transition to %s failed", e.Display, e.Target)
	case transition.TransitionCancelled:
		return fmt.Sprintf("display %d: transition cancelled", e.Display)
	default:
		return fmt.Sprintf("unknown event %T", event)
	}
}

func describeResult(msg shared.RequestDoneMsg) string {
	if msg.Success {
		return shared.RenderSuccess(fmt.Sprintf("display %d: %s request succeeded", msg.Display, msg.Target))
	}
	return shared.RenderError(fmt.Sprintf("display %d: %s request failed", msg.Display, msg.Target))
}

// unexported constants.
const (
	helpText = "f full-screen • w window • c complete • x fail • i interrupt • d remove display • tab next • q quit"
)

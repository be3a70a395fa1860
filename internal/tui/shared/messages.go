package shared

import (
	"github.com/joe/magnify/internal/transition"
	"github.com/joe/magnify/pkg/magnification"
)

// TransitionEventMsg wraps a transition.Event for use as a tea.Msg.
type TransitionEventMsg struct {
	Event transition.Event
}

// RequestDoneMsg is sent when a requester callback fires.
type RequestDoneMsg struct {
	Display magnification.DisplayID
	Target  magnification.Mode
	Success bool
}

// SettingsReloadedMsg is sent when the settings file changed on disk.
type SettingsReloadedMsg struct {
	Scale float64
}

// Package tui is an interactive simulator for magnification mode transitions.
//
// Every display gets a panel showing both magnifiers and any transition in flight. Animations
// started by the controller stay pending until they are resolved from the keyboard, so each
// ordering of requests, completions and interruptions can be reproduced by hand.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/magnify/internal/magnifier"
	"github.com/joe/magnify/internal/transition"
	"github.com/joe/magnify/internal/tui/shared"
)

// Deps are the components the simulator drives.
type Deps struct {
	Controller *transition.Controller
	FullScreen *magnifier.FullScreen
	Window     *magnifier.Window
	Bridge     *shared.EventBridge
	Displays   int
}

// AppModel is the top-level bubble tea model.
type AppModel struct {
	deps     Deps
	selected int
	log      []string
	spinner  spinner.Model
	width    int
	height   int
	quitting bool

	// now stamps activity log entries
	now func() time.Time
}

// NewAppModel creates the simulator model. The controller's event emitter is set to deps.Bridge.
func NewAppModel(deps Deps) AppModel {
	if deps.Displays < 1 {
		deps.Displays = 1
	}
	deps.Controller.SetEventEmitter(deps.Bridge)

	return AppModel{
		deps:    deps,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:     time.Now,
	}
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return tea.Batch(a.deps.Bridge.ListenCmd(), a.spinner.Tick)
}

// Log returns the activity log entries, oldest first.
func (a AppModel) Log() []string {
	return a.log
}

// Quitting reports whether the user asked to quit.
func (a AppModel) Quitting() bool {
	return a.quitting
}

// Selected returns the index of the selected display.
func (a AppModel) Selected() int {
	return a.selected
}

// WithClock returns a copy of the model that stamps log entries with now.
func (a AppModel) WithClock(now func() time.Time) AppModel {
	a.now = now
	return a
}

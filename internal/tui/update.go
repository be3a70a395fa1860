package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/magnify/internal/tui/shared"
	"github.com/joe/magnify/pkg/magnification"
)

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case shared.TransitionEventMsg:
		a.appendLog(describeEvent(msg.Event))
		return a, a.deps.Bridge.ListenCmd()

	case shared.RequestDoneMsg:
		a.appendLog(describeResult(msg))
		return a, a.deps.Bridge.ListenCmd()

	case shared.SettingsReloadedMsg:
		a.appendLog(fmt.Sprintf("settings reloaded, window scale is now %.1f", msg.Scale))
		return a, a.deps.Bridge.ListenCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	display := magnification.DisplayID(a.selected)

	switch msg.String() {
	case "q", shared.KeyCtrlC:
		a.quitting = true
		return a, tea.Quit

	case "tab", "right", "l":
		a.selected = (a.selected + 1) % a.deps.Displays

	case "shift+tab", "left", "h":
		a.selected = (a.selected + a.deps.Displays - 1) % a.deps.Displays

	case "f":
		a.request(display, magnification.Fullscreen)

	case "w":
		a.request(display, magnification.Window)

	case "c":
		a.deps.FullScreen.InvokeCallbacksFor(display)
		a.deps.Window.InvokeCallbacksFor(display)

	case "x":
		a.deps.FullScreen.FailCallbacksFor(display)
		a.deps.Window.FailCallbacksFor(display)

	case "i":
		a.interrupt(display)

	case "d":
		a.appendLog(fmt.Sprintf("display %d removed", display))
		a.deps.Controller.OnDisplayRemoved(display)
	}

	return a, nil
}

// request asks the controller for target on display. The outcome arrives as a RequestDoneMsg.
func (a *AppModel) request(display magnification.DisplayID, target magnification.Mode) {
	a.appendLog(fmt.Sprintf("display %d: requested %s", display, target))

	bridge := a.deps.Bridge
	a.deps.Controller.RequestTransition(display, target, func(success bool) {
		bridge.Send(shared.RequestDoneMsg{Display: display, Target: target, Success: success})
	})
}

// interrupt changes the animating magnifier behind the controller's back, the way another
// client of the magnifier would.
func (a *AppModel) interrupt(display magnification.DisplayID) {
	fullScreen, window := a.deps.FullScreen, a.deps.Window
	keep := magnification.NaNPoint()

	switch {
	case fullScreen.Pending(display) > 0:
		fullScreen.SetScaleAndCenter(display, fullScreen.Scale(display), keep.X, keep.Y, false, 0)
		a.appendLog(fmt.Sprintf("display %d: full-screen animation interrupted", display))
	case window.Pending(display) > 0:
		window.Enable(display, window.Scale(display), keep.X, keep.Y, nil)
		a.appendLog(fmt.Sprintf("display %d: window animation interrupted", display))
	default:
		a.appendLog(fmt.Sprintf("display %d: nothing to interrupt", display))
	}
}

func (a *AppModel) appendLog(entry string) {
	a.log = append(a.log, a.now().Format("15:04:05")+" - "+entry)
}

package magnifier

import (
	"math"
	"sync"

	"github.com/joe/magnify/pkg/magnification"
)

// ScaleReader supplies the persisted magnification scale.
type ScaleReader interface {
	Scale() float64
}

// Window is a simulated window magnifier.
type Window struct {
	mu       sync.Mutex
	scales   ScaleReader
	displays map[magnification.DisplayID]*windowState
	pending  []*animation
	calls    []Call
}

type windowState struct {
	enabled bool
	scale   float64
	center  magnification.Point
}

// NewWindow creates a window magnifier reading its persisted scale from scales.
func NewWindow(scales ScaleReader) *Window {
	return &Window{
		scales:   scales,
		displays: make(map[magnification.DisplayID]*windowState),
	}
}

// IsEnabled implements magnification.WindowMagnifier.
func (w *Window) IsEnabled(display magnification.DisplayID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state(display).enabled
}

// CenterX implements magnification.WindowMagnifier.
func (w *Window) CenterX(display magnification.DisplayID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state(display).center.X
}

// CenterY implements magnification.WindowMagnifier.
func (w *Window) CenterY(display magnification.DisplayID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state(display).center.Y
}

// Scale returns the lens scale on display, 1 when disabled.
func (w *Window) Scale(display magnification.DisplayID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := w.state(display)
	if !state.enabled {
		return 1
	}
	return state.scale
}

// PersistedScale implements magnification.WindowMagnifier.
func (w *Window) PersistedScale() float64 {
	return w.scales.Scale()
}

// Disable implements magnification.WindowMagnifier. The lens stays visible until the animation
// is resolved successfully.
func (w *Window) Disable(display magnification.DisplayID, animated bool, callback magnification.AnimationCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls = append(w.calls, Call{Method: MethodDisable, Display: display, Animate: animated})
	state := w.state(display)
	w.pending = append(w.pending, &animation{
		display:  display,
		callback: callback,
		apply: func() {
			state.enabled = false
		},
	})
}

// Enable implements magnification.WindowMagnifier. The lens appears immediately and any
// disable still animating on the display is interrupted. A NaN center keeps the current one.
func (w *Window) Enable(display magnification.DisplayID, scale, centerX, centerY float64, callback magnification.AnimationCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls = append(w.calls, Call{
		Method:  MethodEnable,
		Display: display,
		Scale:   scale,
		CenterX: centerX,
		CenterY: centerY,
		Animate: callback != nil,
	})
	interruptPending(w.pending, display)

	state := w.state(display)
	state.enabled = true
	state.scale = scale
	if !math.IsNaN(centerX) && !math.IsNaN(centerY) {
		state.center = magnification.Point{X: centerX, Y: centerY}
	}
	if callback != nil {
		w.pending = append(w.pending, &animation{display: display, callback: callback, apply: func() {}})
	}
}

// InvokeCallbacks resolves every pending animation successfully, except those a later call
// interrupted, which report failure.
func (w *Window) InvokeCallbacks() {
	w.resolve(0, true, true)
}

// InvokeCallbacksFor resolves the pending animations of one display.
func (w *Window) InvokeCallbacksFor(display magnification.DisplayID) {
	w.resolve(display, false, true)
}

// FailCallbacks resolves every pending animation as failed.
func (w *Window) FailCallbacks() {
	w.resolve(0, true, false)
}

// FailCallbacksFor resolves the pending animations of one display as failed.
func (w *Window) FailCallbacksFor(display magnification.DisplayID) {
	w.resolve(display, false, false)
}

// Pending returns the number of unresolved animations on display.
func (w *Window) Pending(display magnification.DisplayID) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	taken, _ := takePending(w.pending, display, false)
	return len(taken)
}

// Calls returns the mutating calls made so far.
func (w *Window) Calls() []Call {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Call, len(w.calls))
	copy(out, w.calls)
	return out
}

// ResetCalls forgets the recorded calls.
func (w *Window) ResetCalls() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls = nil
}

func (w *Window) resolve(display magnification.DisplayID, all, success bool) {
	w.mu.Lock()
	taken, rest := takePending(w.pending, display, all)
	w.pending = rest
	results := make([]bool, len(taken))
	for i, anim := range taken {
		results[i] = anim.outcome(success)
		if results[i] {
			anim.apply()
		}
	}
	w.mu.Unlock()

	for i, anim := range taken {
		if anim.callback != nil {
			anim.callback(results[i])
		}
	}
}

func (w *Window) state(display magnification.DisplayID) *windowState {
	state, ok := w.displays[display]
	if !ok {
		state = &windowState{scale: 1}
		w.displays[display] = state
	}
	return state
}

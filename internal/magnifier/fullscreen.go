package magnifier

import (
	"math"
	"sync"

	"github.com/joe/magnify/pkg/magnification"
)

// FullScreen is a simulated full-screen magnifier.
type FullScreen struct {
	mu            sync.Mutex
	displays      map[magnification.DisplayID]*fullScreenState
	regions       map[magnification.DisplayID]magnification.Region
	defaultRegion magnification.Region
	pending       []*animation
	calls         []Call
}

type fullScreenState struct {
	magnifying bool
	scale      float64
	center     magnification.Point
}

// NewFullScreen creates a full-screen magnifier whose displays cover region unless
// SetMagnificationRegion says otherwise.
func NewFullScreen(region magnification.Region) *FullScreen {
	return &FullScreen{
		displays:      make(map[magnification.DisplayID]*fullScreenState),
		regions:       make(map[magnification.DisplayID]magnification.Region),
		defaultRegion: region,
	}
}

// IsMagnifying implements magnification.FullScreenMagnifier.
func (f *FullScreen) IsMagnifying(display magnification.DisplayID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state(display).magnifying
}

// CenterX implements magnification.FullScreenMagnifier.
func (f *FullScreen) CenterX(display magnification.DisplayID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state(display).center.X
}

// CenterY implements magnification.FullScreenMagnifier.
func (f *FullScreen) CenterY(display magnification.DisplayID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state(display).center.Y
}

// Scale returns the current scale of display, 1 when not magnifying.
func (f *FullScreen) Scale(display magnification.DisplayID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.state(display)
	if !state.magnifying {
		return 1
	}
	return state.scale
}

// MagnificationRegion implements magnification.FullScreenMagnifier.
func (f *FullScreen) MagnificationRegion(display magnification.DisplayID) magnification.Region {
	f.mu.Lock()
	defer f.mu.Unlock()

	if region, ok := f.regions[display]; ok {
		return region
	}
	return f.defaultRegion
}

// SetMagnificationRegion overrides the magnification region of display.
func (f *FullScreen) SetMagnificationRegion(display magnification.DisplayID, region magnification.Region) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.regions[display] = region
}

// Reset implements magnification.FullScreenMagnifier. The display keeps magnifying until the
// animation is resolved successfully.
func (f *FullScreen) Reset(display magnification.DisplayID, callback magnification.AnimationCallback) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Method: MethodReset, Display: display, Animate: true})
	state := f.state(display)
	f.pending = append(f.pending, &animation{
		display:  display,
		callback: callback,
		apply: func() {
			state.magnifying = false
			state.scale = 1
		},
	})
}

// SetScaleAndCenter implements magnification.FullScreenMagnifier. It takes effect immediately
// and interrupts any reset still animating on the display.
func (f *FullScreen) SetScaleAndCenter(display magnification.DisplayID, scale, centerX, centerY float64, animate bool, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{
		Method:  MethodSetScaleAndCenter,
		Display: display,
		Scale:   scale,
		CenterX: centerX,
		CenterY: centerY,
		Animate: animate,
		ID:      id,
	})
	interruptPending(f.pending, display)

	state := f.state(display)
	state.scale = scale
	state.magnifying = scale > 1
	if !math.IsNaN(centerX) && !math.IsNaN(centerY) {
		state.center = magnification.Point{X: centerX, Y: centerY}
	}
}

// InvokeCallbacks resolves every pending animation successfully, except those a later call
// interrupted, which report failure.
func (f *FullScreen) InvokeCallbacks() {
	f.resolve(0, true, true)
}

// InvokeCallbacksFor resolves the pending animations of one display.
func (f *FullScreen) InvokeCallbacksFor(display magnification.DisplayID) {
	f.resolve(display, false, true)
}

// FailCallbacks resolves every pending animation as failed.
func (f *FullScreen) FailCallbacks() {
	f.resolve(0, true, false)
}

// FailCallbacksFor resolves the pending animations of one display as failed.
func (f *FullScreen) FailCallbacksFor(display magnification.DisplayID) {
	f.resolve(display, false, false)
}

// Pending returns the number of unresolved animations on display.
func (f *FullScreen) Pending(display magnification.DisplayID) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	taken, _ := takePending(f.pending, display, false)
	return len(taken)
}

// Calls returns the mutating calls made so far.
func (f *FullScreen) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// ResetCalls forgets the recorded calls.
func (f *FullScreen) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = nil
}

func (f *FullScreen) resolve(display magnification.DisplayID, all, success bool) {
	f.mu.Lock()
	taken, rest := takePending(f.pending, display, all)
	f.pending = rest
	results := make([]bool, len(taken))
	for i, anim := range taken {
		results[i] = anim.outcome(success)
		if results[i] {
			anim.apply()
		}
	}
	f.mu.Unlock()

	// Callbacks may call back into the magnifier.
	for i, anim := range taken {
		if anim.callback != nil {
			anim.callback(results[i])
		}
	}
}

func (f *FullScreen) state(display magnification.DisplayID) *fullScreenState {
	state, ok := f.displays[display]
	if !ok {
		state = &fullScreenState{scale: 1}
		f.displays[display] = state
	}
	return state
}

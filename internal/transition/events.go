package transition

import "github.com/joe/magnify/pkg/magnification"

// Event is the interface implemented by all transition events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// TransitionStarted is emitted when the source magnifier has been told to stop.
type TransitionStarted struct {
	Display magnification.DisplayID
	ID      string
	From    magnification.Mode
	To      magnification.Mode
	Center  magnification.Point
	Scale   float64
}

func (TransitionStarted) isEvent() {}

// TransitionSkipped is emitted when a request completes without animating.
type TransitionSkipped struct {
	Display magnification.DisplayID
	Target  magnification.Mode
	Reason  string
}

func (TransitionSkipped) isEvent() {}

// TransitionAbandoned is emitted when a newer request pre-empts an in-flight transition.
// The abandoned requester is never called back.
type TransitionAbandoned struct {
	Display magnification.DisplayID
	ID      string
	Target  magnification.Mode
}

func (TransitionAbandoned) isEvent() {}

// TransitionReversed is emitted when a request returns to the mode an in-flight transition
// was leaving, and that mode has been restored.
type TransitionReversed struct {
	Display  magnification.DisplayID
	ID       string
	Restored magnification.Mode
}

func (TransitionReversed) isEvent() {}

// CenterClipped is emitted when the captured center falls outside the full-screen
// magnification region and is replaced by the region's center.
type CenterClipped struct {
	Display magnification.DisplayID
	ID      string
	From    magnification.Point
	To      magnification.Point
}

func (CenterClipped) isEvent() {}

// TransitionCompleted is emitted when the target mode has been applied.
type TransitionCompleted struct {
	Display magnification.DisplayID
	ID      string
	Mode    magnification.Mode
	Center  magnification.Point
}

func (TransitionCompleted) isEvent() {}

// TransitionFailed is emitted when the source magnifier reports its animation was interrupted.
type TransitionFailed struct {
	Display magnification.DisplayID
	ID      string
	Target  magnification.Mode
}

func (TransitionFailed) isEvent() {}

// TransitionCancelled is emitted when the display of an in-flight transition goes away.
type TransitionCancelled struct {
	Display magnification.DisplayID
	ID      string
}

func (TransitionCancelled) isEvent() {}

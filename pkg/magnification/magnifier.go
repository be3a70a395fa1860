package magnification

// AnimationCallback is invoked once a magnifier animation ends. success is false when the
// animation was interrupted, for example by another caller changing the magnifier meanwhile.
// Implementations must deliver it asynchronously, never from inside the call that received it.
type AnimationCallback func(success bool)

// TransitionCallback receives the result of a mode transition.
type TransitionCallback func(success bool)

// FullScreenMagnifier magnifies a whole display.
type FullScreenMagnifier interface {
	IsMagnifying(display DisplayID) bool
	CenterX(display DisplayID) float64
	CenterY(display DisplayID) float64
	// MagnificationRegion returns the area of the display the magnifier can cover.
	MagnificationRegion(display DisplayID) Region
	// Reset stops magnifying with an animation and reports the outcome to callback.
	Reset(display DisplayID, callback AnimationCallback)
	SetScaleAndCenter(display DisplayID, scale, centerX, centerY float64, animate bool, id int)
}

// WindowMagnifier shows a movable magnifier lens on a display.
type WindowMagnifier interface {
	IsEnabled(display DisplayID) bool
	CenterX(display DisplayID) float64
	CenterY(display DisplayID) float64
	// PersistedScale returns the user's magnification scale from settings.
	PersistedScale() float64
	// Disable hides the lens and reports the outcome of the animation to callback.
	Disable(display DisplayID, animated bool, callback AnimationCallback)
	// Enable shows the lens. callback may be nil.
	Enable(display DisplayID, scale, centerX, centerY float64, callback AnimationCallback)
}

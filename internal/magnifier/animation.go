// Package magnifier provides simulated full-screen and window magnifiers. Animations never run
// on their own: they stay pending until the owner resolves them, which lets tests and the
// simulator decide exactly when (and how) each animation ends.
package magnifier

import (
	"github.com/joe/magnify/pkg/magnification"
)

// Exported constants.
const (
	MethodDisable           = "Disable"
	MethodEnable            = "Enable"
	MethodReset             = "Reset"
	MethodSetScaleAndCenter = "SetScaleAndCenter"
)

// Call records one mutating call made on a simulated magnifier.
type Call struct {
	Method  string
	Display magnification.DisplayID
	Scale   float64
	CenterX float64
	CenterY float64
	Animate bool
	ID      int
}

// animation is an animation waiting to be resolved.
type animation struct {
	display     magnification.DisplayID
	callback    magnification.AnimationCallback
	interrupted bool
	apply       func()
}

// outcome reports how the animation ends when resolved with success.
func (a *animation) outcome(success bool) bool {
	return success && !a.interrupted
}

// takePending removes the pending animations for display (or for every display when all is set)
// from queue and returns them along with the remaining queue.
func takePending(queue []*animation, display magnification.DisplayID, all bool) (taken, rest []*animation) {
	for _, anim := range queue {
		if all || anim.display == display {
			taken = append(taken, anim)
		} else {
			rest = append(rest, anim)
		}
	}
	return taken, rest
}

// interruptPending marks every pending animation for display as interrupted.
func interruptPending(queue []*animation, display magnification.DisplayID) {
	for _, anim := range queue {
		if anim.display == display {
			anim.interrupted = true
		}
	}
}

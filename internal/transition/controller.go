// Package transition hands magnification over between the full-screen and the window magnifier
// of a display while keeping the magnified point in place.
//
// A transition first stops the source magnifier and, once its animation reports success, starts
// the target magnifier on the point the source was centered on. Display state is independent:
// each display has at most one transition in flight.
//
// All controller state is guarded by a lock owned by the hosting service and passed to
// NewController. Requester callbacks run while that lock is held, so they must not call back into
// the controller synchronously.
package transition

import (
	"sync"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/joe/magnify/pkg/magnification"
)

// Exported constants.
const (
	SkipNotMagnifying = "source magnifier is not active"
	SkipInvalidCenter = "no center to carry over after abandoning the in-flight transition"
)

// Controller coordinates magnification mode transitions on every display.
type Controller struct {
	lock       sync.Locker
	fullScreen magnification.FullScreenMagnifier
	window     magnification.WindowMagnifier
	records    registry
	logger     bslogger.Logger
	emitter    EventEmitter

	// GestureHandlerID is passed to the full-screen magnifier whenever it is (re)applied.
	GestureHandlerID int
}

// NewController creates a controller. lock is the hosting service's lock; the controller never
// allocates its own.
func NewController(
	lock sync.Locker,
	fullScreen magnification.FullScreenMagnifier,
	window magnification.WindowMagnifier,
	logger bslogger.Logger,
) *Controller {
	return &Controller{
		lock:             lock,
		fullScreen:       fullScreen,
		window:           window,
		records:          newRegistry(),
		logger:           logger,
		GestureHandlerID: magnification.GestureHandlerID,
	}
}

// SetEventEmitter sets the event emitter. A nil emitter disables events.
// Call it before the controller is shared.
func (c *Controller) SetEventEmitter(emitter EventEmitter) {
	c.emitter = emitter
}

// GetEventEmitter returns the current event emitter.
func (c *Controller) GetEventEmitter() EventEmitter {
	return c.emitter
}

// RequestTransition acquires the lock and calls RequestTransitionLocked.
func (c *Controller) RequestTransition(
	display magnification.DisplayID,
	target magnification.Mode,
	completion magnification.TransitionCallback,
) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.RequestTransitionLocked(display, target, completion)
}

// RequestTransitionLocked transitions display to target, keeping the current magnified center
// when there is one. The caller must hold the lock.
//
// completion is called at most once, with false only when the source magnifier's animation is
// interrupted. It is never called when a later request pre-empts this one, nor when a later
// request reverses an in-flight transition (the in-flight requester is told true instead).
func (c *Controller) RequestTransitionLocked(
	display magnification.DisplayID,
	target magnification.Mode,
	completion magnification.TransitionCallback,
) {
	if completion == nil {
		completion = func(bool) {}
	}
	if !target.Valid() {
		c.logger.Errorf("Display %d: invalid target mode %d", display, target)
		completion(false)
		return
	}

	center, hasCenter := c.sourceCenterLocked(display, target)
	inFlight := c.records.get(display)

	if !hasCenter && inFlight == nil {
		c.emit(TransitionSkipped{Display: display, Target: target, Reason: SkipNotMagnifying})
		completion(true)
		return
	}

	if inFlight != nil {
		if inFlight.source == target {
			c.restoreLocked(inFlight)
			return
		}
		c.logger.Warningf("Display %d: request during transition, abandon current %s (%s)",
			display, inFlight.target, inFlight.id)
		c.expireLocked(inFlight)
		c.emit(TransitionAbandoned{Display: display, ID: inFlight.id, Target: inFlight.target})
	}

	if !hasCenter {
		c.logger.Warningf("Display %d: invalid center, ignore it", display)
		c.emit(TransitionSkipped{Display: display, Target: target, Reason: SkipInvalidCenter})
		completion(true)
		return
	}

	rec := newRecord(completion, display, target, c.window.PersistedScale(), center)
	c.records.put(rec)
	c.logger.Debugf("Display %d: transition %s to %s from (%g, %g) at scale %g",
		display, rec.id, target, center.X, center.Y, rec.scale)
	c.emit(TransitionStarted{
		Display: display,
		ID:      rec.id,
		From:    rec.source,
		To:      target,
		Center:  center,
		Scale:   rec.scale,
	})

	sink := c.animationSink(rec)
	if target == magnification.Window {
		c.fullScreen.Reset(display, sink)
	} else {
		c.window.Disable(display, true, sink)
	}
}

// IsTransitioning reports whether display has a transition in flight.
func (c *Controller) IsTransitioning(display magnification.DisplayID) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.records.get(display) != nil
}

// TransitionTarget returns the target mode of the transition in flight on display.
func (c *Controller) TransitionTarget(display magnification.DisplayID) (magnification.Mode, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	rec := c.records.get(display)
	if rec == nil {
		return 0, false
	}
	return rec.target, true
}

// InFlight returns how many displays have a transition in flight.
func (c *Controller) InFlight() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.records.len()
}

// OnDisplayRemoved drops the transition in flight on a removed display. Its requester is told
// false and any late animation result is ignored.
func (c *Controller) OnDisplayRemoved(display magnification.DisplayID) {
	c.lock.Lock()
	defer c.lock.Unlock()

	rec := c.records.get(display)
	if rec == nil {
		return
	}
	c.logger.Infof("Display %d removed, cancelling transition %s", display, rec.id)
	c.expireLocked(rec)
	c.emit(TransitionCancelled{Display: display, ID: rec.id})
	rec.callback(false)
}

// animationSink binds the source magnifier's animation result to rec.
func (c *Controller) animationSink(rec *record) magnification.AnimationCallback {
	return func(success bool) {
		c.onAnimationComplete(rec, success)
	}
}

func (c *Controller) onAnimationComplete(rec *record, success bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.logger.Debugf("Display %d: transition %s animation result %v", rec.display, rec.id, success)
	if rec.expired {
		return
	}
	c.expireLocked(rec)

	if !success {
		c.logger.Infof("Display %d: transition %s to %s interrupted", rec.display, rec.id, rec.target)
		c.emit(TransitionFailed{Display: rec.display, ID: rec.id, Target: rec.target})
		rec.callback(false)
		return
	}

	c.adjustCenterLocked(rec)
	c.applyLocked(rec, rec.target)
	c.logger.Infof("Display %d: transition %s to %s complete", rec.display, rec.id, rec.target)
	c.emit(TransitionCompleted{Display: rec.display, ID: rec.id, Mode: rec.target, Center: rec.center})
	rec.callback(true)
}

// restoreLocked cancels rec in favour of the mode it was leaving.
func (c *Controller) restoreLocked(rec *record) {
	if rec.expired {
		return
	}
	c.expireLocked(rec)
	c.applyLocked(rec, rec.source)
	c.logger.Infof("Display %d: transition %s reversed, restored %s", rec.display, rec.id, rec.source)
	c.emit(TransitionReversed{Display: rec.display, ID: rec.id, Restored: rec.source})
	rec.callback(true)
}

// adjustCenterLocked moves a full-screen target's center into the magnification region.
// Window targets keep the captured center.
func (c *Controller) adjustCenterLocked(rec *record) {
	if rec.target == magnification.Window {
		return
	}
	region := c.fullScreen.MagnificationRegion(rec.display)
	if region.ContainsPoint(rec.center) {
		return
	}
	clipped := region.Bounds().ExactCenter()
	c.emit(CenterClipped{Display: rec.display, ID: rec.id, From: rec.center, To: clipped})
	rec.center = clipped
}

func (c *Controller) applyLocked(rec *record, mode magnification.Mode) {
	if mode == magnification.Fullscreen {
		c.fullScreen.SetScaleAndCenter(rec.display, rec.scale, rec.center.X, rec.center.Y, true, c.GestureHandlerID)
		return
	}
	c.window.Enable(rec.display, rec.scale, rec.center.X, rec.center.Y, nil)
}

func (c *Controller) expireLocked(rec *record) {
	rec.expired = true
	c.records.remove(rec)
	c.logger.Debugf("Display %d: cleared transition slot (%s)", rec.display, rec.id)
}

// sourceCenterLocked returns the center of the magnifier a transition to target would stop.
func (c *Controller) sourceCenterLocked(display magnification.DisplayID, target magnification.Mode) (magnification.Point, bool) {
	if target == magnification.Fullscreen {
		if !c.window.IsEnabled(display) {
			return magnification.Point{}, false
		}
		return magnification.Point{X: c.window.CenterX(display), Y: c.window.CenterY(display)}, true
	}
	if !c.fullScreen.IsMagnifying(display) {
		return magnification.Point{}, false
	}
	return magnification.Point{X: c.fullScreen.CenterX(display), Y: c.fullScreen.CenterY(display)}, true
}

// emit sends an event if an emitter is configured.
func (c *Controller) emit(event Event) {
	if c.emitter != nil {
		c.emitter.Emit(event)
	}
}

// Package magnification defines the shared vocabulary of the magnification subsystem: the two
// magnification modes, display geometry, and the capabilities a magnifier implementation must provide.
package magnification

import "math"

// Exported constants.
const (
	// Fullscreen magnifies the whole display uniformly.
	Fullscreen Mode = 1
	// Window magnifies through a movable lens overlaid on the display.
	Window Mode = 2
	// ModeAll is the union of both modes. Other() is derived from it.
	ModeAll = Fullscreen | Window

	// DefaultDisplay is the built-in display.
	DefaultDisplay DisplayID = 0

	// GestureHandlerID identifies the magnification gesture handler as the author of a
	// full-screen magnification change.
	GestureHandlerID = 1
)

// DisplayID identifies a logical display.
type DisplayID int

// Mode is a magnification mode.
type Mode int

// Other returns the complementary mode.
func (m Mode) Other() Mode {
	return m ^ ModeAll
}

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case Fullscreen:
		return "fullscreen"
	case Window:
		return "window"
	default:
		return "unknown"
	}
}

// Valid reports whether m is exactly one of the two modes.
func (m Mode) Valid() bool {
	return m == Fullscreen || m == Window
}

// Point is a position in display pixels.
type Point struct {
	X float64
	Y float64
}

// NaNPoint is used by callers that want a magnifier to keep its current center.
func NaNPoint() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// Rect is an axis-aligned rectangle with exclusive right and bottom edges.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// ExactCenter returns the geometric center of the rectangle without rounding.
func (r Rect) ExactCenter() Point {
	return Point{
		X: float64(r.Left+r.Right) * 0.5,
		Y: float64(r.Top+r.Bottom) * 0.5,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	if r.Empty() {
		return other
	}
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Region is an area made of one or more rectangles.
type Region struct {
	rects []Rect
}

// NewRegion creates a region covering the given rectangles. Empty rectangles are ignored.
func NewRegion(rects ...Rect) Region {
	region := Region{}
	for _, r := range rects {
		if !r.Empty() {
			region.rects = append(region.rects, r)
		}
	}
	return region
}

// Empty reports whether the region covers nothing.
func (r Region) Empty() bool {
	return len(r.rects) == 0
}

// Contains reports whether the pixel (x, y) lies inside any of the region's rectangles.
func (r Region) Contains(x, y int) bool {
	for _, rect := range r.rects {
		if rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// ContainsPoint truncates p to pixel coordinates and reports whether that pixel lies in the region.
func (r Region) ContainsPoint(p Point) bool {
	return r.Contains(int(p.X), int(p.Y))
}

// Bounds returns the bounding rectangle of the region.
func (r Region) Bounds() Rect {
	var bounds Rect
	for _, rect := range r.rects {
		bounds = bounds.Union(rect)
	}
	return bounds
}

// Rects returns a copy of the rectangles making up the region.
func (r Region) Rects() []Rect {
	out := make([]Rect, len(r.rects))
	copy(out, r.rects)
	return out
}

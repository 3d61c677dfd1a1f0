package entity

// Axis identifies which grid axis a collision or ray crossing happened on
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// String returns the string representation of the axis
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "None"
	}
}

// Vec is a real-valued world point (pixels)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Rect is an axis-aligned integer rectangle in pixels.
// W and H are never negative.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, clamping negative extents to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether two rects share at least one pixel.
// Touching edges do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Center returns the real-valued midpoint
func (r Rect) Center() Vec {
	return Vec{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Offset returns the rect moved by (dx, dy)
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// FeetSensor returns the 1-pixel strip directly below the rect
func (r Rect) FeetSensor() Rect {
	return Rect{X: r.X, Y: r.Y + r.H, W: r.W, H: 1}
}

// PushingSensor returns the rect extended one pixel downward.
// A body overlapping it is about to carry or crush the owner.
func (r Rect) PushingSensor() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H + 1}
}

// FloorDiv divides rounding toward negative infinity.
// Go's / truncates toward zero, which is wrong for coordinates left of or
// above an origin.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

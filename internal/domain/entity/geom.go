package entity

// Rect is an axis-aligned bounding box in world pixels.
// Origin is top-left, +x right, +y down.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from position and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Bounds returns the rectangle itself. Lets embedding types satisfy Boxed.
func (r Rect) Bounds() Rect { return r }

// Widen grows the rectangle by dx on both the left and the right side.
func (r Rect) Widen(dx float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y, W: r.W + 2*dx, H: r.H}
}

// Boxed is anything that occupies an axis-aligned box.
type Boxed interface {
	Bounds() Rect
}

// Intersects reports strict AABB overlap.
// Touching edges (zero-area overlap) do not count.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Overlaps is Intersects for any two boxed entities.
func Overlaps(a, b Boxed) bool {
	return Intersects(a.Bounds(), b.Bounds())
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

package gamemath

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
// Y grows upward.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y }
func (r Rect) Top() float64    { return r.Y + r.H }

// CenterX returns the horizontal middle of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps reports whether both axis projections intersect with positive
// length. Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Inflate grows the rectangle by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Overlap holds the penetration depth of a mover into a fixed rectangle,
// measured from each of the mover's faces.
type Overlap struct {
	Left   float64 // mover's right edge past the tile's left edge
	Right  float64 // tile's right edge past the mover's left edge
	Top    float64 // mover's top past the tile's bottom
	Bottom float64 // tile's top past the mover's bottom
}

// Penetration measures how far mover has sunk into tile along each face.
func Penetration(mover, tile Rect) Overlap {
	return Overlap{
		Left:   mover.Right() - tile.Left(),
		Right:  tile.Right() - mover.Left(),
		Top:    mover.Top() - tile.Bottom(),
		Bottom: tile.Top() - mover.Bottom(),
	}
}

// Min returns the smallest of the four penetration depths.
func (o Overlap) Min() float64 {
	m := o.Left
	if o.Right < m {
		m = o.Right
	}
	if o.Top < m {
		m = o.Top
	}
	if o.Bottom < m {
		m = o.Bottom
	}
	return m
}

// FlipY converts the Y of a rectangle given in a top-left origin space of
// total height levelHeight into the bottom-left origin space.
func FlipY(levelHeight, y, h float64) float64 {
	return levelHeight - y - h
}

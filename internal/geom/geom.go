// geom has the small amount of 2D math the game needs
package geom

// Vec2 is a 2D vector
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Right() float32 {
	return r.X + r.Width
}

func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Intersects reports whether the two rectangles overlap. Rectangles that
// only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

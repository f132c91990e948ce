package layout

import (
	"fmt"
	"math"
)

// Rect represents a rectangle on an integer pixel grid.
// X and Y are the top-left corner and may be negative; Width and Height are dimensions.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y int32, width, height uint32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int64 {
	return int64(r.X) + int64(r.Width)
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int64 {
	return int64(r.Y) + int64(r.Height)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
// Edges may coincide.
func (r Rect) ContainsRect(other Rect) bool {
	return int64(other.X) >= int64(r.X) && int64(other.Y) >= int64(r.Y) &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return max(int64(r.X), int64(other.X)) < min(r.Right(), other.Right()) &&
		max(int64(r.Y), int64(other.Y)) < min(r.Bottom(), other.Bottom())
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int32) (Rect, error) {
	x, err := offset("translate", r.X, int64(dx))
	if err != nil {
		return Rect{}, err
	}
	y, err := offset("translate", r.Y, int64(dy))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}, nil
}

// String returns the rectangle as "{x, y, w, h}".
func (r Rect) String() string {
	return fmt.Sprintf("{%d, %d, %d, %d}", r.X, r.Y, r.Width, r.Height)
}

// offset adds delta to a coordinate, failing instead of wrapping past int32.
func offset(op string, base int32, delta int64) (int32, error) {
	v := int64(base) + delta
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, invalidArgument(op, "coordinate %d%+d overflows int32", base, delta)
	}
	return int32(v), nil
}

// grow adds delta to a dimension, failing instead of wrapping past the signed range.
func grow(op string, base uint32, delta uint32) (uint32, error) {
	v := uint64(base) + uint64(delta)
	if v > math.MaxInt32 {
		return 0, invalidArgument(op, "dimension %d+%d exceeds %d", base, delta, math.MaxInt32)
	}
	return uint32(v), nil
}

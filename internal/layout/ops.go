package layout

import "math"

// Center returns a rectangle percent the size of r, centered within it.
// percent must be in (0, 100]; 100 returns r unchanged.
//
// The offset and the size reduction are each rounded from the removed share,
// so a centered rectangle can sit one cell off true center when the removed
// span is odd.
func (r Rect) Center(percent float64) (Rect, error) {
	if !(percent > 0 && percent <= 100) {
		return Rect{}, invalidArgument("center", "percent %v is not in (0, 100]", percent)
	}
	if percent == 100 {
		return r, nil
	}
	removed := 100 - percent

	dx, err := halfPercentToSignedMagnitude(r.Width, removed)
	if err != nil {
		return Rect{}, err
	}
	dy, err := halfPercentToSignedMagnitude(r.Height, removed)
	if err != nil {
		return Rect{}, err
	}
	dw, err := percentToMagnitude(r.Width, removed)
	if err != nil {
		return Rect{}, err
	}
	dh, err := percentToMagnitude(r.Height, removed)
	if err != nil {
		return Rect{}, err
	}

	x, err := offset("center", r.X, int64(dx))
	if err != nil {
		return Rect{}, err
	}
	y, err := offset("center", r.Y, int64(dy))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: r.Width - dw, Height: r.Height - dh}, nil
}

// Shave trims the given side of r so that percent of its extent remains.
// The opposite edge stays fixed. percent must be in (0, 100); 100 is rejected
// because nothing would be shaved.
func (r Rect) Shave(percent float64, side Side) (Rect, error) {
	if !(percent > 0 && percent < 100) {
		return Rect{}, invalidArgument("shave", "percent %v is not in (0, 100)", percent)
	}
	removed := 100 - percent

	out := r
	var err error
	switch side {
	case Top:
		out.Y, out.Height, err = shaveExtent(r.Y, r.Height, removed, true)
	case Bottom:
		out.Y, out.Height, err = shaveExtent(r.Y, r.Height, removed, false)
	case Left:
		out.X, out.Width, err = shaveExtent(r.X, r.Width, removed, true)
	case Right:
		out.X, out.Width, err = shaveExtent(r.X, r.Width, removed, false)
	default:
		return Rect{}, invalidArgument("shave", "unknown side %d", uint8(side))
	}
	if err != nil {
		return Rect{}, err
	}
	return out, nil
}

// shaveExtent removes percent of extent along one axis. When leading is true the
// removed share comes off the origin side, moving the origin forward.
func shaveExtent(origin int32, extent uint32, percent float64, leading bool) (int32, uint32, error) {
	cut, err := percentToMagnitude(extent, percent)
	if err != nil {
		return 0, 0, err
	}
	if !leading {
		return origin, extent - cut, nil
	}
	shift, err := percentToSignedMagnitude(extent, percent)
	if err != nil {
		return 0, 0, err
	}
	moved, err := offset("shave", origin, int64(shift))
	if err != nil {
		return 0, 0, err
	}
	return moved, extent - cut, nil
}

// Split divides r into two pieces at percent along the axis implied by side:
// Top and Bottom stack the pieces vertically, Left and Right place them side by side.
// The first piece is the top (or left) one and holds roughly percent of the extent.
//
// Both pieces are rounded independently, then reconciled so that they touch
// exactly: an overlap pushes the second piece forward, a gap grows the first
// piece to meet it. Together they always span at least the original extent.
func (r Rect) Split(percent float64, side Side) (Rect, Rect, error) {
	if !side.Valid() {
		return Rect{}, Rect{}, invalidArgument("split", "unknown side %d", uint8(side))
	}

	if side.Vertical() {
		top, err := r.Shave(percent, Bottom)
		if err != nil {
			return Rect{}, Rect{}, err
		}
		bottom, err := r.Shave(100-percent, Top)
		if err != nil {
			return Rect{}, Rect{}, err
		}
		gap, err := verticalGap(top, bottom)
		if err != nil {
			return Rect{}, Rect{}, err
		}
		top.Height, bottom.Y, err = reconcile(gap, top.Height, bottom.Y)
		if err != nil {
			return Rect{}, Rect{}, err
		}
		return top, bottom, nil
	}

	left, err := r.Shave(percent, Right)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	right, err := r.Shave(100-percent, Left)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	gap, err := horizontalGap(left, right)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	left.Width, right.X, err = reconcile(gap, left.Width, right.X)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	return left, right, nil
}

// reconcile closes the difference between where the first piece ends and the
// second begins. A positive gap is an overlap and shifts the second origin;
// a negative gap is uncovered space and grows the first extent.
func reconcile(gap int32, firstExtent uint32, secondOrigin int32) (uint32, int32, error) {
	switch {
	case gap > 0:
		moved, err := offset("split", secondOrigin, int64(gap))
		if err != nil {
			return 0, 0, err
		}
		return firstExtent, moved, nil
	case gap < 0:
		grown, err := grow("split", firstExtent, uint32(-int64(gap)))
		if err != nil {
			return 0, 0, err
		}
		return grown, secondOrigin, nil
	default:
		return firstExtent, secondOrigin, nil
	}
}

// verticalGap returns how far the bottom edge of top reaches past the top edge of bottom.
func verticalGap(top, bottom Rect) (int32, error) {
	if top.Height > math.MaxInt32 {
		return 0, invalidArgument("split", "height %d too large to convert to int32", top.Height)
	}
	return signedDiff(top.Bottom(), int64(bottom.Y))
}

// horizontalGap returns how far the right edge of left reaches past the left edge of right.
func horizontalGap(left, right Rect) (int32, error) {
	if left.Width > math.MaxInt32 {
		return 0, invalidArgument("split", "width %d too large to convert to int32", left.Width)
	}
	return signedDiff(left.Right(), int64(right.X))
}

func signedDiff(end, start int64) (int32, error) {
	d := end - start
	if d > math.MaxInt32 || d < math.MinInt32 {
		return 0, invalidArgument("split", "difference %d does not fit int32", d)
	}
	return int32(d), nil
}

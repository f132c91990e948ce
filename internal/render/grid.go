package render

import (
	"errors"

	"github.com/grindlemire/go-tile/internal/layout"
)

// grid maps plan coordinates onto cols x rows cells.
type grid struct {
	bounds     layout.Rect
	cols, rows int
}

func newGrid(bounds layout.Rect, cols, rows int) (grid, error) {
	if bounds.IsEmpty() {
		return grid{}, errors.New("cannot render an empty screen")
	}
	if cols <= 0 || rows <= 0 {
		return grid{}, errors.New("output size must be positive")
	}
	return grid{bounds: bounds, cols: cols, rows: rows}, nil
}

// cells returns the half-open cell range [x0, x1) x [y0, y1) covered by r,
// clipped to the grid.
func (g grid) cells(r layout.Rect) (x0, y0, x1, y1 int) {
	x0 = g.scale(int64(r.X)-int64(g.bounds.X), g.bounds.Width, g.cols)
	x1 = g.scale(r.Right()-int64(g.bounds.X), g.bounds.Width, g.cols)
	y0 = g.scale(int64(r.Y)-int64(g.bounds.Y), g.bounds.Height, g.rows)
	y1 = g.scale(r.Bottom()-int64(g.bounds.Y), g.bounds.Height, g.rows)
	return x0, y0, x1, y1
}

func (g grid) scale(v int64, span uint32, cells int) int {
	c := v * int64(cells) / int64(span)
	return int(min(max(c, 0), int64(cells)))
}

package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/grindlemire/go-tile/internal/layout"
	"github.com/grindlemire/go-tile/internal/plan"
)

var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	outlineColor    = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	labelColor      = color.Black
)

// PNG encodes an image of the panes. The longer screen side is scaled to at
// most maxSide pixels; smaller screens are drawn one pixel per cell.
func PNG(w io.Writer, bounds layout.Rect, panes []plan.Pane, maxSide int) error {
	cols, rows, err := imageSize(bounds, maxSide)
	if err != nil {
		return err
	}
	g, err := newGrid(bounds, cols, rows)
	if err != nil {
		return err
	}

	dc := gg.NewContext(cols, rows)
	dc.SetColor(backgroundColor)
	dc.Clear()

	for i, p := range panes {
		fill, err := Color(p.Color, i)
		if err != nil {
			return err
		}
		x0, y0, x1, y1 := g.cells(p.Rect)
		x, y := float64(x0), float64(y0)
		pw, ph := float64(x1-x0), float64(y1-y0)
		if pw <= 0 || ph <= 0 {
			continue
		}

		dc.SetColor(fill)
		dc.DrawRectangle(x, y, pw, ph)
		dc.Fill()

		dc.SetColor(outlineColor)
		dc.SetLineWidth(2)
		dc.DrawRectangle(x, y, pw, ph)
		dc.Stroke()

		dc.SetColor(labelColor)
		dc.DrawStringAnchored(p.Name, x+pw/2, y+ph/2, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// imageSize scales bounds so the longer side is at most maxSide pixels.
func imageSize(bounds layout.Rect, maxSide int) (int, int, error) {
	if maxSide <= 0 {
		return 0, 0, fmt.Errorf("max side must be positive, got %d", maxSide)
	}
	w, h := int64(bounds.Width), int64(bounds.Height)
	longest := max(w, h)
	if longest <= int64(maxSide) {
		return int(w), int(h), nil
	}
	return int(max(w*int64(maxSide)/longest, 1)), int(max(h*int64(maxSide)/longest, 1)), nil
}

package render

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// palette is used for panes that do not name a color.
var palette = []string{"#5e81ac", "#a3be8c", "#ebcb8b", "#bf616a", "#b48ead", "#88c0d0", "#d08770"}

// Color parses a CSS color for the pane at index. An empty name picks from the
// default palette.
func Color(name string, index int) (color.RGBA, error) {
	if name == "" {
		name = palette[index%len(palette)]
	}
	c, err := csscolorparser.Parse(name)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", name, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

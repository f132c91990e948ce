// layout.go re-exports rectangle types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tile

import "github.com/grindlemire/go-tile/internal/layout"

// Rect is an axis-aligned rectangle with a signed origin and unsigned size.
type Rect = layout.Rect

// Side selects the edge an operation works from.
type Side = layout.Side

const (
	Top    = layout.Top
	Bottom = layout.Bottom
	Left   = layout.Left
	Right  = layout.Right
)

// ArgumentError describes a rejected operation input.
type ArgumentError = layout.ArgumentError

// ErrInvalidArgument is matched by every error the rectangle operations return.
var ErrInvalidArgument = layout.ErrInvalidArgument

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y int32, width, height uint32) Rect {
	return layout.NewRect(x, y, width, height)
}

// ParseSide parses a side name such as "top" or "left".
func ParseSide(name string) (Side, error) {
	return layout.ParseSide(name)
}

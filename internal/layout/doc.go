// Package layout implements percentage-based rectangle partitioning for tiling layouts.
//
// A [Rect] is an immutable screen region with a signed origin and unsigned dimensions.
// Three operations derive new regions from it:
//
//   - [Rect.Center] shrinks a region to a percentage of its size, centered in the original.
//   - [Rect.Shave] trims one edge so that a percentage of the extent remains.
//   - [Rect.Split] divides a region into two pieces that touch exactly, with no gap
//     or overlap, even though each piece is rounded independently.
//
// All conversions are checked. Out-of-range percentages and dimensions that do not fit
// a signed 32-bit magnitude are reported as [ErrInvalidArgument] rather than wrapped.
// Types are re-exported through the root tile package for public consumption.
package layout

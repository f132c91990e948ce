// Package tile splits screen rectangles by percentage for tiling window
// managers and terminal layouts.
//
// Users import this single package for the public API: the Rect type with its
// Center, Shave and Split operations, and declarative tiling plans that apply
// those operations to a whole screen.
package tile

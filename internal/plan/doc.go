// Package plan describes tiling layouts as trees of rectangle operations.
//
// A [Plan] names a screen rectangle and a root [Node]. Each node may shave
// and center its region before splitting it between two children; leaves
// become named [Pane] values. Plans are usually loaded from YAML:
//
//	name: workspace
//	width: 1920
//	height: 1080
//	root:
//	  split: {side: left, percent: 30}
//	  first:  {name: sidebar}
//	  second: {name: editor, center: 96}
package plan

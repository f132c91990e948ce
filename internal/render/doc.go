// Package render draws resolved panes for previewing a plan.
//
// Three targets are supported: a scaled character grid ([Text]), a raster
// image ([PNG]) and a live terminal screen ([Draw], [Preview]). Every target
// maps plan coordinates onto its own cell size with the same integer scaling,
// so panes that touch in the plan still touch on screen.
package render

package tile

import "github.com/grindlemire/go-tile/internal/plan"

// Plan is a screen rectangle and the tree of operations that tiles it.
type Plan = plan.Plan

// Node is one region of a Plan.
type Node = plan.Node

// PlanOp is a side and percentage pair used by a Node's shave and split steps.
type PlanOp = plan.Op

// Pane is a resolved leaf of a Plan.
type Pane = plan.Pane

// Overlap names two panes whose rectangles intersect.
type Overlap = plan.Overlap

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (*Plan, error) {
	return plan.Load(path)
}

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(data []byte) (*Plan, error) {
	return plan.Parse(data)
}

// Overlaps returns every pair of panes that share at least one cell.
func Overlaps(panes []Pane) []Overlap {
	return plan.Overlaps(panes)
}

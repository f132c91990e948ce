package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tile/internal/layout"
)

// Plan is a screen rectangle and the tree of operations that tiles it.
type Plan struct {
	Name   string `yaml:"name,omitempty"`
	X      int32  `yaml:"x,omitempty"`
	Y      int32  `yaml:"y,omitempty"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Root   *Node  `yaml:"root"`
}

// Node is one region in a plan. Shave applies first, then Center, then Split.
// A node without Split is a leaf and becomes a Pane.
type Node struct {
	Name   string   `yaml:"name,omitempty"`
	Color  string   `yaml:"color,omitempty"`
	Shave  *Op      `yaml:"shave,omitempty"`
	Center *float64 `yaml:"center,omitempty"`
	Split  *Op      `yaml:"split,omitempty"`
	First  *Node    `yaml:"first,omitempty"`
	Second *Node    `yaml:"second,omitempty"`
}

// Op is a side and percentage pair used by shave and split steps.
type Op struct {
	Side    layout.Side `yaml:"side"`
	Percent float64     `yaml:"percent"`
}

// Pane is a resolved leaf of a plan.
type Pane struct {
	Name  string
	Color string
	Path  string // position in the tree, e.g. "root.second.first"
	Rect  layout.Rect
}

// Bounds returns the screen rectangle the plan tiles.
func (p *Plan) Bounds() layout.Rect {
	return layout.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML plan. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty plan")
		}
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the structure of the plan. Percentages are checked by Resolve.
func (p *Plan) Validate() error {
	if p.Width == 0 || p.Height == 0 {
		return fmt.Errorf("screen size %dx%d must be non-zero", p.Width, p.Height)
	}
	if p.Width > math.MaxInt32 || p.Height > math.MaxInt32 {
		return fmt.Errorf("screen size %dx%d exceeds %d", p.Width, p.Height, math.MaxInt32)
	}
	if p.Root == nil {
		return errors.New("plan has no root")
	}
	return validateNode(p.Root, "root", make(map[string]string))
}

func validateNode(n *Node, path string, seen map[string]string) error {
	if n.Name != "" {
		if prev, ok := seen[n.Name]; ok {
			return fmt.Errorf("%s: name %q already used at %s", path, n.Name, prev)
		}
		seen[n.Name] = path
	}
	if n.Color != "" {
		if _, err := csscolorparser.Parse(n.Color); err != nil {
			return fmt.Errorf("%s: invalid color %q: %w", path, n.Color, err)
		}
	}
	for _, op := range []*Op{n.Shave, n.Split} {
		if op != nil && !op.Side.Valid() {
			return fmt.Errorf("%s: unknown side %v", path, op.Side)
		}
	}

	if n.Split == nil {
		if n.First != nil || n.Second != nil {
			return fmt.Errorf("%s: children without a split", path)
		}
		if n.Name == "" {
			return fmt.Errorf("%s: leaf pane has no name", path)
		}
		return nil
	}

	if n.First == nil || n.Second == nil {
		return fmt.Errorf("%s: split needs both first and second", path)
	}
	if err := validateNode(n.First, path+".first", seen); err != nil {
		return err
	}
	return validateNode(n.Second, path+".second", seen)
}

// Resolve applies the plan to its screen and returns the leaf panes in
// depth-first order, first child before second.
//
// Errors from the rectangle operations keep their identity, so
// errors.Is(err, layout.ErrInvalidArgument) holds for a bad percentage.
func (p *Plan) Resolve() ([]Pane, error) {
	if p.Root == nil {
		return nil, errors.New("plan has no root")
	}
	var panes []Pane
	if err := resolve(p.Root, p.Bounds(), "root", &panes); err != nil {
		return nil, err
	}
	return panes, nil
}

func resolve(n *Node, r layout.Rect, path string, panes *[]Pane) error {
	var err error
	if n.Shave != nil {
		r, err = r.Shave(n.Shave.Percent, n.Shave.Side)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if n.Center != nil {
		r, err = r.Center(*n.Center)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if n.Split == nil {
		*panes = append(*panes, Pane{Name: n.Name, Color: n.Color, Path: path, Rect: r})
		return nil
	}

	first, second, err := r.Split(n.Split.Percent, n.Split.Side)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if n.First == nil || n.Second == nil {
		return fmt.Errorf("%s: split needs both first and second", path)
	}
	if err := resolve(n.First, first, path+".first", panes); err != nil {
		return err
	}
	return resolve(n.Second, second, path+".second", panes)
}

// Overlap names two panes whose rectangles intersect.
type Overlap struct {
	A, B string
}

// Overlaps returns every pair of panes that share at least one cell.
// Touching edges are not overlaps.
func Overlaps(panes []Pane) []Overlap {
	var out []Overlap
	for i := range panes {
		for j := i + 1; j < len(panes); j++ {
			if panes[i].Rect.Intersects(panes[j].Rect) {
				out = append(out, Overlap{A: panes[i].Name, B: panes[j].Name})
			}
		}
	}
	return out
}

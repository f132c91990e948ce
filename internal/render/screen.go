package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-tile/internal/layout"
	"github.com/grindlemire/go-tile/internal/plan"
)

// Draw paints the panes onto the whole screen, scaled to its current size,
// and shows the result.
func Draw(s tcell.Screen, bounds layout.Rect, panes []plan.Pane) error {
	cols, rows := s.Size()
	g, err := newGrid(bounds, cols, rows)
	if err != nil {
		return err
	}

	s.Clear()
	for i, p := range panes {
		c, err := Color(p.Color, i)
		if err != nil {
			return err
		}
		style := tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Foreground(tcell.ColorBlack)

		x0, y0, x1, y1 := g.cells(p.Rect)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				s.SetContent(x, y, ' ', nil, style)
			}
		}
		drawBox(s, x0, y0, x1-1, y1-1, style)
		drawLabel(s, x0+1, y0, x1-1, p.Name, style)
	}
	s.Show()
	return nil
}

// Preview draws the panes and redraws on resize until q, Esc or Ctrl-C is pressed.
// The screen is initialised here and finalised before returning.
func Preview(s tcell.Screen, bounds layout.Rect, panes []plan.Pane) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	if err := Draw(s, bounds, panes); err != nil {
		return err
	}
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			if err := Draw(s, bounds, panes); err != nil {
				return err
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		}
	}
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// drawLabel writes name starting at x, stopping before limit.
func drawLabel(s tcell.Screen, x, y, limit int, name string, style tcell.Style) {
	for _, r := range name {
		if x >= limit {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

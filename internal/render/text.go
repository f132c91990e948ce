package render

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/grindlemire/go-tile/internal/layout"
	"github.com/grindlemire/go-tile/internal/plan"
)

const (
	emptyCell   = '.'
	overlapCell = '#'
)

// Text writes a cols x rows character map of the panes followed by a legend
// of their exact rectangles. Cells covered by more than one pane are marked '#'.
func Text(w io.Writer, bounds layout.Rect, panes []plan.Pane, cols, rows int) error {
	g, err := newGrid(bounds, cols, rows)
	if err != nil {
		return err
	}

	cells := make([][]rune, rows)
	for y := range cells {
		cells[y] = make([]rune, cols)
		for x := range cells[y] {
			cells[y][x] = emptyCell
		}
	}

	marks := labels(panes)
	for i, p := range panes {
		x0, y0, x1, y1 := g.cells(p.Rect)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if cells[y][x] != emptyCell {
					cells[y][x] = overlapCell
					continue
				}
				cells[y][x] = marks[i]
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range cells {
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	for i, p := range panes {
		fmt.Fprintf(bw, "%c %-16s %v\n", marks[i], p.Name, p.Rect)
	}
	return bw.Flush()
}

// labels picks one distinct rune per pane, preferring the first letter of its name.
func labels(panes []plan.Pane) []rune {
	const fallback = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz"

	used := make(map[rune]bool)
	out := make([]rune, len(panes))
	for i, p := range panes {
		var mark rune
		if r, _ := utf8.DecodeRuneInString(p.Name); unicode.IsLetter(r) || unicode.IsDigit(r) {
			mark = unicode.ToUpper(r)
		}
		if mark == 0 || used[mark] {
			mark = '?'
			for _, r := range fallback {
				if !used[r] {
					mark = r
					break
				}
			}
		}
		used[mark] = true
		out[i] = mark
	}
	return out
}

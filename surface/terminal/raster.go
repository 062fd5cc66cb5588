package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/shapewars/ecs"
	"github.com/plus3/shapewars/game"
	"github.com/plus3/shapewars/vec"
)

const (
	fillRune    = '█'
	outlineRune = '▓'
)

// rasterize samples every drawable at cell centres into s.cells. Later drawables
// paint over earlier ones.
func (s *Surface) rasterize() {
	n := s.cols * s.rows
	if cap(s.cells) < n {
		s.cells = make([]cell, n)
	}
	s.cells = s.cells[:n]
	clear(s.cells)

	fieldRows := s.rows - 1
	if s.cols <= 0 || fieldRows <= 0 {
		return
	}

	sx := float64(s.width) / float64(s.cols)
	sy := float64(s.height) / float64(fieldRows)

	for _, d := range s.drawing {
		s.rasterizeShape(d, sx, sy, fieldRows)
	}
	s.drawStatus(fieldRows)
}

func (s *Surface) rasterizeShape(d game.Drawable, sx, sy float64, fieldRows int) {
	points := d.Points()
	fill := tcell.StyleDefault.Foreground(color(d.Fill))
	outline := tcell.StyleDefault.Foreground(color(d.Outline))

	minCol := clampInt(int((d.Position.X-d.Radius)/sx), 0, s.cols-1)
	maxCol := clampInt(int((d.Position.X+d.Radius)/sx), 0, s.cols-1)
	minRow := clampInt(int((d.Position.Y-d.Radius)/sy), 0, fieldRows-1)
	maxRow := clampInt(int((d.Position.Y+d.Radius)/sy), 0, fieldRows-1)

	inside := func(col, row int) bool {
		p := vec.New((float64(col)+0.5)*sx, (float64(row)+0.5)*sy)
		return vec.Contains(points, p)
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !inside(col, row) {
				continue
			}
			c := cell{r: fillRune, style: fill}
			if d.OutlineThickness > 0 && (!inside(col-1, row) || !inside(col+1, row) || !inside(col, row-1) || !inside(col, row+1)) {
				c = cell{r: outlineRune, style: outline}
			}
			s.cells[row*s.cols+col] = c
		}
	}
}

func (s *Surface) drawStatus(row int) {
	msg := fmt.Sprintf("frame %d  enemies %d", s.hud.Frame, s.hud.Enemies)
	if s.hud.Paused {
		msg += "  PAUSED"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(msg) {
		if i >= s.cols {
			break
		}
		s.cells[row*s.cols+i] = cell{r: r, style: style}
	}
}

func color(c ecs.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

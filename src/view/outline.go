package view

import "lifeterm/src/universe"

//Pitch is the distance between cell outlines in the outline space
const Pitch = 3

//Line is a segment in the outline space, both ends included
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Color  Color
}

//Outline renders every alive cell as a 1x1 rectangle outline on a Pitch grid
//the outline space is Width*Pitch x Height*Pitch
type Outline struct {
	Palette Palette
}

func NewOutline(p Palette) *Outline {
	return &Outline{Palette: p}
}

func (o *Outline) Render(g Cells) *Frame {
	f := NewFrame(universe.Width*Pitch, universe.Height*Pitch, o.Palette.Dead)
	DrawLines(Outlines(g, o.Palette.Alive), f)
	return f
}

//Outlines returns four lines per alive cell
func Outlines(g Cells, c Color) []Line {
	var lines []Line
	g.Walk(func(i int, alive bool) {
		if !alive {
			return
		}
		x := (i % universe.Width) * Pitch
		y := (i / universe.Width) * Pitch
		lines = append(lines,
			Line{x, y, x, y + 1, c},
			Line{x, y + 1, x + 1, y + 1, c},
			Line{x + 1, y, x + 1, y + 1, c},
			Line{x, y, x + 1, y, c},
		)
	})
	return lines
}

//DrawLines paints the lines point by point
func DrawLines(lines []Line, p Painter) {
	for _, l := range lines {
		dx, dy := l.X2-l.X1, l.Y2-l.Y1
		steps := abs(dx)
		if abs(dy) > steps {
			steps = abs(dy)
		}
		if steps == 0 {
			p.Paint(l.X1, l.Y1, l.Color)
			continue
		}
		for s := 0; s <= steps; s++ {
			p.Paint(l.X1+dx*s/steps, l.Y1+dy*s/steps, l.Color)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

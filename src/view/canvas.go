package view

import "lifeterm/src/universe"

//Painter is a pixel surface, x and y are in [0, width) x [0, height)
type Painter interface {
	Paint(x int, y int, c Color)
}

//Cells is a read-only view of the universe
type Cells interface {
	Walk(cb func(index int, alive bool))
}

//Renderer renders the universe into a new Frame
type Renderer interface {
	Render(g Cells) *Frame
}

//Palette holds the colors of alive and dead cells
type Palette struct {
	Alive Color
	Dead  Color
}

var DefaultPalette = Palette{Alive: Green, Dead: Black}

//Canvas projects the cells to a Width x Height pixel surface, one pixel per cell
type Canvas struct {
	Palette Palette
}

func NewCanvas(p Palette) *Canvas {
	return &Canvas{Palette: p}
}

//Draw visits every cell in row-major order and paints the pixel at its column and row
func (c *Canvas) Draw(g Cells, p Painter) {
	g.Walk(func(i int, alive bool) {
		color := c.Palette.Dead
		if alive {
			color = c.Palette.Alive
		}
		p.Paint(i%universe.Width, i/universe.Width, color)
	})
}

//Render draws the cells into a new frame
func (c *Canvas) Render(g Cells) *Frame {
	f := NewFrame(universe.Width, universe.Height, c.Palette.Dead)
	c.Draw(g, f)
	return f
}

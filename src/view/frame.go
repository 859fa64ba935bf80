package view

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

//upper half block: the foreground paints the top pixel, the background the bottom one
const upperHalf = "▀"

//Frame is an in-memory pixel surface
type Frame struct {
	Width  int
	Height int
	px     []Color
	bg     Color
}

//NewFrame allocates the frame filled with the color, the fill is the frame background
func NewFrame(width int, height int, fill Color) *Frame {
	f := Frame{Width: width, Height: height, px: make([]Color, width*height), bg: fill}
	for i := range f.px {
		f.px[i] = fill
	}
	return &f
}

//Paint sets the pixel, pixels outside the frame are discarded
func (f *Frame) Paint(x int, y int, c Color) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.px[y*f.Width+x] = c
}

//At returns the pixel color
func (f *Frame) At(x int, y int) Color {
	return f.px[y*f.Width+x]
}

//Sample scales the frame to cols x rows characters of two pixels each, top pixel first
//a scaled pixel covers a block of source pixels and takes the first color in it that isn't the background
func (f *Frame) Sample(cols int, rows int) [][][2]Color {
	if cols <= 0 || rows <= 0 || f.Width == 0 || f.Height == 0 {
		return nil
	}
	xs := spans(f.Width, cols)
	ys := spans(f.Height, 2*rows)
	out := make([][][2]Color, rows)
	for cy := range out {
		out[cy] = make([][2]Color, cols)
		for cx := range out[cy] {
			out[cy][cx] = [2]Color{f.block(xs[cx], ys[2*cy]), f.block(xs[cx], ys[2*cy+1])}
		}
	}
	return out
}

//spans splits size source pixels into n consecutive [from, to) ranges, none of them empty
func spans(size int, n int) [][2]int {
	s := make([][2]int, n)
	for i := range s {
		from, to := i*size/n, (i+1)*size/n
		if to <= from {
			to = from + 1
		}
		s[i] = [2]int{from, to}
	}
	return s
}

func (f *Frame) block(xs [2]int, ys [2]int) Color {
	for y := ys[0]; y < ys[1]; y++ {
		for x := xs[0]; x < xs[1]; x++ {
			if c := f.px[y*f.Width+x]; c != f.bg {
				return c
			}
		}
	}
	return f.bg
}

//Render scales the frame to cols x rows terminal characters
//every character shows two pixel rows with the half block glyph
//equal neighbouring characters are colorized as one run
func (f *Frame) Render(cols int, rows int) string {
	var b strings.Builder
	for cy, line := range f.Sample(cols, rows) {
		//line feed char
		if cy != 0 {
			b.WriteByte('\n')
		}
		var run [2]Color
		n := 0
		flush := func() {
			if n > 0 {
				b.WriteString(aurora.Colorize(strings.Repeat(upperHalf, n), run[0].fg()|run[1].bg()).String())
			}
		}
		for _, cur := range line {
			if n > 0 && cur != run {
				flush()
				n = 0
			}
			run = cur
			n++
		}
		flush()
	}
	return b.String()
}

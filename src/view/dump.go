package view

import (
	"bufio"
	"io"

	"lifeterm/src/universe"
)

const (
	aliveGlyph = '#'
	deadGlyph  = '.'
)

//textPainter keeps one glyph per pixel
type textPainter struct {
	rows   [][]byte
	glyphs map[Color]byte
}

func newTextPainter(width int, height int, glyphs map[Color]byte) *textPainter {
	t := textPainter{rows: make([][]byte, height), glyphs: glyphs}
	for i := range t.rows {
		t.rows[i] = make([]byte, width)
	}
	return &t
}

func (t *textPainter) Paint(x int, y int, c Color) {
	g, ok := t.glyphs[c]
	if !ok {
		g = '?'
	}
	t.rows[y][x] = g
}

//Dump writes the universe as text, one line per row
func Dump(w io.Writer, g Cells) error {
	c := NewCanvas(Palette{Alive: White, Dead: Black})
	t := newTextPainter(universe.Width, universe.Height, map[Color]byte{White: aliveGlyph, Black: deadGlyph})
	c.Draw(g, t)
	bw := bufio.NewWriter(w)
	for _, r := range t.rows {
		_, _ = bw.Write(r)
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

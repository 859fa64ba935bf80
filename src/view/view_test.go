package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

type paint struct {
	x, y int
	c    Color
}

type recordingPainter struct {
	paints []paint
}

func (p *recordingPainter) Paint(x int, y int, c Color) {
	p.paints = append(p.paints, paint{x, y, c})
}

func glider() *universe.Grid {
	g := universe.New()
	g.Settle([][]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}})
	return g
}

func TestCanvasDraw(t *testing.T) {
	g := glider()
	p := &recordingPainter{}
	NewCanvas(Palette{Alive: Yellow, Dead: Blue}).Draw(g, p)
	if len(p.paints) != universe.Size {
		t.Fatalf("%d paints, expected %d", len(p.paints), universe.Size)
	}
	for i, pt := range p.paints {
		if pt.x != i%universe.Width || pt.y != i/universe.Width {
			t.Fatalf("paint %d at (%d,%d), expected row-major order", i, pt.x, pt.y)
		}
		want := Blue
		if g.Alive(i) {
			want = Yellow
		}
		if pt.c != want {
			t.Fatalf("paint %d color %v, expected %v", i, pt.c, want)
		}
	}
	//(row 1, col 2) is painted at x=2, y=1
	if p.paints[1*universe.Width+2] != (paint{2, 1, Yellow}) {
		t.Fatalf("cell (1,2) painted as %+v", p.paints[1*universe.Width+2])
	}
}

func TestCanvasRender(t *testing.T) {
	f := NewCanvas(DefaultPalette).Render(glider())
	if f.Width != universe.Width || f.Height != universe.Height {
		t.Fatalf("frame %dx%d", f.Width, f.Height)
	}
	if f.At(3, 2) != Green || f.At(2, 2) != Black {
		t.Fatalf("unexpected pixels: %v %v", f.At(3, 2), f.At(2, 2))
	}
}

func TestFrameRender(t *testing.T) {
	f := NewFrame(2, 2, Black)
	f.Paint(0, 0, Green)
	f.Paint(1, 0, Green)
	f.Paint(5, 5, Red)
	want := aurora.Colorize(upperHalf+upperHalf, aurora.GreenFg|aurora.BlackBg).String()
	if got := f.Render(2, 1); got != want {
		t.Fatalf("render %q, expected %q", got, want)
	}

	f.Paint(1, 1, Red)
	want = aurora.Colorize(upperHalf, aurora.GreenFg|aurora.BlackBg).String() +
		aurora.Colorize(upperHalf, aurora.GreenFg|aurora.RedBg).String()
	if got := f.Render(2, 1); got != want {
		t.Fatalf("render %q, expected %q", got, want)
	}
}

func TestFrameRenderScales(t *testing.T) {
	f := NewCanvas(DefaultPalette).Render(universe.New())
	out := f.Render(40, 20)
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("%d lines, expected 20", len(lines))
	}
	want := aurora.Colorize(strings.Repeat(upperHalf, 40), aurora.BlackFg|aurora.BlackBg).String()
	for i, l := range lines {
		if l != want {
			t.Fatalf("line %d is %q", i, l)
		}
	}
	if f.Render(0, 10) != "" || f.Render(10, 0) != "" {
		t.Fatalf("empty view rendered something")
	}
}

func TestFrameRenderKeepsCellsWhenShrinking(t *testing.T) {
	g := universe.New()
	g.Settle([][]int{{4, 4}, {9, 9}})
	f := NewCanvas(DefaultPalette).Render(g)
	for _, size := range [][2]int{{80, 40}, {100, 50}, {33, 12}, {200, 50}} {
		cols, rows := size[0], size[1]
		sample := f.Sample(cols, rows)
		if len(sample) != rows || len(sample[0]) != cols {
			t.Fatalf("%dx%d: sampled %d rows", cols, rows, len(sample))
		}
		alive := 0
		for _, line := range sample {
			for _, ch := range line {
				for _, c := range ch {
					if c == Green {
						alive++
					}
				}
			}
		}
		if alive < 2 {
			t.Fatalf("%dx%d: %d alive pixels shown, expected both cells", cols, rows, alive)
		}
	}

	//at 80x40 the cell (4,4) lands in the bottom half of character (3,1)
	if ch := f.Sample(80, 40)[1][3]; ch != [2]Color{Black, Green} {
		t.Fatalf("character (3,1) is %v", ch)
	}
	if !strings.Contains(f.Render(80, 40), aurora.Colorize(upperHalf, aurora.BlackFg|aurora.GreenBg).String()) {
		t.Fatalf("80x40: the alive cell isn't in the rendered text")
	}
}

func TestOutlines(t *testing.T) {
	g := universe.New()
	g.Settle([][]int{{0, 0}, {2, 5}})
	lines := Outlines(g, Green)
	if len(lines) != 8 {
		t.Fatalf("%d lines, expected 8", len(lines))
	}
	//(row 2, col 5) starts at x=15, y=6
	for _, l := range lines[4:] {
		if l.X1 < 15 || l.X2 > 16 || l.Y1 < 6 || l.Y2 > 7 {
			t.Fatalf("line %+v outside the cell outline", l)
		}
	}

	f := NewOutline(DefaultPalette).Render(g)
	if f.Width != universe.Width*Pitch || f.Height != universe.Height*Pitch {
		t.Fatalf("frame %dx%d", f.Width, f.Height)
	}
	for _, pt := range [][2]int{{15, 6}, {16, 6}, {15, 7}, {16, 7}, {0, 0}, {1, 1}} {
		if f.At(pt[0], pt[1]) != Green {
			t.Fatalf("outline pixel %v isn't painted", pt)
		}
	}
	if f.At(17, 6) != Black || f.At(3, 0) != Black {
		t.Fatalf("pixels outside outlines are painted")
	}
}

func TestDrawLines(t *testing.T) {
	p := &recordingPainter{}
	DrawLines([]Line{{0, 0, 3, 0, Red}, {5, 5, 5, 5, Cyan}, {0, 0, 2, 2, White}}, p)
	want := []paint{
		{0, 0, Red}, {1, 0, Red}, {2, 0, Red}, {3, 0, Red},
		{5, 5, Cyan},
		{0, 0, White}, {1, 1, White}, {2, 2, White},
	}
	if len(p.paints) != len(want) {
		t.Fatalf("paints %v, expected %v", p.paints, want)
	}
	for i := range want {
		if p.paints[i] != want[i] {
			t.Fatalf("paints %v, expected %v", p.paints, want)
		}
	}
}

func TestDump(t *testing.T) {
	var b bytes.Buffer
	if err := Dump(&b, glider()); err != nil {
		t.Fatalf("dump: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != universe.Height {
		t.Fatalf("%d lines, expected %d", len(lines), universe.Height)
	}
	for _, l := range lines {
		if len(l) != universe.Width {
			t.Fatalf("line of %d chars, expected %d", len(l), universe.Width)
		}
	}
	if !strings.HasPrefix(lines[1], "..#.") || !strings.HasPrefix(lines[3], ".###.") {
		t.Fatalf("unexpected dump:\n%s\n%s", lines[1], lines[3])
	}
	if strings.Count(b.String(), "#") != 5 {
		t.Fatalf("expected 5 alive cells in the dump")
	}
}

func TestParseColor(t *testing.T) {
	for i, n := range ColorNames() {
		c, err := ParseColor(strings.ToUpper(n))
		if err != nil {
			t.Fatalf("parse %q: %v", n, err)
		}
		if c != Color(i) || c.String() != n {
			t.Fatalf("parse %q: got %v", n, c)
		}
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatalf("expected an error for an unknown color")
	}
	if s := Color(42).String(); s != "Color(42)" {
		t.Fatalf("invalid color string %q", s)
	}
}

func TestConsoleOut(t *testing.T) {
	var b bytes.Buffer
	c := NewConsoleOut(&b, map[string]interface{}{"Engine": "buffered"})
	c.Start()
	for gen := 1; gen <= 20; gen++ {
		c.Refresh(universe.Status{Generation: gen, LiveCells: 3, RunningMode: universe.RunningStateRun})
	}
	c.Refresh(universe.Status{Generation: 20, LiveCells: 3, RunningMode: universe.RunningStateFinished, IterationTime: 1500 * time.Microsecond})
	out := b.String()
	for _, want := range []string{"Engine: buffered", "Generations done: 10", "Generations done: 20", "Finished:", "Last generation: 20", "Live cells: 3", "Evaluation time: 1.5ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output doesn't contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Generations done: 5\n") {
		t.Fatalf("progress printed off the 10 generations cadence")
	}
}

func TestRenderStatus(t *testing.T) {
	var c ConsoleUI
	s := c.renderStatus(universe.Status{Generation: 7, LiveCells: 5, IterationTime: 2 * time.Millisecond})
	for _, want := range []string{"Generation", ": 7", "Live Cells", ": 5", "Evaluation time", ": 2ms", "paused"} {
		if !strings.Contains(s, want) {
			t.Fatalf("status %q doesn't contain %q", s, want)
		}
	}
}

func TestLatestFrameWins(t *testing.T) {
	var c ConsoleUI
	if f, _, seq := c.latest(); f != nil || seq != 0 {
		t.Fatalf("nothing was drawn yet, got %v seq %d", f, seq)
	}
	older := NewFrame(1, 1, Black)
	newer := NewFrame(1, 1, Green)
	c.publish(older, "gen 1")
	c.publish(newer, "gen 2")
	//a late wake up from the first draw still shows the newest frame
	f, status, seq := c.latest()
	if f != newer || status != "gen 2" || seq != 2 {
		t.Fatalf("latest is %v %q seq %d", f, status, seq)
	}
}

func newPollingUI() *ConsoleUI {
	return &ConsoleUI{
		keys: make(chan rune, 1),
		errs: make(chan error, 1),
		done: make(chan struct{}),
	}
}

func TestPoll(t *testing.T) {
	c := newPollingUI()
	c.keys <- 's'
	if k, ok, err := c.Poll(time.Second); k != 's' || !ok || err != nil {
		t.Fatalf("poll key: %q %v %v", k, ok, err)
	}

	start := time.Now()
	if k, ok, err := c.Poll(10 * time.Millisecond); k != 0 || ok || err != nil {
		t.Fatalf("poll timeout: %q %v %v", k, ok, err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatalf("poll returned before the timeout")
	}

	ioErr := &IOError{Op: "main loop", Err: errors.New("tty gone")}
	c.errs <- ioErr
	if _, ok, err := c.Poll(time.Second); ok || err != ioErr {
		t.Fatalf("poll queued error: %v %v", ok, err)
	}

	close(c.done)
	_, ok, err := c.Poll(time.Second)
	if ok || !errors.Is(err, ErrClosed) {
		t.Fatalf("poll after close: %v %v", ok, err)
	}
	var ie *IOError
	if !errors.As(err, &ie) || ie.Op != "poll" {
		t.Fatalf("poll after close: %v", err)
	}
}

func TestPollPrefersQueuedErrorOnClose(t *testing.T) {
	c := newPollingUI()
	ioErr := &IOError{Op: "main loop", Err: errors.New("tty gone")}
	c.errs <- ioErr
	close(c.done)
	//either ready case returns the loop failure, never ErrClosed
	if _, _, err := c.Poll(time.Second); err != ioErr {
		t.Fatalf("poll returned %v", err)
	}
}

func TestDrawAfterClose(t *testing.T) {
	c := newPollingUI()
	close(c.done)
	if err := c.Draw(universe.New(), universe.Status{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("draw after close: %v", err)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcd"},
		{"ab", 0, ""},
	}
	for _, tt := range tests {
		if got := center(tt.text, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}

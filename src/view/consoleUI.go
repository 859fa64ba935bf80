package view

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

const (
	headerView       = "header"
	canvasView       = "canvas"
	instructionsView = "instructions"
	authorView       = "author"

	canvasTitle  = "Game Of Life"
	instructions = "Press: r: random, a: auto, e: end, s: 1step, q:quit"
	DefAuthor    = "RoKu: Rohit Kulkarni"

	minWindowHeight = 10
	keysBuffer      = 16
)

type keyBindings struct {
	key   rune
	descr string
}

//TerminalOptions represents the terminal's configurable options
type TerminalOptions struct {
	Renderer Renderer
	Author   string
	Logger   *log.Logger
}

//ConsoleUI is the interactive terminal: it renders frames and emits key events
//Draw and Poll are called by the driver goroutine, everything else runs inside the gocui main loop
type ConsoleUI struct {
	g        *gocui.Gui
	k        []keyBindings
	renderer Renderer
	author   string
	log      *log.Logger

	keys chan rune
	errs chan error
	done chan struct{}

	//the latest drawn state, the main loop always shows the newest one
	mu     sync.Mutex
	seq    uint64
	frame  *Frame
	status string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("paused", aurora.BlueFg).String(),
		universe.RunningStateRun:      aurora.Colorize("auto", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//NewViewTerminal switches the terminal to raw mode and the alternate screen
//the caller must call Close to restore the terminal
func NewViewTerminal(o TerminalOptions) (*ConsoleUI, error) {
	if o.Renderer == nil {
		o.Renderer = NewCanvas(DefaultPalette)
	}
	if o.Author == "" {
		o.Author = DefAuthor
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	t := ConsoleUI{
		renderer: o.Renderer,
		author:   o.Author,
		log:      o.Logger,
		keys:     make(chan rune, keysBuffer),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, &SetupError{Err: err}
	}

	t.k = []keyBindings{
		{'r', "random"},
		{'a', "auto"},
		{'e', "end"},
		{'s', "1step"},
		{'q', "quit"},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, &SetupError{Err: err}
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	for _, kb := range k {
		kb := kb
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			t.push(kb)
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the gocui main loop until Quit is called or the terminal fails
func (t *ConsoleUI) Start() error {
	defer close(t.done)
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		e := &IOError{Op: "main loop", Err: err}
		t.errs <- e
		return e
	}
	return nil
}

//Quit asks the main loop to stop, returns immediately
func (t *ConsoleUI) Quit() {
	select {
	case <-t.done:
		return
	default:
	}
	t.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Close restores the terminal, must be called after Start returned
func (t *ConsoleUI) Close() {
	t.g.Close()
}

//Draw renders the grid into a frame on the caller's goroutine and wakes the main loop up
//gocui delivers updates in no particular order, so the update only triggers the layout
//and the layout picks the latest published frame
func (t *ConsoleUI) Draw(g *universe.Grid, st universe.Status) error {
	select {
	case <-t.done:
		return &IOError{Op: "draw", Err: ErrClosed}
	default:
	}
	t.publish(t.renderer.Render(g), t.renderStatus(st))
	t.g.Update(func(*gocui.Gui) error {
		return nil
	})
	return nil
}

func (t *ConsoleUI) publish(frame *Frame, status string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.frame = frame
	t.status = status
	return t.seq
}

func (t *ConsoleUI) latest() (*Frame, string, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame, t.status, t.seq
}

//Poll waits for a key at most timeout
func (t *ConsoleUI) Poll(timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		return k, true, nil
	case err := <-t.errs:
		return 0, false, err
	case <-t.done:
		select {
		case err := <-t.errs:
			return 0, false, err
		default:
		}
		return 0, false, &IOError{Op: "poll", Err: ErrClosed}
	case <-timer.C:
		return 0, false, nil
	}
}

//push is called by the key handlers, it never blocks the main loop
func (t *ConsoleUI) push(kb keyBindings) {
	select {
	case t.keys <- kb.key:
	default:
		t.log.Printf("key %q (%s) dropped, the driver is busy", kb.key, kb.descr)
	}
}

func (t *ConsoleUI) renderStatus(st universe.Status) string {
	return t.renderProp("Generation", "%v", st.Generation) +
		t.renderProp("Live Cells", "%v", st.LiveCells) +
		t.renderProp("Mode", "%v", runningStateDescr[st.RunningMode]) +
		t.renderProp("Evaluation time", "%v", st.IterationTime.Round(time.Microsecond))
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf("  "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView(canvasView)
		_ = g.DeleteView(instructionsView)
		_ = g.DeleteView(authorView)
		return nil
	}
	_ = g.DeleteView(headerView)

	instrHeight := max(3, maxY*6/100)
	authorHeight := max(3, maxY*4/100)
	canvasHeight := maxY - instrHeight - authorHeight

	v, err := g.SetView(canvasView, 0, 0, maxX-1, canvasHeight-1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = canvasTitle
		v.Frame = true
	}
	frame, status, _ := t.latest()
	t.renderField(v, frame)

	v, err = g.SetView(instructionsView, 0, canvasHeight, maxX-1, canvasHeight+instrHeight-1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Instructions"
		v.Frame = true
		v.FgColor = gocui.ColorCyan
	}
	v.Clear()
	_, _ = fmt.Fprint(v, instructions+status)

	v, err = g.SetView(authorView, 0, canvasHeight+instrHeight, maxX-1, maxY-1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Author"
		v.Frame = true
		v.FgColor = gocui.ColorGreen
	}
	v.Clear()
	w, _ := v.Size()
	_, _ = fmt.Fprint(v, center(t.author, w))

	return nil
}

//renderField draws the frame scaled to the view size
func (t *ConsoleUI) renderField(v *gocui.View, frame *Frame) {
	v.Clear()
	if frame == nil {
		return
	}
	w, h := v.Size()
	_, _ = fmt.Fprint(v, frame.Render(w, h))
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView(headerView, -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+center(text, maxX))
	}
	return
}

//center pads the text to the middle of width columns, too long text is cut
func center(text string, width int) string {
	r := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(r) >= width {
		return string(r[:width])
	}
	return strings.Repeat(" ", (width-len(r))/2) + text
}

package driver

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"lifeterm/src/universe"
)

//DefTickPeriod is the default interval between automatic generations
const DefTickPeriod = time.Millisecond * 200

//key bindings
const (
	KeyQuit   = 'q'
	KeyRandom = 'r'
	KeyStep   = 's'
	KeyAuto   = 'a'
	KeyEnd    = 'e'
)

//Screen renders the universe, Draw must not keep the grid after it returns
type Screen interface {
	Draw(g *universe.Grid, st universe.Status) error
}

//Input is the source of key events
//Poll waits at most timeout for a key, ok is false when the timeout expired
type Input interface {
	Poll(timeout time.Duration) (key rune, ok bool, err error)
}

//Options represents the Driver's configurable options
type Options struct {
	TickPeriod time.Duration
	Rand       universe.Coin
	Now        func() time.Time
	Logger     *log.Logger
}

//Driver paces the generations and translates key events into grid operations
//it is the only owner of the grid
type Driver struct {
	grid     *universe.Grid
	screen   Screen
	input    Input
	period   time.Duration
	rng      universe.Coin
	now      func() time.Time
	log      *log.Logger
	auto     bool
	lastTick time.Time
}

//New creates the Driver, zero options are replaced with defaults
func New(g *universe.Grid, s Screen, in Input, o Options) *Driver {
	if o.TickPeriod <= 0 {
		o.TickPeriod = DefTickPeriod
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return &Driver{
		grid:     g,
		screen:   s,
		input:    in,
		period:   o.TickPeriod,
		rng:      o.Rand,
		now:      o.Now,
		log:      o.Logger,
		lastTick: o.Now(),
	}
}

//Auto reports whether generations advance automatically
func (d *Driver) Auto() bool {
	return d.auto
}

//Status returns the grid status with the driver's running mode
func (d *Driver) Status() universe.Status {
	st := d.grid.Status()
	st.RunningMode = universe.RunningStateManual
	if d.auto {
		st.RunningMode = universe.RunningStateRun
	}
	return st
}

//Run is the main cycle: render, wait for a key until the next tick is due, handle it, check the timer
//returns nil when the quit key is pressed, render and input errors are returned as is
func (d *Driver) Run() error {
	d.lastTick = d.now()
	for {
		if err := d.screen.Draw(d.grid, d.Status()); err != nil {
			return fmt.Errorf("render generation %d: %w", d.grid.Generation(), err)
		}
		key, ok, err := d.input.Poll(d.timeout())
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if ok && d.Handle(key) {
			d.log.Printf("quit at generation %d", d.grid.Generation())
			return nil
		}
		d.Tick(d.now())
	}
}

//Handle applies the key to the state machine and reports whether the driver must quit
//unknown keys are ignored
func (d *Driver) Handle(key rune) (quit bool) {
	d.log.Printf("key %q at generation %d", key, d.grid.Generation())
	switch key {
	case KeyQuit:
		return true
	case KeyRandom:
		d.grid.SeedRandom(d.rng)
		d.setAuto(false)
		d.log.Printf("seeded with random data, live cells: %d", d.grid.LiveCells())
	case KeyStep:
		d.grid.Step()
	case KeyAuto:
		d.setAuto(true)
	case KeyEnd:
		d.setAuto(false)
	}
	return false
}

//Tick advances one generation if the tick period elapsed and the driver is in auto mode
//the tick timestamp is moved even in manual mode
func (d *Driver) Tick(now time.Time) {
	if now.Sub(d.lastTick) < d.period {
		return
	}
	if d.auto {
		d.grid.Step()
	}
	d.lastTick = now
}

//timeout returns the time left until the next tick, never negative
func (d *Driver) timeout() time.Duration {
	t := d.period - d.now().Sub(d.lastTick)
	if t < 0 {
		return 0
	}
	return t
}

func (d *Driver) setAuto(auto bool) {
	if d.auto != auto {
		d.log.Printf("auto mode: %v at generation %d", auto, d.grid.Generation())
	}
	d.auto = auto
}

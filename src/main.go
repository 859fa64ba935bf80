package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"lifeterm/src/driver"
	"lifeterm/src/universe"
	"lifeterm/src/view"
)

type EnvOptions struct {
	interval   time.Duration
	aliveColor string
	deadColor  string
	engine     string
	pattern    string
	seed       int64
	outline    bool
	headless   bool
	maxSteps   int
	randomData bool
	dump       bool
	logFile    string
}

func defaultEnvOptions() *EnvOptions {
	return &EnvOptions{
		interval:   driver.DefTickPeriod,
		aliveColor: view.DefaultPalette.Alive.String(),
		deadColor:  view.DefaultPalette.Dead.String(),
		engine:     universe.DefEngine,
		maxSteps:   1000,
	}
}

func main() {
	os.Exit(run(initOptions()))
}

func run(eo *EnvOptions) int {
	logger, closeLog, err := newLogger(eo.logFile)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	defer closeLog()

	g, err := newGrid(eo)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	rng := newRand(eo.seed)
	logger.Printf("grid ready: engine %s, pattern %q, live cells %d", g.Engine(), eo.pattern, g.LiveCells())

	if eo.headless {
		return runHeadless(eo, g, rng)
	}

	renderer, err := newRenderer(eo)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	if err := runInteractive(eo, g, rng, renderer, logger); err != nil {
		logger.Printf("finished with error: %v", err)
		var se *view.SetupError
		if errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			fmt.Println(err)
		}
		return 1
	}
	return 0
}

//runInteractive runs the gocui main loop and the driver side by side
//the terminal is restored before the error is returned
func runInteractive(eo *EnvOptions, g *universe.Grid, rng *rand.Rand, renderer view.Renderer, logger *log.Logger) error {
	t, err := view.NewViewTerminal(view.TerminalOptions{Renderer: renderer, Logger: logger})
	if err != nil {
		return err
	}
	d := driver.New(g, t, t, driver.Options{
		TickPeriod: eo.interval,
		Rand:       rng,
		Logger:     logger,
	})

	var eg errgroup.Group
	eg.Go(t.Start)
	eg.Go(func() error {
		defer t.Quit()
		return d.Run()
	})
	err = eg.Wait()
	t.Close()
	return err
}

func runHeadless(eo *EnvOptions, g *universe.Grid, rng *rand.Rand) int {
	if eo.randomData {
		g.SeedRandom(rng)
	}
	out := view.NewConsoleOut(os.Stdout, map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", universe.Width, universe.Height),
		"Engine":         g.Engine(),
		"Max iterations": fmt.Sprintf("%v steps", eo.maxSteps),
		"Live cells":     g.LiveCells(),
	})
	driver.RunHeadless(g, eo.maxSteps, out)
	if eo.dump {
		if err := view.Dump(os.Stdout, g); err != nil {
			fmt.Println(err)
			return 1
		}
	}
	return 0
}

//newGrid creates the grid with the selected engine and the starting pattern
func newGrid(eo *EnvOptions) (*universe.Grid, error) {
	g, err := universe.NewWithEngine(eo.engine)
	if err != nil {
		return nil, err
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	if eo.pattern != "" {
		if err := g.SettleTemplate(eo.pattern); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newRenderer(eo *EnvOptions) (view.Renderer, error) {
	alive, err := view.ParseColor(eo.aliveColor)
	if err != nil {
		return nil, fmt.Errorf("alive color: %w", err)
	}
	dead, err := view.ParseColor(eo.deadColor)
	if err != nil {
		return nil, fmt.Errorf("dead color: %w", err)
	}
	p := view.Palette{Alive: alive, Dead: dead}
	if eo.outline {
		return view.NewOutline(p), nil
	}
	return view.NewCanvas(p), nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

//newLogger returns the discarding logger unless the log file is set
//the terminal owns stdout and stderr while the game is running
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "lifeterm ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}

func initOptions() (eo *EnvOptions) {

	eo = defaultEnvOptions()
	templates := make([]string, 0, len(universe.DefaultTemplates))
	for _, tmpl := range universe.DefaultTemplates {
		templates = append(templates, tmpl.Name)
	}
	flaggy.SetName("lifeterm")
	flaggy.SetDescription("Conway's Game of Life on a 100x100 bounded grid in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&eo.interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.String(&eo.aliveColor, "a", "alive", "Color of alive cells ["+strings.Join(view.ColorNames(), "|")+"]")
	flaggy.String(&eo.deadColor, "d", "dead", "Color of dead cells ["+strings.Join(view.ColorNames(), "|")+"]")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&eo.pattern, "p", "pattern", "Settle the template at start ["+strings.Join(templates, "|")+"]")
	flaggy.Int64(&eo.seed, "", "seed", "Seed of the random data, 0 seeds from the clock")
	flaggy.Bool(&eo.outline, "o", "outline", "Draw alive cells as rectangle outlines")
	flaggy.Bool(&eo.headless, "n", "headless", "Run without the terminal UI and print the progress")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Headless: limit the simulation to maxSteps")
	flaggy.Bool(&eo.randomData, "r", "random", "Headless: settle with random data")
	flaggy.Bool(&eo.dump, "", "dump", "Headless: print the final generation")
	flaggy.String(&eo.logFile, "l", "logfile", "Write the log to the file")

	flaggy.Parse()

	if !contains(universe.EngineNames(), eo.engine) {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if eo.pattern != "" && !contains(templates, eo.pattern) {
		flaggy.ShowHelpAndExit("unknown pattern")
	}
	if _, err := newRenderer(eo); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if eo.interval <= 0 {
		flaggy.ShowHelpAndExit("interval must be positive")
	}

	return
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

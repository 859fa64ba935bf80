package universe

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

//engine names
const (
	EngineBuffered = "buffered"
	EngineStaged   = "staged"
	EngineBanded   = "banded"

	DefEngine = EngineBuffered
)

const (
	DefWorkers          = 10 //default workers of the banded engine
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

//band is a range of rows [first, last) calculated by one worker
type band struct {
	first int
	last  int
}

var engines = map[string]func(g *Grid) func() (int, bool){
	EngineBuffered: func(g *Grid) func() (int, bool) { return g.bufferedIteration },
	EngineStaged:   func(g *Grid) func() (int, bool) { return g.stagedIteration },
	EngineBanded: func(g *Grid) func() (int, bool) {
		g.bands = splitBands(Height, DefWorkers)
		return g.bandedIteration
	},
}

//EngineNames returns the sorted names of the available engines
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//UseEngine switches the way the next generation is calculated
func (g *Grid) UseEngine(name string) error {
	e, ok := engines[name]
	if !ok {
		return &UnknownEngineError{Name: name}
	}
	g.nextIteration = e(g)
	g.engine = name
	return nil
}

//bufferedIteration calculates the whole next generation into the second buffer
//and then copies it to the cells
func (g *Grid) bufferedIteration() (liveCells int, changed bool) {
	for i := range g.cells {
		g.next[i] = g.cellNextState(i)
	}
	return g.commitNext()
}

//stagedIteration collects the cells to revive and to kill during the walk
//and applies both lists when the walk is done
func (g *Grid) stagedIteration() (liveCells int, changed bool) {
	toLive, toDie := g.toLive[:0], g.toDie[:0]
	for i := range g.cells {
		k := g.liveNeighbours(i)
		if g.cells[i].alive {
			if Underpopulated(k) || Overpopulated(k) {
				toDie = append(toDie, i)
			}
		} else if Reproduces(k) {
			toLive = append(toLive, i)
		}
	}
	for _, i := range toLive {
		g.cells[i].SetAlive()
	}
	for _, i := range toDie {
		g.cells[i].SetDead()
	}
	g.toLive, g.toDie = toLive, toDie
	return g.liveCells + len(toLive) - len(toDie), len(toLive)+len(toDie) > 0
}

//bandedIteration splits the field into row bands, each band is calculated by its own goroutine
//into the second buffer, the buffer is copied to the cells once all bands are done
func (g *Grid) bandedIteration() (liveCells int, changed bool) {
	var eg errgroup.Group
	for _, b := range g.bands {
		b := b
		eg.Go(func() error {
			for i := b.first * Width; i < b.last*Width; i++ {
				g.next[i] = g.cellNextState(i)
			}
			return nil
		})
	}
	//workers never fail
	_ = eg.Wait()
	return g.commitNext()
}

//commitNext writes the next generation buffer to the cells
func (g *Grid) commitNext() (liveCells int, changed bool) {
	for i := range g.cells {
		nextState := g.next[i]
		if nextState {
			liveCells++
		}
		changed = changed || nextState != g.cells[i].alive
		g.cells[i].alive = nextState
	}
	return
}

//splitBands splits rows into at most workers bands of at least DefMinRowsPerWorker rows
func splitBands(rows int, workers int) []band {
	rowsPerWorker := rows / workers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	} else if rowsPerWorker*workers < rows {
		rowsPerWorker++
	}
	bands := make([]band, 0, workers)
	for first := 0; first < rows; first += rowsPerWorker {
		last := first + rowsPerWorker
		if last > rows {
			last = rows
		}
		bands = append(bands, band{first, last})
	}
	return bands
}

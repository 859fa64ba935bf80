package universe

import (
	"fmt"
	"sort"
	"time"
)

//Grid is the universe's engine: a fixed field of cells plus the precomputed neighbour index
//the Grid isn't safe for concurrent use, it is owned by a single driver
type Grid struct {
	cells      [Size]Cell
	neighbors  *NeighborIndex
	generation int
	liveCells  int
	iterTime   time.Duration
	templates  map[string]Template
	engine     string

	//next generation buffer used by the buffered and banded engines
	next [Size]bool
	//transition lists used by the staged engine
	toLive []int
	toDie  []int
	//row bands used by the banded engine
	bands []band

	//nextIteration can be replaced by another engine
	nextIteration func() (liveCells int, changed bool)
}

//New creates the Grid with all cells dead and the default engine
func New() *Grid {
	g := Grid{
		neighbors: NewNeighborIndex(),
		templates: map[string]Template{},
	}
	for i := range g.cells {
		g.cells[i].index = i
	}
	for _, tmpl := range DefaultTemplates {
		g.AddTemplate(tmpl)
	}
	//can't fail for the default engine
	_ = g.UseEngine(DefEngine)
	return &g
}

//NewWithEngine creates the Grid which advances generations with the named engine
func NewWithEngine(name string) (*Grid, error) {
	g := New()
	if err := g.UseEngine(name); err != nil {
		return nil, err
	}
	return g, nil
}

//Engine returns the name of the engine in use
func (g *Grid) Engine() string {
	return g.engine
}

//Status returns current universe status, RunningMode is left to the driver
func (g *Grid) Status() Status {
	return Status{
		Generation:    g.generation,
		LiveCells:     g.liveCells,
		IterationTime: g.iterTime,
	}
}

//Generation returns the number of steps done since the last seeding
func (g *Grid) Generation() int {
	return g.generation
}

//LiveCells returns the count of live cells
func (g *Grid) LiveCells() int {
	return g.liveCells
}

//Cell returns a copy of the cell at index i
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

//Alive reports whether the cell at index i is alive
func (g *Grid) Alive(i int) bool {
	return g.cells[i].alive
}

//At reports whether the cell at row, col is alive, positions outside the field are dead
func (g *Grid) At(row int, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return g.cells[row*Width+col].alive
}

//Neighbors returns the neighbour indices of the site i, the caller must not modify them
func (g *Grid) Neighbors(i int) []int {
	return g.neighbors.Of(i)
}

//Walk walks the entire field in row-major order and calls the cb function for each cell
func (g *Grid) Walk(cb func(index int, alive bool)) {
	for i := range g.cells {
		cb(i, g.cells[i].alive)
	}
}

//LiveIndices returns the indices of all live cells in row-major order
func (g *Grid) LiveIndices() []int {
	res := make([]int, 0, g.liveCells)
	g.Walk(func(i int, alive bool) {
		if alive {
			res = append(res, i)
		}
	})
	return res
}

//SeedRandom populates the universe with random data: every cell flips a fair coin
//the generation counter is reset
func (g *Grid) SeedRandom(rng Coin) {
	for i := range g.cells {
		if rng.Intn(2) == 1 {
			g.cells[i].SetAlive()
		} else {
			g.cells[i].SetDead()
		}
	}
	g.generation = 0
	g.liveCells = g.countLive()
}

//Clear kills all cells and resets the generation counter
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].SetDead()
	}
	g.generation = 0
	g.liveCells = 0
}

//Settle makes the cells at the given [row,col] coordinates alive
//coordinates outside the field are skipped
func (g *Grid) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 || !inBounds(v[0], v[1]) {
			continue
		}
		g.cells[v[0]*Width+v[1]].SetAlive()
	}
	g.liveCells = g.countLive()
}

//InverseCell inverses the cell state at row, col
func (g *Grid) InverseCell(row int, col int) {
	if !inBounds(row, col) {
		return
	}
	c := &g.cells[row*Width+col]
	c.Toggle()
	if c.alive {
		g.liveCells++
	} else {
		g.liveCells--
	}
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (g *Grid) AddTemplate(tmpl Template) {
	g.templates[tmpl.Name] = tmpl
}

//SettleTemplate populates the universe with the seeding template
func (g *Grid) SettleTemplate(name string) error {
	tmpl, ok := g.templates[name]
	if !ok {
		return &UnknownTemplateError{Name: name}
	}
	g.Settle(tmpl.Coordinates)
	return nil
}

//Templates returns the sorted names of the registered templates
func (g *Grid) Templates() []string {
	names := make([]string, 0, len(g.templates))
	for k := range g.templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Step advances the universe by one generation and reports whether any cell changed
//every cell sees the state the field had at the start of the step
func (g *Grid) Step() (changed bool) {
	start := time.Now()
	g.liveCells, changed = g.nextIteration()
	g.generation++
	g.iterTime = time.Since(start)
	return
}

//Check verifies the structural invariants of the grid
func (g *Grid) Check() error {
	for i := range g.cells {
		if g.cells[i].index != i {
			return &InvariantError{i, fmt.Sprintf("cell stored with index %d", g.cells[i].index)}
		}
		nes := g.neighbors.Of(i)
		row, col := i/Width, i%Width
		if want := expectedNeighbors(row, col); len(nes) != want {
			return &InvariantError{i, fmt.Sprintf("%d neighbours, want %d", len(nes), want)}
		}
		seen := make(map[int]bool, len(nes))
		for _, n := range nes {
			switch {
			case n < 0 || n >= Size:
				return &InvariantError{i, fmt.Sprintf("neighbour %d out of range", n)}
			case n == i:
				return &InvariantError{i, "cell is its own neighbour"}
			case seen[n]:
				return &InvariantError{i, fmt.Sprintf("duplicate neighbour %d", n)}
			case !contains(g.neighbors.Of(n), i):
				return &InvariantError{i, fmt.Sprintf("neighbour %d doesn't see it back", n)}
			}
			seen[n] = true
		}
	}
	if live := g.countLive(); live != g.liveCells {
		return &InvariantError{-1, fmt.Sprintf("live counter %d, counted %d", g.liveCells, live)}
	}
	return nil
}

//liveNeighbours counts the live neighbours of the site i in the current generation
func (g *Grid) liveNeighbours(i int) int {
	k := 0
	for _, n := range g.neighbors.Of(i) {
		if g.cells[n].alive {
			k++
		}
	}
	return k
}

//cellNextState calculates the next state for the cell
func (g *Grid) cellNextState(i int) bool {
	return NextState(g.cells[i].alive, g.liveNeighbours(i))
}

//countLive calculates the count of live cells
func (g *Grid) countLive() int {
	liveCells := 0
	for i := range g.cells {
		if g.cells[i].alive {
			liveCells++
		}
	}
	return liveCells
}

func inBounds(row int, col int) bool {
	return row >= 0 && col >= 0 && row < Height && col < Width
}

func contains(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

package universe

import "time"

//fixed universe dimensions
const (
	Width  = 100
	Height = 100
	Size   = Width * Height
)

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateManual   = RunningState(0x0)
	RunningStateRun      = RunningState(0x1)
	RunningStateFinished = RunningState(0x2)
)

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [row,col] coordinates
}

//Coin is the random source used to seed the universe, *rand.Rand satisfies it
type Coin interface {
	Intn(n int) int
}

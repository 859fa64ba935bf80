package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"lifeterm/src/universe"
)

//ConsoleOut prints the progress of a headless run
type ConsoleOut struct {
	w         io.Writer
	config    map[string]interface{}
	startTime time.Time
}

func NewConsoleOut(w io.Writer, config map[string]interface{}) *ConsoleOut {
	return &ConsoleOut{w: w, config: config}
}

func (c *ConsoleOut) Start() {
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(c.config)
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) Refresh(st universe.Status) {
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
			"Evaluation time": st.IterationTime.Round(time.Microsecond),
		}
		_, _ = fmt.Fprintln(c.w, "\nFinished:")
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateRun {
		if st.Generation%10 == 0 {
			_, _ = fmt.Fprintf(c.w, "  Generations done: %v\n", st.Generation)
		}
	}
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}

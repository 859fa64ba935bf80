package driver

import "lifeterm/src/universe"

//Viewer is the interface to any viewer of a headless run
type Viewer interface {
	Start()
	Refresh(st universe.Status)
}

//RunHeadless runs the generations without a terminal
//the run stops after maxSteps generations (0 means no limit) or when a step changes nothing
//the viewer gets the status after every step and the final status with RunningStateFinished
func RunHeadless(g *universe.Grid, maxSteps int, v Viewer) universe.Status {
	v.Start()
	for {
		if maxSteps != 0 && g.Generation() >= maxSteps {
			break
		}
		changed := g.Step()
		st := g.Status()
		st.RunningMode = universe.RunningStateRun
		v.Refresh(st)
		if !changed || g.LiveCells() == 0 {
			break
		}
	}
	st := g.Status()
	st.RunningMode = universe.RunningStateFinished
	v.Refresh(st)
	return st
}

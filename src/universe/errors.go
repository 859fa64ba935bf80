package universe

import "fmt"

//InvariantError reports a broken structural invariant of the grid
//it means a bug and is fatal for the caller
type InvariantError struct {
	Index  int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("grid invariant violated at index %d: %s", e.Index, e.Reason)
}

//UnknownEngineError is returned when the engine name is not registered
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine %q", e.Name)
}

//UnknownTemplateError is returned when the template name is not registered
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.Name)
}

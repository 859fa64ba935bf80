package view

import (
	"errors"
	"fmt"
)

//ErrClosed is returned when the terminal main loop is already stopped
var ErrClosed = errors.New("terminal is closed")

//SetupError means the terminal couldn't be switched to raw mode or the alternate screen
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("terminal setup: %v", e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

//IOError means the terminal failed while running
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

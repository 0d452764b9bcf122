// Package fault defines the device's fatal error codes.
// A fault is unrecoverable for the running game: it is raised with panic and
// caught once by the console, which then shows the code on the digit display.
package fault

import (
	"errors"
	"fmt"
)

// Code is the numeric error code scrolled on the digit display.
type Code uint16

const (
	CodeNotTrack      Code = 100 // Next on a non-track node
	CodeResourceTaken Code = 200 // second take of a singleton arena
	CodeNoSwitch      Code = 301 // toggle on a switch with no active direction
	CodeUnknownTimer  Code = 403 // timer removal for an unknown platform
)

// Fault is a fatal device error.
type Fault struct {
	Code Code
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %d: %s", f.Code, f.Msg)
}

// Raise panics with a *Fault carrying the given code.
func Raise(code Code, format string, args ...any) {
	panic(&Fault{Code: code, Msg: fmt.Sprintf(format, args...)})
}

// Recover converts a recovered panic value into a *Fault.
// Values that are not faults are returned as nil, ok=false.
func Recover(r any) (f *Fault, ok bool) {
	if r == nil {
		return nil, false
	}
	if err, isErr := r.(error); isErr {
		if errors.As(err, &f) {
			return f, true
		}
	}
	return nil, false
}

package fsm

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrConfiguration is returned when an FSM cannot be built from the supplied
// configuration, either because there is none, it cannot be decoded, or it
// fails validation. Err holds the underlying cause, if any.
type ErrConfiguration struct {
	Reason g.String
	Err    error
}

func (e *ErrConfiguration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fsm: invalid configuration: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("fsm: invalid configuration: %s", e.Reason)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrConfiguration) Unwrap() error { return e.Err }

// ErrInvalidState is returned when the FSM is asked to enter a state that has
// not been declared in its configuration.
type ErrInvalidState struct {
	State State
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("fsm: state %q is not declared", e.State)
}

// ErrInvalidTransition is returned when no matching transition is found for the given event
// from the current state.
type ErrInvalidTransition struct {
	From  State
	Event Event
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("fsm: no matching transition for event %q from state %q", e.Event, e.From)
}

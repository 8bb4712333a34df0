package fsm

import "github.com/enetx/g"

// StateMachine is the behaviour shared by FSM and SyncFSM.
type StateMachine interface {
	Current() State
	ChangeState(State) error
	Trigger(Event) error
	Reset()
	States(...Event) g.Slice[State]
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	ClearHistory()
	History() g.Slice[State]
	ToDOT() g.String
}

// Interface compliance checks.
var (
	_ StateMachine = (*FSM)(nil)
	_ StateMachine = (*SyncFSM)(nil)
)

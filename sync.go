package fsm

import (
	"sync"

	"github.com/enetx/g"
)

// SyncFSM is a thread-safe wrapper around an FSM.
// It protects all state-mutating and state-reading operations with a sync.RWMutex,
// making it safe for use across multiple goroutines.
// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
type SyncFSM struct {
	fsm *FSM
	mu  sync.RWMutex
}

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// ChangeState is the thread-safe version of FSM.ChangeState.
func (sf *SyncFSM) ChangeState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.ChangeState(s)
}

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically executes a state transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM) States(event ...Event) g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States(event...)
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// CanUndo is the thread-safe version of FSM.CanUndo.
func (sf *SyncFSM) CanUndo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanUndo()
}

// CanRedo is the thread-safe version of FSM.CanRedo.
func (sf *SyncFSM) CanRedo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanRedo()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}

// History is the thread-safe version of FSM.History.
// It returns a copy of the state transition history.
func (sf *SyncFSM) History() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// ToDOT is the thread-safe version of FSM.ToDOT.
func (sf *SyncFSM) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

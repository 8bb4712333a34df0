// Package fsm provides a finite state machine (FSM) with a linear, undoable
// transition history. States and their event tables are declared up front in
// a Config; the machine then moves between them either by event (Trigger) or
// directly (ChangeState), and every committed move can be undone and redone.
// It is built with types and utilities from the github.com/enetx/g library.
package fsm

import (
	"log/slog"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String
)

// FSM is the main state machine struct.
// It is not safe for concurrent use; see SyncFSM.
type FSM struct {
	cfg    *Config
	index  g.Map[State, Transitions]
	log    g.Slice[State]
	cursor int
	redo   int

	strict bool
	logger *slog.Logger
}

// Option configures an FSM at construction time.
type Option func(*FSM)

// WithLogger makes the FSM emit debug records for every history change.
func WithLogger(l *slog.Logger) Option {
	return func(f *FSM) {
		if l != nil {
			f.logger = l.WithGroup("fsm")
		}
	}
}

// WithValidation makes New reject configurations that fail Config.Validate.
func WithValidation() Option {
	return func(f *FSM) { f.strict = true }
}

// New creates a new FSM from the given configuration.
// The machine starts in cfg.Initial with an empty undo and redo history.
func New(cfg *Config, opts ...Option) (*FSM, error) {
	if cfg == nil {
		return nil, &ErrConfiguration{Reason: "config is nil"}
	}

	f := &FSM{cfg: cfg}
	for _, opt := range opts {
		opt(f)
	}

	if f.strict {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	f.index = cfg.index()
	f.log = g.Slice[State]{cfg.Initial}

	return f, nil
}

// Clone creates a new FSM instance with the same configuration but a fresh history.
func (f *FSM) Clone() *FSM {
	return &FSM{
		cfg:    f.cfg,
		index:  f.index,
		log:    g.Slice[State]{f.cfg.Initial},
		strict: f.strict,
		logger: f.logger,
	}
}

// Sync wraps the FSM in a SyncFSM. The FSM must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Config returns the configuration the FSM was created with.
func (f *FSM) Config() *Config { return f.cfg }

// Initial returns the FSM's initial state.
func (f *FSM) Initial() State { return f.cfg.Initial }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.log[f.cursor] }

// Cursor returns the position of the current state in the history.
func (f *FSM) Cursor() int { return f.cursor }

// CanUndo reports whether Undo would succeed.
func (f *FSM) CanUndo() bool { return f.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (f *FSM) CanRedo() bool { return f.redo > 0 }

// History returns a copy of the reachable history: every state up to the
// current one, followed by the states that can still be redone.
func (f *FSM) History() g.Slice[State] {
	return f.log.Clone()
}

// ChangeState moves the FSM directly to the given state, ignoring the
// transition tables. The state must be declared in the configuration.
// Any redo history is discarded.
func (f *FSM) ChangeState(s State) error {
	if _, ok := f.index[s]; !ok {
		return &ErrInvalidState{State: s}
	}

	f.advance(s)
	f.debug("state changed", "state", s)

	return nil
}

// Trigger attempts to transition using the given event from the current state.
// Any redo history is discarded.
func (f *FSM) Trigger(event Event) error {
	from := f.Current()

	to, ok := f.index[from][event]
	if !ok {
		return &ErrInvalidTransition{From: from, Event: event}
	}

	f.advance(to)
	f.debug("transition", "from", from, "event", event, "to", to)

	return nil
}

// advance drops the undone tail and appends s as the new current state.
func (f *FSM) advance(s State) {
	f.log = append(f.log[:f.cursor+1], s)
	f.cursor++
	f.redo = 0
}

// Reset moves the FSM back to its initial state as a new history entry.
// Unlike ChangeState and Trigger, Reset keeps the redo history: the undone
// states stay reachable by Redo after the reset entry.
func (f *FSM) Reset() {
	tail := f.log[f.cursor+1:].Clone()

	f.log = append(f.log[:f.cursor+1], f.cfg.Initial)
	f.log = append(f.log, tail...)
	f.cursor++

	f.debug("reset", "state", f.cfg.Initial, "redo", f.redo)
}

// States returns the declared states in declaration order. If an event is
// given, only the states whose transition table handles it are returned.
func (f *FSM) States(event ...Event) g.Slice[State] {
	var e Event
	if len(event) > 0 {
		e = event[0]
	}

	var states g.Slice[State]

	for def := range f.cfg.States.Iter() {
		if e != "" {
			if _, ok := def.Transitions[e]; !ok {
				continue
			}
		}

		states.Push(def.Name)
	}

	return states
}

// Undo steps back to the previous state in the history.
// It returns false if the FSM is already at the oldest entry.
func (f *FSM) Undo() bool {
	if f.cursor == 0 {
		return false
	}

	f.cursor--
	f.redo++
	f.debug("undo", "state", f.Current(), "redo", f.redo)

	return true
}

// Redo steps forward to the most recently undone state.
// It returns false if there is nothing to redo.
func (f *FSM) Redo() bool {
	if f.redo == 0 {
		return false
	}

	f.cursor++
	f.redo--
	f.debug("redo", "state", f.Current(), "redo", f.redo)

	return true
}

// ClearHistory forgets all history and puts the FSM back in its initial state.
func (f *FSM) ClearHistory() {
	f.log = g.Slice[State]{f.cfg.Initial}
	f.cursor = 0
	f.redo = 0

	f.debug("history cleared")
}

func (f *FSM) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

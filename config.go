package fsm

import (
	"github.com/enetx/g"
)

type (
	// Transitions maps an event to the state it leads to.
	Transitions = g.Map[Event, State]

	// StateDef declares a state and the events it handles.
	StateDef struct {
		Name        State
		Transitions Transitions
	}

	// Config is the static description of an FSM.
	// States keeps declaration order, which FSM.States reports.
	// A Config must not be modified after it has been passed to New.
	Config struct {
		Initial State
		States  g.Slice[StateDef]
	}
)

// NewConfig starts a Config with the given initial state and no declared states.
func NewConfig(initial State) *Config {
	return &Config{Initial: initial}
}

// State declares a state with its transition table.
// Declaring the same name twice replaces the earlier table but keeps its position.
func (c *Config) State(name State, transitions Transitions) *Config {
	if transitions == nil {
		transitions = Transitions{}
	}

	for i := range c.States {
		if c.States[i].Name == name {
			c.States[i].Transitions = transitions
			return c
		}
	}

	c.States.Push(StateDef{Name: name, Transitions: transitions})

	return c
}

// Validate checks that the initial state and every transition target are
// declared and that no state is declared twice.
func (c *Config) Validate() error {
	declared := g.NewSet[State]()

	for def := range c.States.Iter() {
		if def.Name == "" {
			return &ErrConfiguration{Reason: "state with empty name"}
		}

		if declared.Contains(def.Name) {
			return &ErrConfiguration{Reason: g.Format("state {} declared twice", def.Name)}
		}

		declared.Insert(def.Name)
	}

	if !declared.Contains(c.Initial) {
		return &ErrConfiguration{
			Reason: g.Format("initial state {} is not declared", c.Initial),
			Err:    &ErrInvalidState{State: c.Initial},
		}
	}

	for def := range c.States.Iter() {
		for event, to := range def.Transitions {
			if !declared.Contains(to) {
				return &ErrConfiguration{
					Reason: g.Format("event {} of state {} leads to undeclared state", event, def.Name),
					Err:    &ErrInvalidState{State: to},
				}
			}
		}
	}

	return nil
}

// index builds the lookup table used by the FSM. Later declarations of a
// duplicated name win, matching State.
func (c *Config) index() g.Map[State, Transitions] {
	idx := g.NewMap[State, Transitions]()

	for def := range c.States.Iter() {
		transitions := def.Transitions
		if transitions == nil {
			transitions = Transitions{}
		}

		idx[def.Name] = transitions
	}

	return idx
}

package fsm_test

import (
	"sync"
	"testing"

	. "github.com/uhalushka/fsm"
)

func TestSyncFSM_ConcurrentTransitions(t *testing.T) {
	sf := newFSM(t, lightSwitch()).Sync()

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sf.ChangeState("on")
			_ = sf.Current()
			_ = sf.States("turnOff")
		}()
	}

	wg.Wait()

	assertEqual(t, sf.Current(), State("on"))
	assertEqual(t, sf.History().Len(), 51)
}

func TestSyncFSM_ConcurrentUndoRedo(t *testing.T) {
	sf := newFSM(t, lightSwitch()).Sync()

	for range 10 {
		assertNoError(t, sf.Trigger("turnOn"))
		assertNoError(t, sf.Trigger("turnOff"))
	}

	var wg sync.WaitGroup

	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sf.Undo()
		}()
		go func() {
			defer wg.Done()
			sf.Redo()
		}()
	}

	wg.Wait()

	for sf.Redo() {
	}

	assertFalse(t, sf.CanRedo())
	assertTrue(t, sf.CanUndo())
	assertEqual(t, sf.Current(), State("off"))
	assertEqual(t, sf.History().Len(), 21)
}

func TestSyncFSM_Delegates(t *testing.T) {
	var sm StateMachine = newFSM(t, lightSwitch()).Sync()

	assertError(t, sm.Trigger("bogus"))
	assertNoError(t, sm.Trigger("turnOn"))
	sm.Reset()
	assertEqual(t, sm.Current(), State("off"))
	assertTrue(t, sm.Undo())
	assertTrue(t, sm.ToDOT().Contains(`"on" [label="on", fillcolor="#90ee90"`))

	sm.ClearHistory()
	assertFalse(t, sm.CanUndo())
	assertEqual(t, sm.States().Len(), 2)
}

package fsm_test

import (
	"fmt"

	"github.com/uhalushka/fsm"
)

func Example() {
	cfg := fsm.NewConfig("off").
		State("off", fsm.Transitions{"turnOn": "on"}).
		State("on", fsm.Transitions{"turnOff": "off"})

	f, err := fsm.New(cfg)
	if err != nil {
		panic(err)
	}

	_ = f.Trigger("turnOn")
	fmt.Println(f.Current())

	f.Undo()
	fmt.Println(f.Current())

	f.Redo()
	fmt.Println(f.Current())

	_ = f.Trigger("turnOff")
	fmt.Println(f.Current(), f.Redo())

	// Output:
	// on
	// off
	// on
	// off false
}

func ExampleParseConfig() {
	cfg, err := fsm.ParseConfig([]byte(`
initial: draft
states:
  draft:
    transitions: {submit: review}
  review:
    transitions: {approve: published, reject: draft}
  published:
`), fsm.FormatYAML)
	if err != nil {
		panic(err)
	}

	f, err := fsm.New(cfg, fsm.WithValidation())
	if err != nil {
		panic(err)
	}

	fmt.Println([]fsm.State(f.States()))
	fmt.Println([]fsm.State(f.States("reject")))

	// Output:
	// [draft review published]
	// [review]
}

func ExampleFSM_Trigger_error() {
	f, _ := fsm.New(fsm.NewConfig("off").State("off", fsm.Transitions{"turnOn": "on"}))

	err := f.Trigger("bogus")
	fmt.Println(err)
	fmt.Println(f.Current())

	// Output:
	// fsm: no matching transition for event "bogus" from state "off"
	// off
}

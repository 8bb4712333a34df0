package fsm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// Format is an encoding a Config can be read from.
type Format g.String

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// stateBody is the encoded form of a single state under the "states" key.
type stateBody struct {
	Transitions map[Event]State `json:"transitions" yaml:"transitions"`
}

// ParseConfig decodes a Config from data in the given format.
// The result is not validated; see Config.Validate and WithValidation.
func ParseConfig(data []byte, format Format) (*Config, error) {
	cfg := new(Config)

	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, &ErrConfiguration{Reason: g.Format("unsupported format {}", format)}
	}

	if err != nil {
		return nil, &ErrConfiguration{Reason: g.Format("cannot decode {}", format), Err: err}
	}

	return cfg, nil
}

// LoadConfig reads a Config from a file. The format is chosen by extension:
// .json for JSON, .yaml or .yml for YAML.
func LoadConfig(path string) (*Config, error) {
	var format Format

	switch g.String(filepath.Ext(path)).Lower() {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, &ErrConfiguration{Reason: g.Format("unknown config file extension in {}", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrConfiguration{Reason: "cannot read config file", Err: err}
	}

	return ParseConfig(data, format)
}

// MarshalJSON implements the json.Marshaler interface.
// States are written in declaration order.
func (c Config) MarshalJSON() ([]byte, error) {
	b := new(bytes.Buffer)

	initial, err := json.Marshal(c.Initial)
	if err != nil {
		return nil, err
	}

	b.WriteString(`{"initial":`)
	b.Write(initial)
	b.WriteString(`,"states":{`)

	for i, def := range c.States {
		if i > 0 {
			b.WriteByte(',')
		}

		name, err := json.Marshal(def.Name)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(stateBody{Transitions: plainTransitions(def.Transitions)})
		if err != nil {
			return nil, err
		}

		b.Write(name)
		b.WriteByte(':')
		b.Write(body)
	}

	b.WriteString("}}")

	return b.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The order of the keys under "states" becomes the declaration order.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw struct {
		Initial State           `json:"initial"`
		States  json.RawMessage `json:"states"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var states g.Slice[StateDef]

	if len(raw.States) > 0 && !bytes.Equal(raw.States, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(raw.States))

		tok, err := dec.Token()
		if err != nil {
			return err
		}

		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return fmt.Errorf("states must be an object, got %v", tok)
		}

		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}

			var body stateBody
			if err := dec.Decode(&body); err != nil {
				return fmt.Errorf("state %q: %w", tok, err)
			}

			states.Push(StateDef{Name: State(tok.(string)), Transitions: Transitions(body.Transitions)})
		}

		if _, err := dec.Token(); err != nil {
			return err
		}
	}

	c.Initial = raw.Initial
	c.States = states

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
// States are written in declaration order.
func (c Config) MarshalYAML() (any, error) {
	states := &yaml.Node{Kind: yaml.MappingNode}

	for def := range c.States.Iter() {
		body := new(yaml.Node)
		if err := body.Encode(stateBody{Transitions: plainTransitions(def.Transitions)}); err != nil {
			return nil, err
		}

		states.Content = append(states.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(def.Name)},
			body,
		)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "initial"},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c.Initial)},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "states"},
			states,
		},
	}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// The order of the keys under "states" becomes the declaration order.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: config must be a mapping", value.Line)
	}

	var (
		initial State
		states  g.Slice[StateDef]
	)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		switch key.Value {
		case "initial":
			if err := val.Decode(&initial); err != nil {
				return err
			}
		case "states":
			if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
				continue
			}

			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: states must be a mapping", val.Line)
			}

			for j := 0; j+1 < len(val.Content); j += 2 {
				name, def := val.Content[j], val.Content[j+1]

				var body stateBody
				if err := def.Decode(&body); err != nil {
					return fmt.Errorf("state %q: %w", name.Value, err)
				}

				states.Push(StateDef{Name: State(name.Value), Transitions: Transitions(body.Transitions)})
			}
		}
	}

	c.Initial = initial
	c.States = states

	return nil
}

func plainTransitions(t Transitions) map[Event]State {
	if t == nil {
		return map[Event]State{}
	}

	return map[Event]State(t)
}

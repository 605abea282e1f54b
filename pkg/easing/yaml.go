package easing

import "gopkg.in/yaml.v3"

// UnmarshalYAML accepts either a bare name ("smooth_step") or a mapping
// with kind and power. A missing power means DefaultPower.
func (e *Easing) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := Parse(node.Value, DefaultPower)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	}

	var raw struct {
		Kind  string   `yaml:"kind"`
		Power *float32 `yaml:"power"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	power := DefaultPower
	if raw.Power != nil {
		power = *raw.Power
	}
	parsed, err := Parse(raw.Kind, power)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML writes the short scalar form when no power is set.
func (e Easing) MarshalYAML() (interface{}, error) {
	if e.Kind != AbsoluteValuePow {
		return e.Kind.String(), nil
	}
	return map[string]interface{}{"kind": e.Kind.String(), "power": e.Power}, nil
}

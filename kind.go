package anneal

import (
	"encoding"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind selects the decay formula a Schedule evaluates.
type Kind int

const (
	Exponential Kind = iota + 1 // initial * rate^(step/decaySteps)
	Cosine                      // half-cosine ramp from initial to min
	InverseTime                 // initial / (1 + rate*step/decaySteps)
	Polynomial                  // (initial-min) * (1 - step/decaySteps)^power + min
	Piecewise                   // constant pieces between explicit boundaries
	Constant                    // fixed initial value
	Geometric                   // max(initial * rate^floor(step), min)
	Arithmetic                  // max(initial - rate*step, min)
	TimeBased                   // v[i+1] = v[i] / (1 + rate*i)
	StepDecay                   // initial * rate^floor(step/dropEvery)
)

var (
	kindNames = [...]string{
		Exponential: "exponential",
		Cosine:      "cosine",
		InverseTime: "inverse_time",
		Polynomial:  "polynomial",
		Piecewise:   "piecewise",
		Constant:    "constant",
		Geometric:   "geometric",
		Arithmetic:  "arithmetic",
		TimeBased:   "time_based",
		StepDecay:   "step_decay",
	}
	kindByName = map[string]Kind{
		"exponential":  Exponential,
		"cosine":       Cosine,
		"inverse_time": InverseTime,
		"polynomial":   Polynomial,
		"piecewise":    Piecewise,
		"constant":     Constant,
		"geometric":    Geometric,
		"arithmetic":   Arithmetic,
		"time_based":   TimeBased,
		"step_decay":   StepDecay,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Kind(0)
	_ json.Marshaler           = Kind(0)
	_ json.Unmarshaler         = (*Kind)(nil)
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
	_ yaml.Marshaler           = Kind(0)
	_ yaml.Unmarshaler         = (*Kind)(nil)
)

// IsValid reports whether k is a known schedule kind.
func (k Kind) IsValid() bool {
	return k >= Exponential && k <= StepDecay
}

// String returns the name of the kind ("exponential", "cosine", ...).
// For invalid values it returns "Kind(n)".
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := kindByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, text)
	}
	*k = v
	return nil
}

// MarshalJSON implements json.Marshaler. Kind serializes as a JSON string.
func (k Kind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: invalid kind: %s", ErrInvalidConfig, data)
	}
	return k.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler. Kind serializes as a YAML string.
func (k Kind) MarshalYAML() (interface{}, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Expects a YAML string.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: invalid kind: %s", ErrInvalidConfig, node.Value)
	}
	return k.UnmarshalText([]byte(s))
}

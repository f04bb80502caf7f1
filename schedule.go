package anneal

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Schedule evaluates one decay formula. It is immutable after construction
// and safe for concurrent use without locking; At is a pure function of the
// step.
type Schedule struct {
	cfg  Config
	span float64 // initial - min, precomputed for cosine/polynomial
}

// New creates a Schedule from the given config.
// Zero-valued Power defaults to 1; invalid or inconsistent parameters return
// an error wrapping ErrInvalidConfig. This is the only point where errors can
// occur: At never fails.
func New(cfg Config) (*Schedule, error) {
	c := cfg.clone()

	// Power: zero → 1 (linear polynomial decay).
	if c.Kind == Polynomial && c.Power == 0 {
		c.Power = 1
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &Schedule{
		cfg:  c,
		span: c.Initial - c.MinValue,
	}, nil
}

// Kind returns the schedule's kind tag.
func (s *Schedule) Kind() Kind {
	return s.cfg.Kind
}

// Config returns a copy of the normalized config (defaults applied, slices
// duplicated). Mutating the result does not affect the schedule.
func (s *Schedule) Config() Config {
	return s.cfg.clone()
}

// Sequence returns the schedule evaluated at each integer step 0..n-1.
// Returns nil for n <= 0.
func (s *Schedule) Sequence(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.At(float64(i))
	}
	return out
}

// MarshalJSON implements json.Marshaler. A Schedule serializes as its config.
func (s *Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.cfg)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the schedule through New, so invalid configs are rejected.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := New(cfg)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// MarshalYAML implements yaml.Marshaler. A Schedule serializes as its config.
func (s *Schedule) MarshalYAML() (interface{}, error) {
	return s.cfg, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// It rebuilds the schedule through New, so invalid configs are rejected.
func (s *Schedule) UnmarshalYAML(node *yaml.Node) error {
	var cfg Config
	if err := node.Decode(&cfg); err != nil {
		return err
	}
	rebuilt, err := New(cfg)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// Compile-time interface checks.
var (
	_ json.Marshaler   = (*Schedule)(nil)
	_ json.Unmarshaler = (*Schedule)(nil)
	_ yaml.Marshaler   = (*Schedule)(nil)
	_ yaml.Unmarshaler = (*Schedule)(nil)
)

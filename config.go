package anneal

import "fmt"

// Config holds the static parameters of a schedule. Which fields matter
// depends on Kind; unused fields are ignored. A Config is copied into the
// Schedule at construction and never consulted again, so callers may reuse
// or discard it freely.
type Config struct {
	Kind       Kind      `json:"kind" yaml:"kind"`
	Initial    float64   `json:"initial" yaml:"initial"`
	DecayRate  float64   `json:"decay_rate,omitempty" yaml:"decay_rate,omitempty"`
	DecaySteps float64   `json:"decay_steps,omitempty" yaml:"decay_steps,omitempty"`
	MinValue   float64   `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	Power      float64   `json:"power,omitempty" yaml:"power,omitempty"` // zero → 1
	Staircase  bool      `json:"staircase,omitempty" yaml:"staircase,omitempty"`
	Cycle      bool      `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	DropEvery  float64   `json:"drop_every,omitempty" yaml:"drop_every,omitempty"`
	Boundaries []float64 `json:"boundaries,omitempty" yaml:"boundaries,omitempty"`
	Values     []float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// validate checks kind-specific parameter invariants. Called once by New;
// defaults have already been applied.
func (c Config) validate() error {
	if !c.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, int(c.Kind))
	}

	switch c.Kind {
	case Exponential, InverseTime:
		if c.DecayRate <= 0 {
			return fmt.Errorf("%w: decay rate %g must be positive", ErrInvalidConfig, c.DecayRate)
		}
		if c.DecaySteps <= 0 {
			return fmt.Errorf("%w: decay steps %g must be positive", ErrInvalidConfig, c.DecaySteps)
		}

	case Cosine:
		if c.DecaySteps <= 0 {
			return fmt.Errorf("%w: decay steps %g must be positive", ErrInvalidConfig, c.DecaySteps)
		}
		if c.MinValue > c.Initial {
			return fmt.Errorf("%w: min value %g exceeds initial %g", ErrInvalidConfig, c.MinValue, c.Initial)
		}

	case Polynomial:
		if c.DecaySteps <= 0 {
			return fmt.Errorf("%w: decay steps %g must be positive", ErrInvalidConfig, c.DecaySteps)
		}
		if c.Power <= 0 {
			return fmt.Errorf("%w: power %g must be positive", ErrInvalidConfig, c.Power)
		}
		if c.MinValue > c.Initial {
			return fmt.Errorf("%w: min value %g exceeds initial %g", ErrInvalidConfig, c.MinValue, c.Initial)
		}

	case Piecewise:
		if len(c.Boundaries) == 0 {
			return fmt.Errorf("%w: piecewise requires at least one boundary", ErrInvalidConfig)
		}
		if len(c.Values) != len(c.Boundaries)+1 {
			return fmt.Errorf("%w: %d values for %d boundaries, want exactly one more value than boundaries",
				ErrInvalidConfig, len(c.Values), len(c.Boundaries))
		}
		for i := 1; i < len(c.Boundaries); i++ {
			if c.Boundaries[i] <= c.Boundaries[i-1] {
				return fmt.Errorf("%w: boundaries not strictly increasing at index %d (%g after %g)",
					ErrInvalidConfig, i, c.Boundaries[i], c.Boundaries[i-1])
			}
		}

	case Constant:
		// Nothing to validate.

	case Geometric, Arithmetic:
		if c.DecayRate <= 0 {
			return fmt.Errorf("%w: decay rate %g must be positive", ErrInvalidConfig, c.DecayRate)
		}
		if c.MinValue > c.Initial {
			return fmt.Errorf("%w: min value %g exceeds initial %g", ErrInvalidConfig, c.MinValue, c.Initial)
		}

	case TimeBased:
		if c.DecayRate <= 0 {
			return fmt.Errorf("%w: decay rate %g must be positive", ErrInvalidConfig, c.DecayRate)
		}

	case StepDecay:
		if c.DecayRate <= 0 {
			return fmt.Errorf("%w: decay rate %g must be positive", ErrInvalidConfig, c.DecayRate)
		}
		if c.DropEvery <= 0 {
			return fmt.Errorf("%w: drop interval %g must be positive", ErrInvalidConfig, c.DropEvery)
		}
	}

	return nil
}

// clone returns a copy of the config with boundary/value slices duplicated,
// so the Schedule cannot observe later mutation of the caller's slices.
func (c Config) clone() Config {
	out := c
	if c.Boundaries != nil {
		out.Boundaries = append([]float64(nil), c.Boundaries...)
	}
	if c.Values != nil {
		out.Values = append([]float64(nil), c.Values...)
	}
	return out
}

package anneal

import "math"

// At returns the schedule value at the given step. Negative steps clamp to 0,
// so f(0) == Initial for every kind (piecewise: the first value). The call is
// deterministic and allocation-free.
func (s *Schedule) At(step float64) float64 {
	if step < 0 {
		step = 0
	}

	switch s.cfg.Kind {
	case Exponential:
		return s.exponential(step)
	case Cosine:
		return s.cosine(step)
	case InverseTime:
		return s.inverseTime(step)
	case Polynomial:
		return s.polynomial(step)
	case Piecewise:
		return s.piecewise(step)
	case Geometric:
		return s.geometric(step)
	case Arithmetic:
		return s.arithmetic(step)
	case TimeBased:
		return s.timeBased(step)
	case StepDecay:
		return s.stepDecay(step)
	default: // Constant
		return s.cfg.Initial
	}
}

// exponential computes initial * rate^(step/decaySteps).
// With Staircase the exponent ratio is floored, producing discrete drops
// every decaySteps steps.
func (s *Schedule) exponential(step float64) float64 {
	p := step / s.cfg.DecaySteps
	if s.cfg.Staircase {
		p = math.Floor(p)
	}
	return s.cfg.Initial * math.Pow(s.cfg.DecayRate, p)
}

// cosine computes min + 0.5*(initial-min)*(1 + cos(pi * step/decaySteps)),
// with step clamped to decaySteps. Reaches exactly min at step == decaySteps
// since cos(pi) == -1.
func (s *Schedule) cosine(step float64) float64 {
	t := math.Min(step, s.cfg.DecaySteps)
	return s.cfg.MinValue + 0.5*s.span*(1+math.Cos(math.Pi*t/s.cfg.DecaySteps))
}

// inverseTime computes initial / (1 + rate * step/decaySteps), with the
// staircase variant flooring the ratio.
func (s *Schedule) inverseTime(step float64) float64 {
	p := step / s.cfg.DecaySteps
	if s.cfg.Staircase {
		p = math.Floor(p)
	}
	return s.cfg.Initial / (1 + s.cfg.DecayRate*p)
}

// polynomial computes (initial-min) * (1 - step/decaySteps)^power + min,
// with step clamped to decaySteps. With Cycle the horizon stretches to
// decaySteps * ceil(step/decaySteps) instead of clamping, so the value saws
// back up after each multiple of decaySteps. The multiplier is kept at a
// minimum of 1 so step 0 still yields the initial value.
func (s *Schedule) polynomial(step float64) float64 {
	ds := s.cfg.DecaySteps
	t := step
	if s.cfg.Cycle {
		ds *= math.Max(1, math.Ceil(step/s.cfg.DecaySteps))
	} else {
		t = math.Min(step, ds)
	}
	return s.span*math.Pow(1-t/ds, s.cfg.Power) + s.cfg.MinValue
}

// piecewise returns values[i] for boundaries[i-1] <= step < boundaries[i]:
// the first value below the first boundary, the last value at and beyond the
// last. Boundaries are an inclusive lower bound for the value they introduce.
func (s *Schedule) piecewise(step float64) float64 {
	for i, b := range s.cfg.Boundaries {
		if step < b {
			return s.cfg.Values[i]
		}
	}
	return s.cfg.Values[len(s.cfg.Values)-1]
}

// geometric computes max(initial * rate^floor(step), min): a per-step
// geometric drop with a floor.
func (s *Schedule) geometric(step float64) float64 {
	return math.Max(s.cfg.Initial*math.Pow(s.cfg.DecayRate, math.Floor(step)), s.cfg.MinValue)
}

// arithmetic computes max(initial - rate*step, min): linear decay with a floor.
func (s *Schedule) arithmetic(step float64) float64 {
	return math.Max(s.cfg.Initial-s.cfg.DecayRate*step, s.cfg.MinValue)
}

// timeBased evaluates the recurrence v[i+1] = v[i] / (1 + rate*i) at
// floor(step). Unlike the other kinds this costs O(step), but remains a pure
// function of its inputs.
func (s *Schedule) timeBased(step float64) float64 {
	n := int(math.Floor(step))
	v := s.cfg.Initial
	for i := 0; i < n; i++ {
		v /= 1 + s.cfg.DecayRate*float64(i)
	}
	return v
}

// stepDecay computes initial * rate^floor(step/dropEvery): the classic
// "drop by a factor every k steps" schedule.
func (s *Schedule) stepDecay(step float64) float64 {
	return s.cfg.Initial * math.Pow(s.cfg.DecayRate, math.Floor(step/s.cfg.DropEvery))
}

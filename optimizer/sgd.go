package optimizer

import "gonum.org/v1/gonum/floats"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule:
//
//	v[i] = μ·v[i] + g[i]
//	w[i] = w[i] - lr · v[i]
//
// With μ=0 this reduces to a plain gradient step.
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
}

// NewSGD creates an SGD optimizer with the given learning rate and momentum.
func NewSGD(lr, momentum float64) *SGD {
	return &SGD{lr: lr, momentum: momentum}
}

// Update applies one SGD step and returns the updated parameters.
// The params slice is modified in place and returned.
func (s *SGD) Update(params, grads []float64) []float64 {
	if s.momentum == 0 {
		floats.AddScaled(params, -s.lr, grads)
		return params
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	}
	floats.Scale(s.momentum, s.velocity)
	floats.Add(s.velocity, grads)
	floats.AddScaled(params, -s.lr, s.velocity)
	return params
}

// SetLR updates the learning rate (driven by the schedule).
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Package anneal implements scalar parameter-decay schedules for annealing
// hyperparameters (learning rate, exploration rate, step size) over training
// steps.
//
// Each Schedule is a pure function of a step index and an immutable Config:
// identical inputs always produce bit-identical outputs, there is no hidden
// state, and the per-call path never allocates or fails. All validation
// happens once, at construction.
//
// Basic usage:
//
//	s, err := anneal.New(anneal.Config{
//	    Kind:       anneal.Exponential,
//	    Initial:    0.1,
//	    DecayRate:  0.96,
//	    DecaySteps: 1000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lr := s.At(step)
//
// The anneal/optimizer subpackage provides gradient-descent drivers (Adam,
// SGD) that consume a Schedule for their learning rate.
package anneal

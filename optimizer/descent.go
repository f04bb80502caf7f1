package optimizer

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/sky-flux/anneal"
)

// ErrNoStart is returned when Minimize is given an empty starting point.
var ErrNoStart = errors.New("optimizer: no starting point provided")

// DescentConfig configures a Descent run.
// Zero values are replaced with sensible defaults.
type DescentConfig struct {
	Schedule     *anneal.Schedule // nil → constant LearningRate
	Updater      Updater          // nil → Adam
	LearningRate float64          // default 0.04; ignored when Schedule is set
	MaxSteps     int              // default 1000
	Tolerance    float64          // default 1e-6; stop when ‖grad‖₂ < Tolerance
	LogEvery     int              // default 100; 0 disables progress logging
	Logger       *logrus.Logger   // nil → logrus.StandardLogger()
}

// Descent minimizes objective functions by gradient descent, with the
// learning rate for each step taken from an anneal.Schedule.
type Descent struct {
	schedule  *anneal.Schedule
	updater   Updater
	maxSteps  int
	tolerance float64
	logEvery  int
	log       *logrus.Logger
}

// NewDescent creates a Descent with the given config.
// Zero-valued fields receive defaults: LearningRate=0.04, MaxSteps=1000,
// Tolerance=1e-6, LogEvery=100. A nil Schedule holds the learning rate
// constant; a nil Updater means Adam.
func NewDescent(cfg DescentConfig) *Descent {
	lr := cfg.LearningRate
	if lr == 0 {
		lr = 0.04
	}

	sched := cfg.Schedule
	if sched == nil {
		// Cannot fail: a constant schedule has nothing to validate.
		sched, _ = anneal.New(anneal.Config{Kind: anneal.Constant, Initial: lr})
	}

	upd := cfg.Updater
	if upd == nil {
		upd = NewAdam(lr)
	}

	d := &Descent{
		schedule:  sched,
		updater:   upd,
		maxSteps:  cfg.MaxSteps,
		tolerance: cfg.Tolerance,
		logEvery:  cfg.LogEvery,
		log:       cfg.Logger,
	}
	if d.maxSteps == 0 {
		d.maxSteps = 1000
	}
	if d.tolerance == 0 {
		d.tolerance = 1e-6
	}
	if d.logEvery == 0 {
		d.logEvery = 100
	}
	if d.log == nil {
		d.log = logrus.StandardLogger()
	}
	return d
}

// Minimize runs gradient descent on f starting from x0 and returns the best
// point found. The learning rate at step t is Schedule.At(t). Iteration stops
// at MaxSteps, when the gradient norm falls below Tolerance, or when ctx is
// done (returning the best point so far along with ctx.Err()).
//
// Returns ErrNoStart if x0 is empty. x0 is not mutated.
func (d *Descent) Minimize(ctx context.Context, f Objective, x0 []float64) ([]float64, error) {
	if len(x0) == 0 {
		return nil, ErrNoStart
	}

	x := append([]float64(nil), x0...)
	grad := make([]float64, len(x))

	best := append([]float64(nil), x...)
	bestLoss := f(x)

	for step := 0; step < d.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		numericalGradient(f, x, grad)

		norm := floats.Norm(grad, 2)
		if norm < d.tolerance {
			d.log.WithFields(logrus.Fields{
				"step": step,
				"norm": norm,
			}).Debug("gradient norm below tolerance, stopping")
			break
		}

		lr := d.schedule.At(float64(step))
		d.updater.SetLR(lr)
		x = d.updater.Update(x, grad)

		loss := f(x)
		if loss < bestLoss {
			bestLoss = loss
			copy(best, x)
		}

		if step%d.logEvery == 0 {
			d.log.WithFields(logrus.Fields{
				"step": step,
				"lr":   lr,
				"loss": loss,
				"norm": norm,
			}).Debug("descent step")
		}
	}

	if math.IsNaN(bestLoss) || math.IsInf(bestLoss, 0) {
		d.log.Warnf("descent diverged: best loss %v", bestLoss)
	}
	return best, nil
}

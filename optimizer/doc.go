// Package optimizer minimizes scalar objective functions with gradient
// descent, using an anneal.Schedule to drive the learning rate.
//
// It provides two updaters behind the [Updater] interface:
//
//   - [Adam], adaptive moments with bias correction.
//   - [SGD], plain gradient steps with optional momentum.
//
// Gradients are computed via numerical central differences, so the objective
// only needs to be evaluable, not differentiable in closed form.
//
// # Usage
//
//	sched, _ := anneal.New(anneal.Config{
//	    Kind: anneal.Exponential, Initial: 0.1, DecayRate: 0.9, DecaySteps: 100,
//	})
//	d := optimizer.NewDescent(optimizer.DescentConfig{Schedule: sched})
//	x, err := d.Minimize(ctx, objective, []float64{1, 1})
package optimizer

package optimizer

// Objective is a scalar function to minimize.
type Objective func(x []float64) float64

const gradEps = 1e-5

// numericalGradient computes the gradient of f at x using central
// differences: df/dx[i] ≈ (f(x[i]+ε) - f(x[i]-ε)) / (2ε).
// The grad slice is reused between calls by the caller.
func numericalGradient(f Objective, x, grad []float64) {
	for i := range x {
		orig := x[i]

		x[i] = orig + gradEps
		fPlus := f(x)
		x[i] = orig - gradEps
		fMinus := f(x)
		x[i] = orig

		grad[i] = (fPlus - fMinus) / (2 * gradEps)
	}
}

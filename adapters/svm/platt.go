package svm

import (
	"math"
)

// fitSigmoid fits Platt scaling parameters (A, B) so that
// 1/(1+exp(A*f+B)) approximates P(label=1 | decision value f).
// This is the Newton method with backtracking line search from
// Lin, Lin & Weng, "A note on Platt's probabilistic outputs for
// support vector machines" (2007).
func fitSigmoid(decision []float64, labels []int) (float64, float64) {
	const (
		maxIter = 100
		minStep = 1e-10
		sigma   = 1e-12 // Hessian ridge
	)

	n := len(decision)
	prior1 := 0
	for _, y := range labels {
		if y == 1 {
			prior1++
		}
	}
	prior0 := n - prior1

	hiTarget := (float64(prior1) + 1.0) / (float64(prior1) + 2.0)
	loTarget := 1.0 / (float64(prior0) + 2.0)

	targets := make([]float64, n)
	for i, y := range labels {
		if y == 1 {
			targets[i] = hiTarget
		} else {
			targets[i] = loTarget
		}
	}

	a := 0.0
	b := math.Log((float64(prior0) + 1.0) / (float64(prior1) + 1.0))
	fval := sigmoidObjective(decision, targets, a, b)

	for iter := 0; iter < maxIter; iter++ {
		h11, h22 := sigma, sigma
		h21, g1, g2 := 0.0, 0.0, 0.0

		for i := 0; i < n; i++ {
			fApB := decision[i]*a + b
			var p, q float64
			if fApB >= 0 {
				p = math.Exp(-fApB) / (1.0 + math.Exp(-fApB))
				q = 1.0 / (1.0 + math.Exp(-fApB))
			} else {
				p = 1.0 / (1.0 + math.Exp(fApB))
				q = math.Exp(fApB) / (1.0 + math.Exp(fApB))
			}
			d2 := p * q
			h11 += decision[i] * decision[i] * d2
			h22 += d2
			h21 += decision[i] * d2
			d1 := targets[i] - p
			g1 += decision[i] * d1
			g2 += d1
		}

		if math.Abs(g1) < 1e-5 && math.Abs(g2) < 1e-5 {
			break
		}

		det := h11*h22 - h21*h21
		dA := -(h22*g1 - h21*g2) / det
		dB := -(-h21*g1 + h11*g2) / det
		gd := g1*dA + g2*dB

		stepSize := 1.0
		for stepSize >= minStep {
			newA := a + stepSize*dA
			newB := b + stepSize*dB
			newF := sigmoidObjective(decision, targets, newA, newB)
			if newF < fval+1e-4*stepSize*gd {
				a, b, fval = newA, newB, newF
				break
			}
			stepSize /= 2.0
		}
		if stepSize < minStep {
			break
		}
	}

	return a, b
}

// sigmoidObjective is the cross-entropy error of the sigmoid fit, evaluated
// without overflow for large |A*f+B|.
func sigmoidObjective(decision, targets []float64, a, b float64) float64 {
	fval := 0.0
	for i := range decision {
		fApB := decision[i]*a + b
		if fApB >= 0 {
			fval += targets[i]*fApB + math.Log1p(math.Exp(-fApB))
		} else {
			fval += (targets[i]-1)*fApB + math.Log1p(math.Exp(fApB))
		}
	}
	return fval
}

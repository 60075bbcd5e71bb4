package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"rocfold/domain/core"
	"rocfold/domain/dataset"
)

// Model is an immutable fitted linear classifier. It carries the separating
// hyperplane and the calibration sigmoid; nothing mutates it after Fit.
type Model struct {
	weights  []float64
	bias     float64
	sigmoidA float64
	sigmoidB float64
}

// Weights returns a copy of the hyperplane weights.
func (m *Model) Weights() []float64 {
	out := make([]float64, len(m.weights))
	copy(out, m.weights)
	return out
}

// Bias returns the hyperplane intercept.
func (m *Model) Bias() float64 {
	return m.bias
}

// DecisionValues returns the signed margin for each row. Positive margins
// favor class 1.
func (m *Model) DecisionValues(t *dataset.Table) ([]float64, error) {
	if m.weights == nil {
		return nil, core.ErrNotFitted
	}
	if t.Cols() != len(m.weights) {
		return nil, core.ErrShapeMismatch
	}

	out := make([]float64, t.Rows())
	for i := range out {
		out[i] = floats.Dot(m.weights, t.Row(i)) + m.bias
	}
	return out, nil
}

// PredictProbabilities maps each row's margin through the calibration sigmoid
// and returns the positive-class probability, aligned by row index.
func (m *Model) PredictProbabilities(t *dataset.Table) ([]float64, error) {
	decision, err := m.DecisionValues(t)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(decision))
	for i, f := range decision {
		out[i] = sigmoid(f, m.sigmoidA, m.sigmoidB)
	}
	return out, nil
}

// sigmoid evaluates 1/(1+exp(a*f+b)) in a numerically stable form.
func sigmoid(f, a, b float64) float64 {
	fApB := a*f + b
	if fApB >= 0 {
		return math.Exp(-fApB) / (1 + math.Exp(-fApB))
	}
	return 1 / (1 + math.Exp(fApB))
}

package roc

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"rocfold/domain/core"
	"rocfold/domain/evaluation"
	"rocfold/internal/errors"
)

// MeanAccumulator averages fold ROC curves onto a fixed false-positive-rate
// grid of evaluation.MeanGridSize evenly spaced points in [0,1]. Each added
// curve is linearly interpolated onto the grid; outside a curve's FPR range
// the nearest endpoint value is used.
type MeanAccumulator struct {
	grid []float64
	sum  []float64
	n    int
}

// NewMeanAccumulator creates an empty accumulator.
func NewMeanAccumulator() *MeanAccumulator {
	return &MeanAccumulator{
		grid: floats.Span(make([]float64, evaluation.MeanGridSize), 0, 1),
		sum:  make([]float64, evaluation.MeanGridSize),
	}
}

// Grid returns the shared FPR sample points.
func (a *MeanAccumulator) Grid() []float64 {
	return a.grid
}

// Add interpolates one fold's curve onto the grid and accumulates it.
func (a *MeanAccumulator) Add(c evaluation.Curve) error {
	if err := c.Validate(); err != nil {
		return err
	}

	xs, ys := interpolationTable(c)
	if len(xs) < 2 {
		return errors.InvalidInput("curve has fewer than two distinct FPR values")
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return errors.Wrap(err, "failed to fit interpolant to fold curve")
	}

	for i, x := range a.grid {
		a.sum[i] += pl.Predict(x)
	}
	a.n++
	return nil
}

// Finalize divides the accumulated TPR sums by the fold count and clamps the
// curve to the unit-square corners: the first grid point is forced to 0 and
// the last to 1 regardless of what interpolation produced.
func (a *MeanAccumulator) Finalize() (evaluation.MeanCurve, error) {
	if a.n == 0 {
		return evaluation.MeanCurve{}, core.ErrInsufficientData
	}

	tpr := make([]float64, len(a.sum))
	for i, s := range a.sum {
		tpr[i] = s / float64(a.n)
	}
	tpr[0] = 0.0
	tpr[len(tpr)-1] = 1.0

	fpr := make([]float64, len(a.grid))
	copy(fpr, a.grid)

	return evaluation.MeanCurve{
		FPR: fpr,
		TPR: tpr,
		AUC: integrate.Trapezoidal(fpr, tpr),
	}, nil
}

// interpolationTable compresses a curve to strictly increasing FPR values.
// At a repeated FPR the maximum TPR is kept, which matches the vertical
// segments of a threshold-swept ROC curve.
func interpolationTable(c evaluation.Curve) (xs, ys []float64) {
	for i := 0; i < c.Len(); i++ {
		x, y := c.FPR[i], c.TPR[i]
		if len(xs) > 0 && x == xs[len(xs)-1] {
			if y > ys[len(ys)-1] {
				ys[len(ys)-1] = y
			}
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

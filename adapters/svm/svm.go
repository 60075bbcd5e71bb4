// Package svm implements a linear-kernel support vector classifier with
// probability calibration. Training solves the L1-loss dual by coordinate
// descent; probabilities come from a Platt sigmoid fitted on the training
// decision values. All randomness derives from the configured seed, so a
// fixed configuration always yields an identical model.
package svm

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"rocfold/domain/core"
	"rocfold/domain/dataset"
	"rocfold/internal/errors"
	"rocfold/ports"
)

// Config holds the trainer settings
type Config struct {
	C       float64 // misclassification cost
	Tol     float64 // stop when the largest projected gradient falls below this
	MaxIter int     // epoch cap
	Seed    int64   // drives the coordinate visiting order
}

// DefaultConfig returns the settings used by the evaluation pipeline.
func DefaultConfig() Config {
	return Config{
		C:       1.0,
		Tol:     1e-4,
		MaxIter: 1000,
		Seed:    0,
	}
}

// LinearSVC trains linear support vector classifiers. The trainer itself is
// stateless; Fit returns a fresh immutable model every call.
type LinearSVC struct {
	cfg Config
}

// NewLinearSVC creates a trainer with the given configuration.
func NewLinearSVC(cfg Config) *LinearSVC {
	if cfg.C <= 0 {
		cfg.C = 1.0
	}
	if cfg.Tol <= 0 {
		cfg.Tol = 1e-4
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1000
	}
	return &LinearSVC{cfg: cfg}
}

// Fit trains on the given table. Labels must be binary {0,1} and both classes
// must be present; class 1 is treated as the positive class.
func (s *LinearSVC) Fit(ctx context.Context, train *dataset.Table) (ports.FittedModel, error) {
	if err := train.Validate(); err != nil {
		return nil, err
	}

	n := train.Rows()
	d := train.Cols()

	y := make([]float64, n)
	positives := 0
	for i, label := range train.Labels {
		switch label {
		case 1:
			y[i] = 1
			positives++
		case 0:
			y[i] = -1
		default:
			return nil, core.ErrNotBinary
		}
	}
	if positives == 0 || positives == n {
		return nil, core.ErrDegenerateFold
	}

	w, err := s.solveDual(ctx, train, y)
	if err != nil {
		return nil, errors.TrainingError("dual coordinate descent failed", err)
	}

	// Calibrate a sigmoid on the training decision values.
	decision := make([]float64, n)
	for i := 0; i < n; i++ {
		decision[i] = floats.Dot(w[:d], train.Row(i)) + w[d]
	}
	a, b := fitSigmoid(decision, train.Labels)

	weights := make([]float64, d)
	copy(weights, w[:d])

	return &Model{
		weights:  weights,
		bias:     w[d],
		sigmoidA: a,
		sigmoidB: b,
	}, nil
}

// solveDual runs L1-loss dual coordinate descent (the liblinear algorithm)
// with an augmented constant feature carrying the bias. The returned slice
// holds d weights followed by the bias term.
func (s *LinearSVC) solveDual(ctx context.Context, train *dataset.Table, y []float64) ([]float64, error) {
	n := train.Rows()
	d := train.Cols()

	w := make([]float64, d+1)
	alpha := make([]float64, n)

	qii := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := train.Row(i)
		qii[i] = floats.Dot(xi, xi) + 1 // +1 for the bias feature
	}

	rng := ports.SeededStream("svm.coordinate-order", s.cfg.Seed)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for iter := 0; iter < s.cfg.MaxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		maxViolation := 0.0
		for _, i := range perm {
			xi := train.Row(i)
			g := y[i]*(floats.Dot(w[:d], xi)+w[d]) - 1

			pg := g
			if alpha[i] == 0 {
				pg = math.Min(g, 0)
			} else if alpha[i] == s.cfg.C {
				pg = math.Max(g, 0)
			}
			if math.Abs(pg) > maxViolation {
				maxViolation = math.Abs(pg)
			}

			if math.Abs(pg) > 1e-12 {
				old := alpha[i]
				alpha[i] = math.Min(math.Max(old-g/qii[i], 0), s.cfg.C)
				delta := (alpha[i] - old) * y[i]
				floats.AddScaled(w[:d], delta, xi)
				w[d] += delta
			}
		}

		if maxViolation < s.cfg.Tol {
			break
		}
	}

	return w, nil
}

package ports

import (
	"context"

	"rocfold/domain/dataset"
)

// FittedModel is an immutable trained classifier. Fitting never mutates an
// existing model; every fold gets its own value, which keeps folds independent
// and makes parallel evaluation safe.
type FittedModel interface {
	// PredictProbabilities returns the positive-class probability for each
	// row of the table, aligned by index.
	PredictProbabilities(t *dataset.Table) ([]float64, error)

	// DecisionValues returns the raw margin for each row of the table.
	DecisionValues(t *dataset.Table) ([]float64, error)
}

// Classifier trains probabilistic binary classifiers. Implementations must be
// deterministic for a fixed configuration seed.
type Classifier interface {
	Fit(ctx context.Context, train *dataset.Table) (FittedModel, error)
}

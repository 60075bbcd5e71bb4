// Package app wires the evaluation pipeline together: load the bundled
// dataset, split it into stratified folds, fit one classifier per fold,
// score the held-out partition, and aggregate the per-fold ROC curves into
// a mean curve.
package app

import (
	"context"
	"log"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"rocfold/adapters/crossval"
	"rocfold/adapters/roc"
	"rocfold/domain/core"
	"rocfold/domain/dataset"
	"rocfold/domain/evaluation"
	"rocfold/internal/config"
	"rocfold/internal/errors"
	"rocfold/ports"
)

// DatasetLoader obtains the table the pipeline evaluates on.
type DatasetLoader func() (*dataset.Table, error)

// Pipeline runs the full cross-validated ROC evaluation.
type Pipeline struct {
	cfg        config.EvaluationConfig
	classifier ports.Classifier
	loader     DatasetLoader
}

// NewPipeline creates a pipeline over the bundled iris dataset.
func NewPipeline(cfg config.EvaluationConfig, classifier ports.Classifier) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		classifier: classifier,
		loader:     dataset.LoadIris,
	}
}

// WithLoader substitutes the dataset source. Used by tests and by callers
// that evaluate on their own data.
func (p *Pipeline) WithLoader(loader DatasetLoader) *Pipeline {
	p.loader = loader
	return p
}

// Run executes the pipeline and returns the complete report.
func (p *Pipeline) Run(ctx context.Context) (*evaluation.Report, error) {
	started := core.Now()

	table, err := p.loader()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	// Two-class subset, then the noise block that makes the task hard enough
	// for probability-based ROC curves to be interesting.
	binary := table.FilterClasses(0, 1)
	if err := binary.Validate(); err != nil {
		return nil, errors.Wrap(err, "two-class subset is unusable")
	}
	noisy := binary.WithNoise(p.cfg.NoisePerFeature, ports.SeededStream("dataset.noise", p.cfg.Seed))

	folds, err := crossval.StratifiedKFold(noisy.Labels, p.cfg.Folds)
	if err != nil {
		return nil, errors.Wrap(err, "stratified fold assignment failed")
	}

	results := make([]evaluation.FoldResult, len(folds))
	if p.cfg.Parallel {
		// Safe because Fit returns an immutable model per fold and every
		// fold writes only its own result slot.
		g, gctx := errgroup.WithContext(ctx)
		for i, fold := range folds {
			i, fold := i, fold
			g.Go(func() error {
				return p.evaluateFold(gctx, noisy, i, fold, &results[i])
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, fold := range folds {
			if err := p.evaluateFold(ctx, noisy, i, fold, &results[i]); err != nil {
				return nil, err
			}
		}
	}

	acc := roc.NewMeanAccumulator()
	for _, result := range results {
		if err := acc.Add(result.Curve); err != nil {
			return nil, errors.Wrapf(err, "failed to accumulate fold %d curve", result.Fold)
		}
	}
	mean, err := acc.Finalize()
	if err != nil {
		return nil, err
	}

	report := &evaluation.Report{
		RunID:       core.RunID(core.NewID()),
		Dataset:     noisy.Key,
		Seed:        p.cfg.Seed,
		Folds:       p.cfg.Folds,
		Samples:     noisy.Rows(),
		Features:    noisy.Cols(),
		FoldResults: results,
		Mean:        mean,
		StartedAt:   started,
		FinishedAt:  core.Now(),
	}

	aucs := report.AUCs()
	report.MeanAUC, _ = stats.Mean(aucs)
	report.StdDevAUC, _ = stats.StandardDeviation(aucs)

	log.Printf("evaluated %d folds on %d samples x %d features, mean area %.3f",
		report.Folds, report.Samples, report.Features, report.Mean.AUC)

	return report, nil
}

func (p *Pipeline) evaluateFold(ctx context.Context, table *dataset.Table, i int, fold crossval.Fold, out *evaluation.FoldResult) error {
	train := table.Subset(fold.Train)
	test := table.Subset(fold.Test)

	model, err := p.classifier.Fit(ctx, train)
	if err != nil {
		return errors.Wrapf(err, "failed to fit classifier on fold %d", i)
	}

	scores, err := model.PredictProbabilities(test)
	if err != nil {
		return errors.Wrapf(err, "failed to score fold %d", i)
	}

	curve, err := roc.Compute(test.Labels, scores)
	if err != nil {
		return errors.Wrapf(err, "failed to compute ROC curve for fold %d", i)
	}

	positives := 0
	for _, y := range test.Labels {
		if y == 1 {
			positives++
		}
	}

	*out = evaluation.FoldResult{
		Fold:      i,
		TrainSize: train.Rows(),
		TestSize:  test.Rows(),
		Positives: positives,
		Curve:     curve,
		Scores:    scores,
		Truth:     test.Labels,
		AUC:       roc.AUC(curve),
	}
	return nil
}

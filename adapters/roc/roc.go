package roc

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"rocfold/domain/core"
	"rocfold/domain/evaluation"
)

// Compute builds the ROC curve for binary truth labels and positive-class
// scores by sweeping every distinct score threshold from highest to lowest.
// A fold that contains only one class yields NaN rates at some thresholds;
// those are propagated unmodified.
func Compute(truth []int, scores []float64) (evaluation.Curve, error) {
	if len(truth) != len(scores) {
		return evaluation.Curve{}, core.ErrShapeMismatch
	}
	if len(truth) == 0 {
		return evaluation.Curve{}, core.ErrInsufficientData
	}
	for _, y := range truth {
		if y != 0 && y != 1 {
			return evaluation.Curve{}, core.ErrNotBinary
		}
	}

	// stat.ROC wants scores sorted ascending with class flags aligned.
	type sample struct {
		score    float64
		positive bool
	}
	samples := make([]sample, len(truth))
	for i := range truth {
		samples[i] = sample{score: scores[i], positive: truth[i] == 1}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].score < samples[j].score
	})

	ys := make([]float64, len(samples))
	classes := make([]bool, len(samples))
	for i, s := range samples {
		ys[i] = s.score
		classes[i] = s.positive
	}

	tpr, fpr, thresh := stat.ROC(nil, ys, classes, nil)

	curve := evaluation.Curve{FPR: fpr, TPR: tpr, Thresholds: thresh}
	return curve, nil
}

// AUC returns the area under the curve by trapezoidal integration.
func AUC(c evaluation.Curve) float64 {
	if c.Len() < 2 {
		return 0
	}
	return integrate.Trapezoidal(c.FPR, c.TPR)
}

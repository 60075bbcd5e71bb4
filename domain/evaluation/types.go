package evaluation

import (
	"fmt"

	"rocfold/domain/core"
)

// MeanGridSize is the number of evenly spaced false-positive-rate sample
// points the per-fold curves are interpolated onto.
const MeanGridSize = 100

// Curve is an ordered ROC curve: one (FPR, TPR, threshold) triple per cutoff,
// swept from the highest score threshold to the lowest.
// INVARIANTS:
// - FPR, TPR, Thresholds have equal length
// - FPR is non-decreasing from 0 to 1
type Curve struct {
	FPR        []float64 `json:"fpr"`
	TPR        []float64 `json:"tpr"`
	Thresholds []float64 `json:"thresholds"`
}

// Len returns the number of curve points
func (c Curve) Len() int {
	return len(c.FPR)
}

// Validate checks the curve invariants
func (c Curve) Validate() error {
	if c.Len() == 0 {
		return core.ErrEmptyCurve
	}
	if len(c.TPR) != c.Len() || len(c.Thresholds) != c.Len() {
		return core.NewValidationError("curve", "fpr/tpr/threshold lengths disagree")
	}
	for i := 1; i < c.Len(); i++ {
		if c.FPR[i] < c.FPR[i-1] {
			return core.NewValidationError("curve", fmt.Sprintf("fpr decreases at point %d", i))
		}
	}
	return nil
}

// FoldResult holds the evaluation outcome of a single cross-validation fold.
type FoldResult struct {
	Fold      int   `json:"fold"`
	TrainSize int   `json:"train_size"`
	TestSize  int   `json:"test_size"`
	Positives int   `json:"positives"`
	Curve     Curve `json:"curve"`
	// Scores are the positive-class probabilities for the held-out samples,
	// aligned with Truth.
	Scores []float64 `json:"scores,omitempty"`
	Truth  []int     `json:"truth,omitempty"`
	AUC    float64   `json:"auc"`
}

// Label returns the legend label for this fold's curve.
func (f FoldResult) Label() string {
	return fmt.Sprintf("ROC fold %d (area = %0.2f)", f.Fold, f.AUC)
}

// MeanCurve is a fold-averaged ROC curve evaluated on a fixed FPR grid.
// By construction TPR[0] == 0 and TPR[len-1] == 1 so the curve spans the
// unit square corner to corner regardless of the input folds.
type MeanCurve struct {
	FPR []float64 `json:"fpr"`
	TPR []float64 `json:"tpr"`
	AUC float64   `json:"auc"`
}

// Label returns the legend label for the mean curve.
func (m MeanCurve) Label() string {
	return fmt.Sprintf("Mean ROC (area = %0.2f)", m.AUC)
}

// Report is the complete outcome of one evaluation run.
type Report struct {
	RunID   core.RunID      `json:"run_id"`
	Dataset core.DatasetKey `json:"dataset"`
	Seed    int64           `json:"seed"`
	Folds   int             `json:"folds"`

	Samples  int `json:"samples"`
	Features int `json:"features"`

	FoldResults []FoldResult `json:"fold_results"`
	Mean        MeanCurve    `json:"mean"`

	// Summary across folds
	MeanAUC   float64 `json:"mean_auc"`
	StdDevAUC float64 `json:"stddev_auc"`

	StartedAt  core.Timestamp `json:"started_at"`
	FinishedAt core.Timestamp `json:"finished_at"`
}

// AUCs returns the per-fold areas in fold order.
func (r *Report) AUCs() []float64 {
	out := make([]float64, len(r.FoldResults))
	for i, f := range r.FoldResults {
		out[i] = f.AUC
	}
	return out
}

// LegendEntries returns the labels the figure legend will carry:
// one per fold, then the chance line, then the mean curve.
func (r *Report) LegendEntries() []string {
	entries := make([]string, 0, len(r.FoldResults)+2)
	for _, f := range r.FoldResults {
		entries = append(entries, f.Label())
	}
	entries = append(entries, "Luck")
	entries = append(entries, r.Mean.Label())
	return entries
}

package evaluation

import (
	"math"
	"testing"
)

func TestCurve_Validate(t *testing.T) {
	valid := Curve{
		FPR:        []float64{0, 0.5, 1},
		TPR:        []float64{0, 0.8, 1},
		Thresholds: []float64{math.Inf(1), 0.5, 0.1},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid curve rejected: %v", err)
	}

	if err := (Curve{}).Validate(); err == nil {
		t.Error("empty curve must be rejected")
	}

	skewed := Curve{FPR: []float64{0, 1}, TPR: []float64{0}, Thresholds: []float64{0, 1}}
	if err := skewed.Validate(); err == nil {
		t.Error("mismatched lengths must be rejected")
	}

	decreasing := Curve{
		FPR:        []float64{0, 0.5, 0.4},
		TPR:        []float64{0, 0.5, 1},
		Thresholds: []float64{2, 1, 0},
	}
	if err := decreasing.Validate(); err == nil {
		t.Error("decreasing FPR must be rejected")
	}
}

func TestLabels(t *testing.T) {
	fold := FoldResult{Fold: 3, AUC: 0.789}
	if got, want := fold.Label(), "ROC fold 3 (area = 0.79)"; got != want {
		t.Errorf("fold label = %q, want %q", got, want)
	}

	mean := MeanCurve{AUC: 0.8456}
	if got, want := mean.Label(), "Mean ROC (area = 0.85)"; got != want {
		t.Errorf("mean label = %q, want %q", got, want)
	}
}

func TestReport_LegendEntries(t *testing.T) {
	report := &Report{
		FoldResults: []FoldResult{{Fold: 0, AUC: 0.7}, {Fold: 1, AUC: 0.8}},
		Mean:        MeanCurve{AUC: 0.75},
	}

	entries := report.LegendEntries()
	if len(entries) != 4 {
		t.Fatalf("expected folds + Luck + Mean = 4 entries, got %d", len(entries))
	}
	if entries[2] != "Luck" {
		t.Errorf("entry 2 should be Luck, got %q", entries[2])
	}
	if entries[3] != report.Mean.Label() {
		t.Errorf("entry 3 should be the mean label, got %q", entries[3])
	}
}

package excel

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rocfold/domain/core"
	"rocfold/domain/evaluation"
)

func testReport() *evaluation.Report {
	report := &evaluation.Report{
		RunID:     core.RunID("run-1"),
		Dataset:   core.DatasetKey("iris"),
		Seed:      42,
		Folds:     2,
		Samples:   100,
		Features:  804,
		MeanAUC:   0.8,
		StdDevAUC: 0.05,
	}
	for i := 0; i < 2; i++ {
		report.FoldResults = append(report.FoldResults, evaluation.FoldResult{
			Fold:      i,
			TrainSize: 83,
			TestSize:  17,
			Positives: 9,
			Curve: evaluation.Curve{
				FPR:        []float64{0, 1},
				TPR:        []float64{0, 1},
				Thresholds: []float64{math.Inf(1), 0},
			},
			AUC: 0.75 + 0.1*float64(i),
		})
	}
	report.Mean = evaluation.MeanCurve{AUC: 0.85}
	return report
}

func TestReportWriter_Build(t *testing.T) {
	f, err := NewReportWriter().build(testReport())
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		value, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Fold", get("A1"))
	assert.Equal(t, "Area", get("E1"))
	assert.Equal(t, "0", get("A2"))
	assert.Equal(t, "83", get("B2"))
	assert.Equal(t, "1", get("A3"))
	assert.Equal(t, "0.85", get("E3"))

	// Summary block starts after the blank separator row.
	assert.Equal(t, "Run", get("A5"))
	assert.Equal(t, "run-1", get("B5"))
	assert.Equal(t, "Dataset", get("A6"))
	assert.Equal(t, "iris", get("B6"))
	assert.Equal(t, "Mean ROC area", get("A12"))
}

func TestReportWriter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewReportWriter().Export(testReport(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fold", value)
}

// Package excel exports evaluation reports as xlsx workbooks.
package excel

import (
	"github.com/xuri/excelize/v2"

	"rocfold/domain/evaluation"
	"rocfold/internal/errors"
)

const sheetName = "ROC"

// ReportWriter writes one evaluation report per workbook.
type ReportWriter struct{}

// NewReportWriter creates an xlsx report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Export writes per-fold areas plus run summary rows to path.
func (w *ReportWriter) Export(report *evaluation.Report, path string) error {
	f, err := w.build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to write report workbook to %s", path)
	}
	return nil
}

func (w *ReportWriter) build(report *evaluation.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name report sheet")
	}

	header := []interface{}{"Fold", "Train size", "Test size", "Positives", "Area"}
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, fold := range report.FoldResults {
		values := []interface{}{fold.Fold, fold.TrainSize, fold.TestSize, fold.Positives, fold.AUC}
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	row++ // blank separator
	summary := [][]interface{}{
		{"Run", report.RunID.String()},
		{"Dataset", report.Dataset.String()},
		{"Seed", report.Seed},
		{"Samples", report.Samples},
		{"Features", report.Features},
		{"Mean fold area", report.MeanAUC},
		{"Std dev fold area", report.StdDevAUC},
		{"Mean ROC area", report.Mean.AUC},
	}
	for _, values := range summary {
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return errors.Wrap(err, "failed to compute cell coordinates")
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return errors.Wrapf(err, "failed to set cell %s", cell)
		}
	}
	return nil
}

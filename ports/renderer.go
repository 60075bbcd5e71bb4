package ports

import (
	"rocfold/domain/evaluation"
)

// FigureRenderer turns an evaluation report into an encoded figure.
// Keeping rendering behind this port lets the pipeline run and be tested
// without any display surface (headless capture vs interactive viewer).
type FigureRenderer interface {
	Render(report *evaluation.Report) ([]byte, error)
}

// ReportExporter writes an evaluation report to a structured artifact
// (e.g. an xlsx workbook).
type ReportExporter interface {
	Export(report *evaluation.Report, path string) error
}

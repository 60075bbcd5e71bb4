// Package render draws the evaluation report as a ROC figure: one line per
// fold, the diagonal chance reference, and the bold mean curve.
package render

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rocfold/domain/evaluation"
	"rocfold/internal/errors"
)

// DefaultTitle matches the figure heading of the classic ROC example.
const DefaultTitle = "Receiver operating characteristic example"

var (
	luckColor = drawing.Color{R: 153, G: 153, B: 153, A: 255}
	meanColor = drawing.ColorBlack
)

// ChartRenderer renders reports to PNG bytes. It is a headless renderer:
// callers decide whether the bytes end up in a file or an HTTP response.
type ChartRenderer struct {
	Title  string
	Width  int
	Height int
}

// NewChartRenderer creates a renderer with the standard figure title and size.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{
		Title:  DefaultTitle,
		Width:  800,
		Height: 600,
	}
}

// Render encodes the report as a PNG figure.
func (r *ChartRenderer) Render(report *evaluation.Report) ([]byte, error) {
	if len(report.FoldResults) == 0 {
		return nil, errors.InvalidInput("report has no fold results to draw")
	}

	graph := chart.Chart{
		Title:  r.Title,
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name:  "False Positive Rate",
			Range: &chart.ContinuousRange{Min: -0.05, Max: 1.05},
		},
		YAxis: chart.YAxis{
			Name:  "True Positive Rate",
			Range: &chart.ContinuousRange{Min: -0.05, Max: 1.05},
		},
		Series: r.series(report),
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.RenderError("failed to render ROC figure", err)
	}
	return buf.Bytes(), nil
}

// series builds the drawable series in legend order: folds, Luck, mean.
func (r *ChartRenderer) series(report *evaluation.Report) []chart.Series {
	out := make([]chart.Series, 0, len(report.FoldResults)+2)

	for i, fold := range report.FoldResults {
		out = append(out, chart.ContinuousSeries{
			Name:    fold.Label(),
			XValues: fold.Curve.FPR,
			YValues: fold.Curve.TPR,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1.0,
			},
		})
	}

	out = append(out, chart.ContinuousSeries{
		Name:    "Luck",
		XValues: []float64{0, 1},
		YValues: []float64{0, 1},
		Style: chart.Style{
			StrokeColor:     luckColor,
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	})

	out = append(out, chart.ContinuousSeries{
		Name:    report.Mean.Label(),
		XValues: report.Mean.FPR,
		YValues: report.Mean.TPR,
		Style: chart.Style{
			StrokeColor:     meanColor,
			StrokeWidth:     2.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	})

	return out
}

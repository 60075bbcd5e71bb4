package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"rocfold/domain/core"
)

// Table is the canonical data object for the evaluation pipeline: a dense
// feature matrix with one integer class label per row.
type Table struct {
	Features *mat.Dense
	Labels   []int

	FeatureNames []string
	ClassNames   []string
	Key          core.DatasetKey
}

// Rows returns the number of samples
func (t *Table) Rows() int {
	if t.Features == nil {
		return 0
	}
	r, _ := t.Features.Dims()
	return r
}

// Cols returns the number of features
func (t *Table) Cols() int {
	if t.Features == nil {
		return 0
	}
	_, c := t.Features.Dims()
	return c
}

// Row returns the feature vector of sample i without copying.
func (t *Table) Row(i int) []float64 {
	return t.Features.RawRowView(i)
}

// Validate ensures the table is internally consistent
func (t *Table) Validate() error {
	if t.Rows() == 0 {
		return core.ErrInsufficientData
	}
	if len(t.Labels) != t.Rows() {
		return core.ErrShapeMismatch
	}
	return nil
}

// ClassCounts returns the number of samples observed per label value.
func (t *Table) ClassCounts() map[int]int {
	counts := make(map[int]int)
	for _, y := range t.Labels {
		counts[y]++
	}
	return counts
}

// FilterClasses returns a new table containing only rows whose label is in keep.
// Row order is preserved.
func (t *Table) FilterClasses(keep ...int) *Table {
	keepSet := make(map[int]bool, len(keep))
	for _, k := range keep {
		keepSet[k] = true
	}

	var indices []int
	for i, y := range t.Labels {
		if keepSet[y] {
			indices = append(indices, i)
		}
	}
	return t.Subset(indices)
}

// Subset returns a new table containing the given rows, in the given order.
// Feature data is copied so the subset is independent of the source.
func (t *Table) Subset(indices []int) *Table {
	cols := t.Cols()
	out := mat.NewDense(len(indices), cols, nil)
	labels := make([]int, len(indices))

	for i, idx := range indices {
		out.SetRow(i, t.Features.RawRowView(idx))
		labels[i] = t.Labels[idx]
	}

	return &Table{
		Features:     out,
		Labels:       labels,
		FeatureNames: t.FeatureNames,
		ClassNames:   t.ClassNames,
		Key:          t.Key,
	}
}

// WithNoise returns a new table with extraPerFeature * Cols() standard-normal
// noise columns appended to every row. The rng must be explicitly seeded by
// the caller so that the augmented dataset is reproducible across runs.
func (t *Table) WithNoise(extraPerFeature int, rng *rand.Rand) *Table {
	rows, cols := t.Features.Dims()
	extra := extraPerFeature * cols
	out := mat.NewDense(rows, cols+extra, nil)

	for i := 0; i < rows; i++ {
		row := t.Features.RawRowView(i)
		for j := 0; j < cols; j++ {
			out.Set(i, j, row[j])
		}
		for j := 0; j < extra; j++ {
			out.Set(i, cols+j, rng.NormFloat64())
		}
	}

	names := make([]string, 0, cols+extra)
	names = append(names, t.FeatureNames...)
	for j := 0; j < extra; j++ {
		names = append(names, "noise")
	}

	labels := make([]int, len(t.Labels))
	copy(labels, t.Labels)

	return &Table{
		Features:     out,
		Labels:       labels,
		FeatureNames: names,
		ClassNames:   t.ClassNames,
		Key:          t.Key,
	}
}

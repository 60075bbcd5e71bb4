// Package testkit generates deterministic synthetic datasets for tests.
package testkit

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"rocfold/domain/core"
	"rocfold/domain/dataset"
)

// TwoClassBlobs builds a binary dataset of two Gaussian clusters with unit
// variance, centered at -separation/2 and +separation/2 on every feature.
// Class 0 rows come first, then class 1, matching the bundled dataset layout.
// The same seed always produces the same table.
func TwoClassBlobs(perClass, features int, separation float64, seed int64) *dataset.Table {
	rng := rand.New(rand.NewSource(seed))

	rows := 2 * perClass
	data := make([]float64, 0, rows*features)
	labels := make([]int, 0, rows)

	for class := 0; class < 2; class++ {
		center := -separation / 2
		if class == 1 {
			center = separation / 2
		}
		for i := 0; i < perClass; i++ {
			for j := 0; j < features; j++ {
				data = append(data, center+rng.NormFloat64())
			}
			labels = append(labels, class)
		}
	}

	names := make([]string, features)
	for j := range names {
		names[j] = "f"
	}

	return &dataset.Table{
		Features:     mat.NewDense(rows, features, data),
		Labels:       labels,
		FeatureNames: names,
		ClassNames:   []string{"blob_a", "blob_b"},
		Key:          core.DatasetKey("testkit.blobs"),
	}
}

// ThreeClassBlobs appends a third cluster beyond class 1, for loader-style
// filtering tests.
func ThreeClassBlobs(perClass, features int, separation float64, seed int64) *dataset.Table {
	two := TwoClassBlobs(perClass, features, separation, seed)

	rng := rand.New(rand.NewSource(seed + 1))
	rows := 3 * perClass
	data := make([]float64, 0, rows*features)

	raw := two.Features.RawMatrix()
	data = append(data, raw.Data...)
	labels := append([]int{}, two.Labels...)

	center := 1.5 * separation
	for i := 0; i < perClass; i++ {
		for j := 0; j < features; j++ {
			data = append(data, center+rng.NormFloat64())
		}
		labels = append(labels, 2)
	}

	return &dataset.Table{
		Features:     mat.NewDense(rows, features, data),
		Labels:       labels,
		FeatureNames: two.FeatureNames,
		ClassNames:   []string{"blob_a", "blob_b", "blob_c"},
		Key:          core.DatasetKey("testkit.blobs"),
	}
}

package dataset

import (
	_ "embed"
	"encoding/csv"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"rocfold/domain/core"
	"rocfold/internal/errors"
)

//go:embed iris.csv
var irisCSV string

// LoadIris parses the bundled iris dataset: 150 samples, 4 numeric features,
// 3 classes encoded by order of appearance (setosa=0, versicolor=1, virginica=2).
func LoadIris() (*Table, error) {
	reader := csv.NewReader(strings.NewReader(irisCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse bundled iris data")
	}
	if len(records) < 2 {
		return nil, errors.DatasetError("bundled iris data is empty")
	}

	header := records[0]
	featureNames := header[:len(header)-1]
	nFeatures := len(featureNames)
	rows := records[1:]

	data := make([]float64, 0, len(rows)*nFeatures)
	labels := make([]int, 0, len(rows))
	classIndex := make(map[string]int)
	var classNames []string

	for i, rec := range rows {
		if len(rec) != nFeatures+1 {
			return nil, errors.DatasetError("row " + strconv.Itoa(i+1) + " has wrong column count")
		}
		for j := 0; j < nFeatures; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %s is not numeric", i+1, featureNames[j])
			}
			data = append(data, v)
		}

		species := rec[nFeatures]
		idx, seen := classIndex[species]
		if !seen {
			idx = len(classNames)
			classIndex[species] = idx
			classNames = append(classNames, species)
		}
		labels = append(labels, idx)
	}

	table := &Table{
		Features:     mat.NewDense(len(rows), nFeatures, data),
		Labels:       labels,
		FeatureNames: featureNames,
		ClassNames:   classNames,
		Key:          core.DatasetKey("iris"),
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

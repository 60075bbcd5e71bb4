package crossval

import (
	"sort"

	"rocfold/domain/core"
)

// Fold is one (train, test) index pair. Within a fold the two index sets are
// disjoint; across all folds the test sets partition the full index set.
type Fold struct {
	Train []int
	Test  []int
}

// StratifiedKFold partitions sample indices into k folds whose class
// proportions approximate the full label vector's proportions. Assignment is
// deterministic: each class's indices are split into k contiguous chunks in
// their original order, the first len%k chunks taking one extra sample.
func StratifiedKFold(labels []int, k int) ([]Fold, error) {
	if k < 2 {
		return nil, core.ErrFoldCount
	}
	if len(labels) == 0 {
		return nil, core.ErrInsufficientData
	}

	byClass := make(map[int][]int)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	for _, c := range classes {
		if len(byClass[c]) < k {
			return nil, core.NewStratificationError(c, len(byClass[c]), k)
		}
	}

	testSets := make([][]int, k)
	for _, c := range classes {
		indices := byClass[c]
		n := len(indices)
		base := n / k
		rem := n % k

		start := 0
		for f := 0; f < k; f++ {
			size := base
			if f < rem {
				size++
			}
			testSets[f] = append(testSets[f], indices[start:start+size]...)
			start += size
		}
	}

	folds := make([]Fold, k)
	for f := 0; f < k; f++ {
		sort.Ints(testSets[f])
		inTest := make(map[int]bool, len(testSets[f]))
		for _, i := range testSets[f] {
			inTest[i] = true
		}

		train := make([]int, 0, len(labels)-len(testSets[f]))
		for i := range labels {
			if !inTest[i] {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: testSets[f]}
	}

	return folds, nil
}

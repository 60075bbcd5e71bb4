package svm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocfold/domain/core"
	"rocfold/internal/testkit"
)

func TestLinearSVC_SeparatesBlobs(t *testing.T) {
	table := testkit.TwoClassBlobs(40, 4, 6.0, 11)
	trainer := NewLinearSVC(DefaultConfig())

	model, err := trainer.Fit(context.Background(), table)
	require.NoError(t, err)

	probs, err := model.PredictProbabilities(table)
	require.NoError(t, err)
	require.Len(t, probs, table.Rows())

	correct := 0
	for i, p := range probs {
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		predicted := 0
		if p >= 0.5 {
			predicted = 1
		}
		if predicted == table.Labels[i] {
			correct++
		}
	}
	assert.Greater(t, float64(correct)/float64(table.Rows()), 0.95,
		"well-separated clusters should be classified almost perfectly")
}

func TestLinearSVC_DeterministicForSeed(t *testing.T) {
	table := testkit.TwoClassBlobs(30, 8, 2.0, 5)
	cfg := DefaultConfig()
	cfg.Seed = 123

	a, err := NewLinearSVC(cfg).Fit(context.Background(), table)
	require.NoError(t, err)
	b, err := NewLinearSVC(cfg).Fit(context.Background(), table)
	require.NoError(t, err)

	modelA := a.(*Model)
	modelB := b.(*Model)
	assert.Equal(t, modelA.Weights(), modelB.Weights())
	assert.Equal(t, modelA.Bias(), modelB.Bias())

	probsA, err := a.PredictProbabilities(table)
	require.NoError(t, err)
	probsB, err := b.PredictProbabilities(table)
	require.NoError(t, err)
	assert.Equal(t, probsA, probsB)
}

func TestLinearSVC_ProbabilitiesFollowMargin(t *testing.T) {
	table := testkit.TwoClassBlobs(30, 4, 3.0, 9)
	model, err := NewLinearSVC(DefaultConfig()).Fit(context.Background(), table)
	require.NoError(t, err)

	decision, err := model.DecisionValues(table)
	require.NoError(t, err)
	probs, err := model.PredictProbabilities(table)
	require.NoError(t, err)

	for i := range decision {
		for j := range decision {
			if decision[i] > decision[j] && probs[i] < probs[j] {
				t.Fatalf("probability must be monotone in the margin: f(%d)=%v p=%v vs f(%d)=%v p=%v",
					i, decision[i], probs[i], j, decision[j], probs[j])
			}
		}
	}
}

func TestLinearSVC_RejectsSingleClass(t *testing.T) {
	table := testkit.TwoClassBlobs(10, 3, 2.0, 3).FilterClasses(0)

	_, err := NewLinearSVC(DefaultConfig()).Fit(context.Background(), table)
	assert.ErrorIs(t, err, core.ErrDegenerateFold)
}

func TestLinearSVC_RejectsNonBinaryLabels(t *testing.T) {
	table := testkit.ThreeClassBlobs(10, 3, 2.0, 3)

	_, err := NewLinearSVC(DefaultConfig()).Fit(context.Background(), table)
	assert.ErrorIs(t, err, core.ErrNotBinary)
}

func TestLinearSVC_ModelRejectsShapeMismatch(t *testing.T) {
	train := testkit.TwoClassBlobs(10, 4, 2.0, 3)
	other := testkit.TwoClassBlobs(10, 6, 2.0, 3)

	model, err := NewLinearSVC(DefaultConfig()).Fit(context.Background(), train)
	require.NoError(t, err)

	_, err = model.PredictProbabilities(other)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestFitSigmoid_DirectionAndRange(t *testing.T) {
	// Larger decision values belong to the positive class, so the fitted
	// sigmoid must be increasing in the decision value.
	decision := []float64{-2.0, -1.5, -1.0, -0.5, 0.5, 1.0, 1.5, 2.0}
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1}

	a, b := fitSigmoid(decision, labels)
	require.Negative(t, a, "slope must be negative so that 1/(1+exp(a*f+b)) increases with f")

	low := sigmoid(-2.0, a, b)
	high := sigmoid(2.0, a, b)
	assert.Less(t, low, 0.5)
	assert.Greater(t, high, 0.5)
	assert.Greater(t, low, 0.0)
	assert.Less(t, high, 1.0)
}

func TestFitSigmoid_DeterministicFit(t *testing.T) {
	decision := []float64{-1.2, 0.3, -0.7, 1.8, 0.9, -2.1}
	labels := []int{0, 1, 0, 1, 1, 0}

	a1, b1 := fitSigmoid(decision, labels)
	a2, b2 := fitSigmoid(decision, labels)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

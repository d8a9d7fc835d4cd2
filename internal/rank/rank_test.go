package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"faqmatch/internal/domain"
)

func TestAllKeepsDocumentOrder(t *testing.T) {
	matrix := [][]float64{
		{1, 0},
		{0.5, 0.5},
		{-1, 0},
		{0, 0},
	}
	scores := All(matrix, []float64{1, 0})

	assert.Len(t, scores, 4)
	for i, s := range scores {
		assert.Equal(t, i, s.ID)
		assert.GreaterOrEqual(t, s.Value, -1.0)
		assert.LessOrEqual(t, s.Value, 1.0)
	}
	assert.InDelta(t, 1.0, scores[0].Value, 1e-12)
	assert.InDelta(t, -1.0, scores[2].Value, 1e-12)
	assert.Zero(t, scores[3].Value) // zero-norm row never divides
}

func TestZeroQueryScoresZero(t *testing.T) {
	scores := All([][]float64{{1, 2}, {3, 4}}, []float64{0, 0})
	for _, s := range scores {
		assert.Zero(t, s.Value)
	}
}

func TestPositiveScalarMultipleScoresOne(t *testing.T) {
	scores := All([][]float64{{2, 4, 6}}, []float64{1, 2, 3})
	assert.InDelta(t, 1.0, scores[0].Value, 1e-12)
}

func TestAboveThresholdIsStrict(t *testing.T) {
	scores := []Score{
		{ID: 0, Value: 0.3},
		{ID: 1, Value: 0.31},
		{ID: 2, Value: 0.9},
		{ID: 3, Value: 0.1},
	}
	kept := AboveThreshold(scores, 0.3)
	assert.Equal(t, []Score{{ID: 1, Value: 0.31}, {ID: 2, Value: 0.9}}, kept)
}

func TestSortByScoreTiesKeepIDOrder(t *testing.T) {
	matches := []domain.Match{
		{ID: 0, Score: 0.5},
		{ID: 1, Score: 0.9},
		{ID: 2, Score: 0.5},
	}
	SortByScore(matches)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 0, matches[1].ID)
	assert.Equal(t, 2, matches[2].ID)
}

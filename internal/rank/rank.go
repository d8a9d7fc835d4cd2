package rank

import (
	"math"
	"sort"

	"faqmatch/internal/domain"
)

// Score is one document's cosine similarity against a query vector.
type Score struct {
	ID    int
	Value float64
}

// All computes the cosine similarity of the query against every matrix row,
// returned in ascending document-id order. A zero-norm query or row scores 0
// instead of dividing by zero.
func All(matrix [][]float64, query []float64) []Score {
	qn := norm(query)
	scores := make([]Score, len(matrix))
	for i, row := range matrix {
		scores[i] = Score{ID: i, Value: cosine(row, query, qn)}
	}
	return scores
}

// AboveThreshold keeps scores strictly greater than the cutoff, preserving
// document order.
func AboveThreshold(scores []Score, threshold float64) []Score {
	out := make([]Score, 0, len(scores))
	for _, s := range scores {
		if s.Value > threshold {
			out = append(out, s)
		}
	}
	return out
}

// SortByScore orders matches best first. The sort is stable, so equal scores
// keep their ascending document-id order.
func SortByScore(matches []domain.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}

func cosine(row, query []float64, queryNorm float64) float64 {
	rn := norm(row)
	if rn == 0 || queryNorm == 0 {
		return 0
	}
	return dot(row, query) / (rn * queryNorm)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

package tfidf

import (
	"math"
	"sort"
)

// Model is a trained TF-IDF vector space: a fixed vocabulary, the idf weight
// of every term and one tf*idf row per corpus document. Vocabulary order
// defines matrix column order and must survive persistence unchanged.
type Model struct {
	Vocabulary []string
	IDF        []float64
	Matrix     [][]float64

	index map[string]int // term -> column, built lazily
}

// Fit builds a model from the tokenized corpus. The vocabulary is the sorted
// union of all terms, df(t) counts documents containing t at least once and
// idf(t) = ln((1+N)/(1+df(t))), so a term present in every document weighs
// zero. tf is the raw occurrence count, not normalized by document length.
// An empty corpus yields an empty vocabulary and an empty matrix.
func Fit(docs [][]string) *Model {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &Model{
		Vocabulary: terms,
		IDF:        make([]float64, len(terms)),
		Matrix:     make([][]float64, len(docs)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		m.IDF[i] = math.Log((1 + n) / (1 + float64(df[term])))
	}
	for i, doc := range docs {
		m.Matrix[i] = m.QueryVector(doc)
	}
	return m
}

// Dimension returns the vocabulary size.
func (m *Model) Dimension() int { return len(m.Vocabulary) }

// QueryVector projects tokens onto the trained space: raw counts of
// in-vocabulary terms multiplied by their idf, in vocabulary column order.
// Out-of-vocabulary tokens carry no signal and are dropped; a query sharing
// no terms with the vocabulary yields the all-zero vector.
func (m *Model) QueryVector(tokens []string) []float64 {
	vec := make([]float64, len(m.Vocabulary))
	idx := m.termIndex()
	tf := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if col, ok := idx[tok]; ok {
			tf[col]++
		}
	}
	for col, count := range tf {
		vec[col] = float64(count) * m.IDF[col]
	}
	return vec
}

func (m *Model) termIndex() map[string]int {
	if m.index == nil {
		m.index = make(map[string]int, len(m.Vocabulary))
		for i, term := range m.Vocabulary {
			m.index[term] = i
		}
	}
	return m.index
}

package service

import (
	"fmt"
	"strings"

	"faqmatch/internal/domain"
	"faqmatch/internal/rank"
	"faqmatch/internal/store"
	"faqmatch/internal/tfidf"
)

// Service wires the corpus, the tokenizer and the persisted model into the
// train and predict operations.
type Service struct {
	corpus    domain.CorpusStore
	tokenizer domain.Tokenizer
	models    *store.ModelStore
	threshold float64
}

func New(corpus domain.CorpusStore, tokenizer domain.Tokenizer, models *store.ModelStore, threshold float64) *Service {
	return &Service{corpus: corpus, tokenizer: tokenizer, models: models, threshold: threshold}
}

// Train rebuilds the model from the full corpus and replaces the persisted
// token table and model table. Any error aborts the run; the previous model
// files stay in place untouched.
func (s *Service) Train() (*domain.TrainResult, error) {
	pairs, err := s.corpus.Load()
	if err != nil {
		return nil, err
	}
	docs := make([][]string, len(pairs))
	for i, p := range pairs {
		tokens, err := s.tokenizer.Tokenize(p.Question)
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", domain.ErrTokenize, p.ID, err)
		}
		docs[i] = tokens
	}
	if err := s.models.WriteTokens(docs); err != nil {
		return nil, err
	}
	model := tfidf.Fit(docs)
	if err := s.models.WriteModel(model); err != nil {
		return nil, err
	}
	return &domain.TrainResult{Documents: len(docs), Vocabulary: model.Dimension()}, nil
}

// Predict projects the query into the trained space and returns every corpus
// entry whose cosine similarity is strictly above the threshold, best first.
// A query with no in-vocabulary tokens yields zero matches, not an error.
func (s *Service) Predict(query string) (*domain.PredictResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	pairs, err := s.corpus.Load()
	if err != nil {
		return nil, err
	}
	model, err := s.models.ReadModel()
	if err != nil {
		return nil, err
	}
	tokens, err := s.tokenizer.Tokenize(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenize, err)
	}

	vec := model.QueryVector(tokens)
	scores := rank.AboveThreshold(rank.All(model.Matrix, vec), s.threshold)
	matches := make([]domain.Match, 0, len(scores))
	for _, sc := range scores {
		if sc.ID >= len(pairs) {
			return nil, fmt.Errorf("%w: model row %d has no corpus entry", domain.ErrModelDecode, sc.ID)
		}
		p := pairs[sc.ID]
		matches = append(matches, domain.Match{ID: p.ID, Question: p.Question, Answer: p.Answer, Score: sc.Value})
	}
	rank.SortByScore(matches)
	return &domain.PredictResult{Query: query, Matches: matches}, nil
}

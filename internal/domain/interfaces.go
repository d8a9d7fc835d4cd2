package domain

// QAPair is a single question/answer record from the corpus. ID is the
// 0-based position in the corpus file; it ties a tokenized document, a model
// matrix row and an answer together and must be re-derived identically on
// every load.
type QAPair struct {
	ID       int
	Question string
	Answer   string
}

// Match is a corpus entry scored against a query.
type Match struct {
	ID       int
	Question string
	Answer   string
	Score    float64
}

// TrainResult reports what a full training run produced.
type TrainResult struct {
	Documents  int
	Vocabulary int
}

// PredictResult carries every match above the similarity threshold, best
// first.
type PredictResult struct {
	Query   string
	Matches []Match
}

// Tokenizer converts free text into an ordered sequence of token strings.
// Concrete segmenters are selected at assembly time; the matching core never
// depends on one.
type Tokenizer interface {
	Name() string
	Tokenize(text string) ([]string, error)
}

// CorpusStore loads the fixed question/answer corpus in file order.
type CorpusStore interface {
	Load() ([]QAPair, error)
}

// Matcher defines the operations exposed by the application core.
type Matcher interface {
	Train() (*TrainResult, error)
	Predict(query string) (*PredictResult, error)
}

package store

import (
	"encoding/csv"
	"fmt"
	"os"

	"faqmatch/internal/domain"
)

// CorpusFile reads the question/answer corpus from a headerless CSV file.
// Column indexes are configurable; the upstream data keeps the answer in
// column 2 and the question in column 3.
type CorpusFile struct {
	path        string
	questionCol int
	answerCol   int
}

func NewCorpusFile(path string, questionCol, answerCol int) *CorpusFile {
	return &CorpusFile{path: path, questionCol: questionCol, answerCol: answerCol}
}

// Load reads every record in file order and assigns ids by position.
func (c *CorpusFile) Load() ([]domain.QAPair, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusRead, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusRead, err)
	}
	pairs := make([]domain.QAPair, 0, len(records))
	for i, rec := range records {
		if c.questionCol >= len(rec) || c.answerCol >= len(rec) {
			return nil, fmt.Errorf("%w: record %d has %d columns, need question at %d and answer at %d",
				domain.ErrCorpusRead, i, len(rec), c.questionCol, c.answerCol)
		}
		pairs = append(pairs, domain.QAPair{ID: i, Question: rec[c.questionCol], Answer: rec[c.answerCol]})
	}
	return pairs, nil
}

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqmatch/internal/domain"
	"faqmatch/internal/store"
	"faqmatch/internal/tokenizer"
)

const twoQuestionCorpus = "0,faq,9 to 5,store hours\n1,faq,30 days,return policy\n"

func newTestService(t *testing.T, corpusRows string, threshold float64) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "qa.csv")
	require.NoError(t, os.WriteFile(corpusPath, []byte(corpusRows), 0o644))
	corpus := store.NewCorpusFile(corpusPath, 3, 2)
	models := store.NewModelStore(filepath.Join(dir, "out"))
	return New(corpus, tokenizer.New(false), models, threshold), corpusPath
}

func TestTrainThenPredictScenario(t *testing.T) {
	svc, _ := newTestService(t, twoQuestionCorpus, 0.3)

	res, err := svc.Train()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Documents)
	assert.Equal(t, 4, res.Vocabulary)

	// Exact token overlap with document 0; document 1 shares nothing and
	// must fall below the threshold.
	pred, err := svc.Predict("store hours")
	require.NoError(t, err)
	require.Len(t, pred.Matches, 1)
	m := pred.Matches[0]
	assert.Equal(t, 0, m.ID)
	assert.Equal(t, "store hours", m.Question)
	assert.Equal(t, "9 to 5", m.Answer)
	assert.InDelta(t, 1.0, m.Score, 1e-9)
}

func TestPredictEmptyQuery(t *testing.T) {
	svc, _ := newTestService(t, twoQuestionCorpus, 0.3)
	_, err := svc.Train()
	require.NoError(t, err)

	_, err = svc.Predict("   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestPredictAllOutOfVocabulary(t *testing.T) {
	svc, _ := newTestService(t, twoQuestionCorpus, 0.3)
	_, err := svc.Train()
	require.NoError(t, err)

	pred, err := svc.Predict("completely unrelated words")
	require.NoError(t, err)
	assert.Empty(t, pred.Matches)
}

func TestPredictWithoutTrainedModel(t *testing.T) {
	svc, _ := newTestService(t, twoQuestionCorpus, 0.3)
	_, err := svc.Predict("store hours")
	assert.ErrorIs(t, err, domain.ErrModelDecode)
}

func TestTrainFailsOnMissingCorpus(t *testing.T) {
	dir := t.TempDir()
	corpus := store.NewCorpusFile(filepath.Join(dir, "nope.csv"), 3, 2)
	models := store.NewModelStore(filepath.Join(dir, "out"))
	svc := New(corpus, tokenizer.New(false), models, 0.3)

	_, err := svc.Train()
	assert.ErrorIs(t, err, domain.ErrCorpusRead)
}

func TestRetrainKeepsIDsForUnmovedDocuments(t *testing.T) {
	svc, corpusPath := newTestService(t, twoQuestionCorpus, 0.3)

	first, err := svc.Train()
	require.NoError(t, err)

	// Append a document: the vocabulary may only grow and earlier ids keep
	// referencing the same answers.
	appended := twoQuestionCorpus + "2,faq,free over fifty,shipping cost\n"
	require.NoError(t, os.WriteFile(corpusPath, []byte(appended), 0o644))

	second, err := svc.Train()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, second.Vocabulary, first.Vocabulary)

	pred, err := svc.Predict("return policy")
	require.NoError(t, err)
	require.Len(t, pred.Matches, 1)
	assert.Equal(t, 1, pred.Matches[0].ID)
	assert.Equal(t, "30 days", pred.Matches[0].Answer)
}

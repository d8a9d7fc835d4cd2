package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Matcher.Threshold)
	assert.Equal(t, 3, cfg.Corpus.QuestionCol)
	assert.Equal(t, 2, cfg.Corpus.AnswerCol)
	assert.Equal(t, "unicode", cfg.Tokenizer.Type)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("corpus:\n  path: data/faq.csv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/faq.csv", cfg.Corpus.Path)
	assert.Equal(t, 0.3, cfg.Matcher.Threshold)
	assert.Equal(t, "output", cfg.Matcher.ModelDir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := defaultConfig()
	cfg.Matcher.Threshold = 0.5
	cfg.Tokenizer.Type = "jieba"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

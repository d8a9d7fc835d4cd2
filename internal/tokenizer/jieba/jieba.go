// Package jieba wraps gojieba as a tokenizer for CJK corpora, where
// whitespace-oriented word splitting produces no usable terms.
package jieba

import (
	"errors"

	"github.com/yanyiwu/gojieba"
)

// Tokenizer segments text with gojieba. Close must be called to release the
// underlying dictionaries.
type Tokenizer struct {
	jieba *gojieba.Jieba
}

// New creates a jieba tokenizer. With no arguments the dictionaries bundled
// with gojieba are used; custom dictionary paths may be passed through.
func New(dictPaths ...string) *Tokenizer {
	return &Tokenizer{jieba: gojieba.NewJieba(dictPaths...)}
}

// Name returns the identifier of this tokenizer implementation.
func (t *Tokenizer) Name() string { return "jieba" }

// Tokenize cuts the text in search-engine mode, keeping token order.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	if t.jieba == nil {
		return nil, errors.New("jieba tokenizer is closed")
	}
	return t.jieba.Cut(text, true), nil
}

// Close frees the segmenter. The tokenizer is unusable afterwards.
func (t *Tokenizer) Close() {
	if t.jieba != nil {
		t.jieba.Free()
		t.jieba = nil
	}
}

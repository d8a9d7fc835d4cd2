package tokenizer

import (
	"regexp"
	"strings"
)

// Unicode splits text into lowercased unicode word tokens, optionally
// dropping common English stopwords.
type Unicode struct {
	pattern   *regexp.Regexp
	stopwords map[string]struct{}
}

// New creates the default word tokenizer.
func New(filterStopwords bool) *Unicode {
	t := &Unicode{pattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)}
	if filterStopwords {
		t.stopwords = defaultStopwords()
	}
	return t
}

// Name returns the identifier of this tokenizer implementation.
func (t *Unicode) Name() string { return "unicode" }

// Tokenize never fails; any input is reduced to its word runs.
func (t *Unicode) Tokenize(text string) ([]string, error) {
	raw := t.pattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := t.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	tok := New(false)
	got, err := tok.Tokenize("Store HOURS, please!")
	assert.NoError(t, err)
	assert.Equal(t, []string{"store", "hours", "please"}, got)
}

func TestTokenizeKeepsNumbersAndApostrophes(t *testing.T) {
	tok := New(false)
	got, _ := tok.Tokenize("we're open 9 till 17")
	assert.Equal(t, []string{"we're", "open", "9", "till", "17"}, got)
}

func TestTokenizeStopwords(t *testing.T) {
	tok := New(true)
	got, _ := tok.Tokenize("what are the store hours")
	assert.Equal(t, []string{"what", "store", "hours"}, got)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok := New(true)
	got, err := tok.Tokenize("   \n\t")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

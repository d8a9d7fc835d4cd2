package domain

import "errors"

// Error kinds. Each one aborts the whole operation at the point of
// detection; callers classify with errors.Is and never retry.
var (
	ErrCorpusRead  = errors.New("corpus read failed")
	ErrTokenize    = errors.New("tokenization failed")
	ErrModelDecode = errors.New("model decode failed")
	ErrEmptyQuery  = errors.New("empty query")
)

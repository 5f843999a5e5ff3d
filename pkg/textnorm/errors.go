package textnorm

import "errors"

var (
	// ErrResourceUnavailable indicates the stopword resource could not be loaded.
	ErrResourceUnavailable = errors.New("stopword resource unavailable")
	// ErrNormalize indicates the text could not be folded or segmented.
	ErrNormalize = errors.New("normalize text")
)

package artifacts

import "errors"

var (
	// ErrNotFound indicates an artifact file is missing from its source.
	ErrNotFound = errors.New("artifact not found")
	// ErrDecode indicates an artifact could not be decoded by any supported format.
	ErrDecode = errors.New("artifact decode failed")
	// ErrIncompatible indicates the classifier does not fit the vectorizer's feature space.
	ErrIncompatible = errors.New("classifier incompatible with vectorizer")
)

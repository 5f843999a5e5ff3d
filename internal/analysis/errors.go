package analysis

import (
	"errors"
	"net/http"
)

// Domain errors for analysis operations.
var (
	ErrEmptyReview    = errors.New("review is empty")
	ErrReviewTooLarge = errors.New("review exceeds maximum size")
	ErrInvalidRequest = errors.New("invalid analyze request")
	ErrUnavailable    = errors.New("sentiment model unavailable")
	ErrInference      = errors.New("sentiment inference failed")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyReview) || errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrReviewTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

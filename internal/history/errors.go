package history

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/opiniao/pkg/database"
)

// Domain errors for history operations.
var (
	ErrNotFound  = errors.New("analysis not found")
	ErrDuplicate = errors.New("analysis already recorded")
	ErrInvalidID = errors.New("invalid analysis id")
	ErrRejected  = errors.New("analysis rejected by store constraints")
)

// MapHTTPStatus maps history domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRejected) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, database.ErrNotReady) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

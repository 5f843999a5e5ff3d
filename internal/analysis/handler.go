package analysis

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/opiniao/pkg/handlers"
	"github.com/JaimeStill/opiniao/pkg/routes"
)

// jsonOverhead allows for field names and escaping in an analyze request body.
const jsonOverhead = 1024

// Handler provides HTTP endpoints for review analysis.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxReviewSize int64
}

// NewHandler creates a Handler with the given system, logger, and review size limit.
func NewHandler(sys System, logger *slog.Logger, maxReviewSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analysis"),
		maxReviewSize: maxReviewSize,
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Analysis"},
		Description: "Classify review sentiment and report model readiness",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/analyze", Handler: h.Analyze, OpenAPI: Spec.Analyze},
			{Method: "GET", Pattern: "/status", Handler: h.Status, OpenAPI: Spec.Status},
		},
	}
}

// Analyze classifies the review in a JSON AnalyzeCommand body.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	// a surrogate pair escape spends twelve bytes on one character
	r.Body = http.MaxBytesReader(w, r.Body, h.maxReviewSize*12+jsonOverhead)

	var cmd AnalyzeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrReviewTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	a, err := h.sys.Analyze(r.Context(), cmd.Review)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Status reports model readiness. Responds 503 while the model is unavailable.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.sys.Status(r.Context())
	if !st.Ready {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, st)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, st)
}

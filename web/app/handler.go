package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/pkg/routes"
	"github.com/JaimeStill/opiniao/pkg/web"
)

// formOverhead allows for the field name and other form fields.
const formOverhead = 1024

// page is the view model of the index template.
type page struct {
	Review   string
	Result   *analysis.Analysis
	Warning  string
	Error    string
	Detail   string
	Status   analysis.Status
	MaxChars int64
}

type handler struct {
	sys           analysis.System
	views         *web.TemplateSet
	logger        *slog.Logger
	maxReviewSize int64
}

func newHandler(sys analysis.System, views *web.TemplateSet, logger *slog.Logger, maxReviewSize int64) *handler {
	return &handler{
		sys:           sys,
		views:         views,
		logger:        logger.With("handler", "form"),
		maxReviewSize: maxReviewSize,
	}
}

func (h *handler) routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.views.PageHandler(layout, indexView, h.indexPage)},
			{Method: "POST", Pattern: "/analyze", Handler: h.analyze},
		},
	}
}

// indexPage is the empty form, flagged when the model cannot be loaded.
func (h *handler) indexPage(r *http.Request) any {
	p := &page{Status: h.sys.Status(r.Context()), MaxChars: h.maxReviewSize}
	if !p.Status.Ready {
		p.Error = msgUnavailable
		p.Detail = p.Status.Error
	}
	return p
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	// a four-byte character percent-encodes to twelve bytes
	r.Body = http.MaxBytesReader(w, r.Body, h.maxReviewSize*12+formOverhead)

	p := &page{MaxChars: h.maxReviewSize}

	if err := r.ParseForm(); err != nil {
		p.Status = h.sys.Status(r.Context())
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
			p.Error = msgTooLarge
		} else {
			p.Error = msgInvalid
		}
		h.logger.Warn("form rejected", "status", status, "error", err)
		h.views.Respond(w, status, layout, indexView, p)
		return
	}

	p.Review = r.PostFormValue("review")

	a, err := h.sys.Analyze(r.Context(), p.Review)
	p.Status = h.sys.Status(r.Context())
	if err != nil {
		status := analysis.MapHTTPStatus(err)
		switch {
		case errors.Is(err, analysis.ErrEmptyReview):
			p.Warning = msgEmpty
		case errors.Is(err, analysis.ErrReviewTooLarge):
			p.Error = msgTooLarge
		case errors.Is(err, analysis.ErrUnavailable):
			p.Error = msgUnavailable
			p.Detail = err.Error()
		default:
			p.Error = msgInference
			p.Detail = err.Error()
		}

		if status >= http.StatusInternalServerError {
			h.logger.Error("analysis failed", "status", status, "error", err)
		} else {
			h.logger.Warn("analysis rejected", "status", status, "error", err)
		}
		h.views.Respond(w, status, layout, indexView, p)
		return
	}

	p.Result = a
	h.views.Respond(w, http.StatusOK, layout, indexView, p)
}

const (
	msgEmpty       = "Por favor, digite uma avaliação."
	msgTooLarge    = "A avaliação excede o tamanho máximo permitido."
	msgInvalid     = "Não foi possível ler o formulário enviado."
	msgUnavailable = "Não foi possível carregar os componentes necessários."
	msgInference   = "Erro na análise."
)

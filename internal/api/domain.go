package api

import (
	"github.com/JaimeStill/opiniao/internal/analysis"
	"github.com/JaimeStill/opiniao/internal/history"
)

// Domain holds all domain systems that comprise the API.
// History is nil unless analysis history is enabled.
type Domain struct {
	Analysis analysis.System
	History  history.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	d := &Domain{}

	// nil interfaces, not typed nil pointers, switch the optional features off
	var recorder analysis.Recorder
	if runtime.History {
		d.History = history.New(runtime.Database, runtime.Logger, runtime.Pagination)
		recorder = d.History
	}

	var language analysis.LanguageDetector
	if runtime.Language != nil {
		language = runtime.Language
	}

	d.Analysis = analysis.New(
		runtime.Normalizer,
		runtime.Loader,
		language,
		recorder,
		runtime.Logger,
		runtime.MaxReviewSize,
	)

	return d
}

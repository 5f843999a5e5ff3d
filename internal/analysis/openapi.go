package analysis

import "github.com/JaimeStill/opiniao/pkg/openapi"

type spec struct {
	Analyze *openapi.Operation
	Status  *openapi.Operation
}

// Spec documents the analysis endpoints.
var Spec = spec{
	Analyze: &openapi.Operation{
		Summary:     "Analyze a review",
		Description: "Normalizes the review, vectorizes it, and classifies its sentiment.",
		RequestBody: openapi.RequestBodyJSON("AnalyzeCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sentiment analysis", "Analysis"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
			500: openapi.ResponseRef("InternalError"),
			503: openapi.ResponseRef("ServiceUnavailable"),
		},
	},
	Status: &openapi.Operation{
		Summary: "Model readiness",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Model loaded", "Status"),
			503: openapi.ResponseJSON("Model unavailable", "Status"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	probability := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "number", Format: "double", Description: desc, Minimum: ptr(0.0), Maximum: ptr(1.0)}
	}

	return map[string]*openapi.Schema{
		"AnalyzeCommand": {
			Type:     "object",
			Required: []string{"review"},
			Properties: map[string]*openapi.Schema{
				"review": {Type: "string", Description: "Review text in Portuguese", Example: "Produto excelente, chegou antes do prazo!"},
			},
		},
		"Probabilities": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"negative": probability("Probability of negative sentiment"),
				"positive": probability("Probability of positive sentiment"),
			},
		},
		"Analysis": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"review":        {Type: "string"},
				"normalized":    {Type: "string", Description: "Lowercase, accent-free tokens joined by single spaces"},
				"sentiment":     {Type: "string", Enum: []any{SentimentPositive, SentimentNegative}},
				"label":         {Type: "integer", Enum: []any{0, 1}},
				"confidence":    probability("Probability of the predicted sentiment"),
				"probabilities": openapi.SchemaRef("Probabilities"),
				"language":      {Type: "string", Description: "ISO 639-1 code or unknown"},
				"warning":       {Type: "string"},
				"analyzed_at":   {Type: "string", Format: "date-time"},
			},
		},
		"Status": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"ready":          {Type: "boolean"},
				"source":         {Type: "string"},
				"loaded_at":      {Type: "string", Format: "date-time"},
				"vocabulary":     {Type: "integer"},
				"classifier":     {Type: "string"},
				"language_check": {Type: "boolean"},
				"history":        {Type: "boolean"},
				"error":          {Type: "string"},
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }

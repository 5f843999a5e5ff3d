package history

import "github.com/JaimeStill/opiniao/pkg/openapi"

type spec struct {
	List *openapi.Operation
	Find *openapi.Operation
}

// Spec documents the history endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary: "List recorded analyses",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search review text", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, prefix - for descending. Example: -AnalyzedAt", false),
			openapi.QueryParam("sentiment", "string", "Filter by sentiment (positive or negative)", false),
			openapi.QueryParam("language", "string", "Filter by detected language code", false),
			openapi.QueryParam("since", "string", "Only analyses at or after this RFC 3339 timestamp", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of analyses", "AnalysisPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a recorded analysis",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Analysis ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Analysis", "Analysis"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"AnalysisPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Analysis")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}

package openapi

import "maps"

// NewComponents creates Components holding the shared error schema and the
// error responses every handler may return.
func NewComponents() *Components {
	c := &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
		},
		Responses: map[string]*Response{},
	}

	for name, desc := range map[string]string{
		"BadRequest":         "Invalid request",
		"NotFound":           "Resource not found",
		"PayloadTooLarge":    "Request body exceeds the configured limit",
		"InternalError":      "Unexpected server error",
		"ServiceUnavailable": "Dependency not ready",
	} {
		c.Responses[name] = ResponseJSON(desc, "Error")
	}

	return c
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

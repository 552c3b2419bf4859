package openapi

import "maps"

// NewComponents creates Components pre-populated with the shared error
// envelope schema and the coded error responses every endpoint can return.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"ErrorEnvelope": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {
						Type: "object",
						Properties: map[string]*Schema{
							"code":     {Type: "string", Description: "Machine-readable error code"},
							"message":  {Type: "string", Description: "Human-readable error message"},
							"trace_id": {Type: "string", Description: "Request trace id"},
						},
					},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid request body",
				Content: map[string]*MediaType{
					"application/json": {
						Schema: &Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"error": {Type: "string", Description: "Error message"},
							},
						},
					},
				},
			},
			"Unauthorized": {
				Description: "Missing or invalid API key",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorEnvelope")},
				},
			},
			"RateLimited": {
				Description: "Per-key request quota exceeded",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorEnvelope")},
				},
			},
			"PayloadTooLarge": {
				Description: "Request body exceeds the configured size cap",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorEnvelope")},
				},
			},
			"Timeout": {
				Description: "Request processing exceeded the deadline",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("ErrorEnvelope")},
				},
			},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

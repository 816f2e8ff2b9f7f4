package outform

import "encoding/json"

// FallbackSchemaName is used when a response schema carries no explicit
// name and its schema document has no title.
const FallbackSchemaName = "response_schema"

// ResponseSchema describes the structured output a completion must conform
// to. Schema holds a raw JSON Schema document, typically produced by
// SchemaFrom or the schema package.
type ResponseSchema struct {
	// Name identifies the schema to the service. When empty, the schema
	// document's title is used, then FallbackSchemaName.
	Name string
	// Description is an optional human-readable summary.
	Description string
	// Schema is the JSON Schema document for the expected object.
	Schema json.RawMessage
}

// SchemaDocument is the object schema sent on the wire. Strict mode
// requires type "object" and additionalProperties false at the top level.
type SchemaDocument struct {
	Type                 string                     `json:"type"`
	Properties           map[string]json.RawMessage `json:"properties"`
	Required             []string                   `json:"required"`
	AdditionalProperties bool                       `json:"additionalProperties"`
}

// JSONSchema is the named, strict wrapper around a SchemaDocument.
type JSONSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Schema      SchemaDocument `json:"schema"`
	Strict      bool           `json:"strict"`
}

// ResponseFormat mirrors the service's response_format request field.
type ResponseFormat struct {
	Type       string     `json:"type"`
	JSONSchema JSONSchema `json:"json_schema"`
}

// StrictFormat converts a response schema into the strict response format
// the completion service requires. The input is not modified.
//
// Only the top-level properties, required list and title of the schema
// document are consulted. Missing properties or required entries degrade to
// an empty object schema rather than failing; additionalProperties is
// forced to false regardless of what the document declared.
func StrictFormat(rs ResponseSchema) ResponseFormat {
	var doc struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	// A malformed document degrades to the empty schema.
	json.Unmarshal(rs.Schema, &doc)

	if doc.Properties == nil {
		doc.Properties = map[string]json.RawMessage{}
	}
	if doc.Required == nil {
		doc.Required = []string{}
	}

	name := rs.Name
	if name == "" {
		name = doc.Title
	}
	if name == "" {
		name = FallbackSchemaName
	}

	return ResponseFormat{
		Type: "json_schema",
		JSONSchema: JSONSchema{
			Name:        name,
			Description: rs.Description,
			Strict:      true,
			Schema: SchemaDocument{
				Type:                 "object",
				Properties:           doc.Properties,
				Required:             doc.Required,
				AdditionalProperties: false,
			},
		},
	}
}

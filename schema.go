package outform

import (
	"encoding/json"
	"reflect"
	"strings"
)

// SchemaBuilder builds a JSON Schema document from a Go struct type.
// Use SchemaFrom[T]() to create one.
type SchemaBuilder struct {
	title         string
	properties    map[string]*propertyDef
	required      []string
	propertyOrder []string
}

// propertyDef holds the definition of a single property.
type propertyDef struct {
	Type                 string         `json:"type"`
	Description          string         `json:"description,omitempty"`
	Enum                 []any          `json:"enum,omitempty"`
	Items                *propertyDef   `json:"items,omitempty"`
	Properties           map[string]any `json:"properties,omitempty"`
	Required             []string       `json:"required,omitempty"`
	AdditionalProperties *bool          `json:"additionalProperties,omitempty"`
}

// SchemaFrom creates a SchemaBuilder by reflecting on the given struct
// type. Field names are taken from json tags and JSON Schema types from the
// Go kinds. The document's title is the struct type name.
//
// A field is required unless it is a pointer or its json tag carries
// omitempty; those are the two ways a Go struct expresses "has a default".
// Use Optional and Required to override.
func SchemaFrom[T any]() *SchemaBuilder {
	var zero T
	t := reflect.TypeOf(zero)

	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return &SchemaBuilder{
			properties:    make(map[string]*propertyDef),
			propertyOrder: make([]string, 0),
		}
	}

	sb := buildFromStruct(t)
	sb.title = t.Name()
	return sb
}

// SchemaFor builds the JSON Schema document for a struct type in one call.
func SchemaFor[T any]() json.RawMessage {
	return SchemaFrom[T]().Build()
}

func buildFromStruct(t reflect.Type) *SchemaBuilder {
	sb := &SchemaBuilder{
		properties:    make(map[string]*propertyDef),
		propertyOrder: make([]string, 0),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, tagOpts, _ := strings.Cut(jsonTag, ",")
		if name == "" {
			name = field.Name
		}

		sb.properties[name] = typeToPropertyDef(field.Type)
		sb.propertyOrder = append(sb.propertyOrder, name)

		optional := field.Type.Kind() == reflect.Ptr || hasTagOption(tagOpts, "omitempty")
		if !optional {
			sb.required = append(sb.required, name)
		}
	}

	return sb
}

func hasTagOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

func typeToPropertyDef(t reflect.Type) *propertyDef {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &propertyDef{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &propertyDef{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &propertyDef{Type: "number"}

	case reflect.Bool:
		return &propertyDef{Type: "boolean"}

	case reflect.Slice, reflect.Array:
		return &propertyDef{Type: "array", Items: typeToPropertyDef(t.Elem())}

	case reflect.Struct:
		// Nested structs become inline strict objects.
		nested := buildFromStruct(t)
		props := make(map[string]any)
		for _, name := range nested.propertyOrder {
			props[name] = nested.properties[name].toMap()
		}
		prop := &propertyDef{
			Type:                 "object",
			Properties:           props,
			AdditionalProperties: boolPtr(false),
		}
		if len(nested.required) > 0 {
			prop.Required = nested.required
		}
		return prop

	case reflect.Map:
		// Maps become objects with no declared properties.
		return &propertyDef{Type: "object"}

	default:
		return &propertyDef{Type: "string"}
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// Title overrides the document title derived from the type name.
func (s *SchemaBuilder) Title(title string) *SchemaBuilder {
	s.title = title
	return s
}

// Desc sets the description for a field.
func (s *SchemaBuilder) Desc(field, description string) *SchemaBuilder {
	if prop, ok := s.properties[field]; ok {
		prop.Description = description
	}
	return s
}

// Enum sets the allowed values for a string field.
func (s *SchemaBuilder) Enum(field string, values ...string) *SchemaBuilder {
	if prop, ok := s.properties[field]; ok {
		prop.Enum = make([]any, len(values))
		for i, v := range values {
			prop.Enum[i] = v
		}
	}
	return s
}

// Optional removes the given fields from the required list.
func (s *SchemaBuilder) Optional(fields ...string) *SchemaBuilder {
	for _, field := range fields {
		for i, r := range s.required {
			if r == field {
				s.required = append(s.required[:i], s.required[i+1:]...)
				break
			}
		}
	}
	return s
}

// Required marks the given fields as required, preserving declaration order
// and skipping unknown fields and duplicates.
func (s *SchemaBuilder) Required(fields ...string) *SchemaBuilder {
	for _, field := range fields {
		if _, ok := s.properties[field]; !ok {
			continue
		}
		exists := false
		for _, r := range s.required {
			if r == field {
				exists = true
				break
			}
		}
		if !exists {
			s.required = append(s.required, field)
		}
	}
	s.sortRequired()
	return s
}

// sortRequired keeps the required list in field declaration order.
func (s *SchemaBuilder) sortRequired() {
	ordered := make([]string, 0, len(s.required))
	for _, name := range s.propertyOrder {
		for _, r := range s.required {
			if r == name {
				ordered = append(ordered, name)
				break
			}
		}
	}
	s.required = ordered
}

// Build generates the JSON Schema document as json.RawMessage.
func (s *SchemaBuilder) Build() json.RawMessage {
	data, err := json.Marshal(s.toMap())
	if err != nil {
		// Unreachable with the types emitted above.
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

func (s *SchemaBuilder) toMap() map[string]any {
	result := map[string]any{
		"type": "object",
	}

	if s.title != "" {
		result["title"] = s.title
	}

	props := make(map[string]any, len(s.properties))
	for _, name := range s.propertyOrder {
		props[name] = s.properties[name].toMap()
	}
	result["properties"] = props

	if len(s.required) > 0 {
		result["required"] = s.required
	}

	return result
}

func (p *propertyDef) toMap() map[string]any {
	result := map[string]any{
		"type": p.Type,
	}

	if p.Description != "" {
		result["description"] = p.Description
	}
	if len(p.Enum) > 0 {
		result["enum"] = p.Enum
	}
	if p.Items != nil {
		result["items"] = p.Items.toMap()
	}
	if p.Properties != nil {
		result["properties"] = p.Properties
	}
	if len(p.Required) > 0 {
		result["required"] = p.Required
	}
	if p.AdditionalProperties != nil {
		result["additionalProperties"] = *p.AdditionalProperties
	}

	return result
}

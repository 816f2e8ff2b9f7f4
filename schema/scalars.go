package schema

import "encoding/json"

// buildNode is shared by the scalar builders.
func buildNode(node *schemaNode) (json.RawMessage, error) {
	if err := node.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

func mustBuildNode(node *schemaNode) json.RawMessage {
	data, err := buildNode(node)
	if err != nil {
		panic(err)
	}
	return data
}

// String creates a new string schema builder.
func String() *StringBuilder {
	return &StringBuilder{node: &schemaNode{Type: "string"}}
}

// StringBuilder constructs string type schemas.
type StringBuilder struct {
	node *schemaNode
}

// Desc sets the description for this field.
func (b *StringBuilder) Desc(description string) *StringBuilder {
	b.node.Description = description
	return b
}

// Enum restricts the value to one of the provided options.
func (b *StringBuilder) Enum(values ...string) *StringBuilder {
	b.node.Enum = make([]any, len(values))
	for i, v := range values {
		b.node.Enum[i] = v
	}
	return b
}

// MinLength sets the minimum string length.
func (b *StringBuilder) MinLength(n int) *StringBuilder {
	b.node.MinLength = ptr(n)
	return b
}

// MaxLength sets the maximum string length.
func (b *StringBuilder) MaxLength(n int) *StringBuilder {
	b.node.MaxLength = ptr(n)
	return b
}

// Pattern sets a regex pattern the string must match.
func (b *StringBuilder) Pattern(regex string) *StringBuilder {
	b.node.Pattern = regex
	return b
}

// Default sets the default value.
func (b *StringBuilder) Default(value string) *StringBuilder {
	b.node.Default = value
	return b
}

// Required marks this field as required when used in an object.
func (b *StringBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *StringBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }

// MustBuild is like Build but panics on error.
func (b *StringBuilder) MustBuild() json.RawMessage { return mustBuildNode(b.node) }

func (b *StringBuilder) schema() *schemaNode { return b.node }

// Int creates a new integer schema builder.
func Int() *IntBuilder {
	return &IntBuilder{node: &schemaNode{Type: "integer"}}
}

// Integer is an alias for Int.
func Integer() *IntBuilder {
	return Int()
}

// IntBuilder constructs integer type schemas.
type IntBuilder struct {
	node *schemaNode
}

// Desc sets the description.
func (b *IntBuilder) Desc(description string) *IntBuilder {
	b.node.Description = description
	return b
}

// Min sets the minimum value (inclusive).
func (b *IntBuilder) Min(n int) *IntBuilder {
	b.node.Minimum = ptr(float64(n))
	return b
}

// Max sets the maximum value (inclusive).
func (b *IntBuilder) Max(n int) *IntBuilder {
	b.node.Maximum = ptr(float64(n))
	return b
}

// Enum restricts the value to specific integers.
func (b *IntBuilder) Enum(values ...int) *IntBuilder {
	b.node.Enum = make([]any, len(values))
	for i, v := range values {
		b.node.Enum[i] = v
	}
	return b
}

// Default sets the default value.
func (b *IntBuilder) Default(value int) *IntBuilder {
	b.node.Default = value
	return b
}

// Required marks this field as required when used in an object.
func (b *IntBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *IntBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }

// MustBuild is like Build but panics on error.
func (b *IntBuilder) MustBuild() json.RawMessage { return mustBuildNode(b.node) }

func (b *IntBuilder) schema() *schemaNode { return b.node }

// Number creates a new number (float) schema builder.
func Number() *NumberBuilder {
	return &NumberBuilder{node: &schemaNode{Type: "number"}}
}

// NumberBuilder constructs number (float) type schemas.
type NumberBuilder struct {
	node *schemaNode
}

// Desc sets the description.
func (b *NumberBuilder) Desc(description string) *NumberBuilder {
	b.node.Description = description
	return b
}

// Min sets the minimum value (inclusive).
func (b *NumberBuilder) Min(n float64) *NumberBuilder {
	b.node.Minimum = ptr(n)
	return b
}

// Max sets the maximum value (inclusive).
func (b *NumberBuilder) Max(n float64) *NumberBuilder {
	b.node.Maximum = ptr(n)
	return b
}

// ExclusiveMin sets the exclusive minimum value.
func (b *NumberBuilder) ExclusiveMin(n float64) *NumberBuilder {
	b.node.ExclusiveMinimum = ptr(n)
	return b
}

// ExclusiveMax sets the exclusive maximum value.
func (b *NumberBuilder) ExclusiveMax(n float64) *NumberBuilder {
	b.node.ExclusiveMaximum = ptr(n)
	return b
}

// Default sets the default value.
func (b *NumberBuilder) Default(value float64) *NumberBuilder {
	b.node.Default = value
	return b
}

// Required marks this field as required when used in an object.
func (b *NumberBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *NumberBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }

// MustBuild is like Build but panics on error.
func (b *NumberBuilder) MustBuild() json.RawMessage { return mustBuildNode(b.node) }

func (b *NumberBuilder) schema() *schemaNode { return b.node }

// Bool creates a new boolean schema builder.
func Bool() *BoolBuilder {
	return &BoolBuilder{node: &schemaNode{Type: "boolean"}}
}

// BoolBuilder constructs boolean type schemas.
type BoolBuilder struct {
	node *schemaNode
}

// Desc sets the description.
func (b *BoolBuilder) Desc(description string) *BoolBuilder {
	b.node.Description = description
	return b
}

// Default sets the default value.
func (b *BoolBuilder) Default(value bool) *BoolBuilder {
	b.node.Default = value
	return b
}

// Required marks this field as required when used in an object.
func (b *BoolBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *BoolBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }

// MustBuild is like Build but panics on error.
func (b *BoolBuilder) MustBuild() json.RawMessage { return mustBuildNode(b.node) }

func (b *BoolBuilder) schema() *schemaNode { return b.node }

// Package schema provides a fluent API for building JSON Schema documents
// for structured output response formats.
//
// Unlike the reflection-based outform.SchemaFrom, this package uses pure
// programmatic construction with build-time validation. Objects are strict
// by default (additionalProperties false), as required by the completion
// service's strict mode.
//
// # Basic Usage
//
//	doc := schema.Object().
//		Title("Person").
//		Field("full_name", schema.String().Desc("Full legal name").Required()).
//		Field("date_of_birth", schema.String().Desc("YYYY-MM-DD").Required()).
//		MustBuild()
//
//	rs := outform.ResponseSchema{Schema: doc}
//	format := outform.StrictFormat(rs) // named "Person" via the title
//
// # Nested Objects
//
//	doc := schema.Object().
//		Field("person", schema.Object().
//			Field("name", schema.String().Required()).
//			Field("age", schema.Int().Min(0)).
//			Required()).
//		Field("aliases", schema.Array(schema.String()).MaxItems(10)).
//		MustBuild()
//
// # Validation
//
// Use Build() instead of MustBuild() to handle errors:
//
//	doc, err := schema.Object().
//		Field("count", schema.Int().Min(10).Max(5)).
//		Build()
//	// err wraps schema.ErrInvalidRange
package schema

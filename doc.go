// Package outform converts data-model descriptions into the strict JSON
// Schema response format that chat-completion APIs use for structured
// output, and provides a small client for issuing requests with it.
//
// # Describing a model
//
// Derive a schema document from a struct type:
//
//	type Person struct {
//	    FullName    string `json:"full_name"`
//	    DateOfBirth string `json:"date_of_birth"`
//	}
//
//	rs := outform.ResponseSchema{
//	    Schema: outform.SchemaFrom[Person]().
//	        Desc("date_of_birth", "Date of birth in YYYY-MM-DD format.").
//	        Build(),
//	}
//
// Non-pointer fields without omitempty are required. Alternatively, build
// the document declaratively with the
// [github.com/kressley/outform/schema] package.
//
// # Converting
//
// StrictFormat produces the wire-shaped response format:
//
//	format := outform.StrictFormat(rs)
//	// format.Type == "json_schema"
//	// format.JSONSchema.Strict == true
//	// format.JSONSchema.Schema.AdditionalProperties == false
//
// The schema name comes from ResponseSchema.Name, then the document's
// title, then a fixed fallback. A document without properties converts to a
// well-formed empty object schema rather than failing.
//
// # Making a request
//
// The [github.com/kressley/outform/client] package wraps the completion
// service:
//
//	c := client.New(client.ConfigFromEnv())
//	resp, err := c.Chat(ctx, messages, outform.WithResponseSchema(rs))
//
// or, for typed results:
//
//	person, err := client.ChatTyped[Person](ctx, c, messages)
package outform

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	ai "github.com/kressley/outform"
)

// ChatTyped sends a chat request constrained to type T's schema and
// unmarshals the response into T. The schema is generated with
// outform.SchemaFrom and named after the type in snake_case:
//
//	person, err := client.ChatTyped[Person](ctx, c, msgs)
//
// Options are passed through to Chat; a later WithResponseSchema option
// overrides the generated one.
func ChatTyped[T any](ctx context.Context, p ai.ChatProvider, msgs []ai.Message, opts ...ai.Option) (T, error) {
	var zero T

	t := reflect.TypeOf(zero)
	if t == nil {
		return zero, fmt.Errorf("ChatTyped: cannot use nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	schemaName := toSnakeCase(t.Name())
	if schemaName == "" {
		schemaName = "response"
	}

	responseSchema := ai.ResponseSchema{
		Name:   schemaName,
		Schema: ai.SchemaFor[T](),
	}

	allOpts := make([]ai.Option, 0, len(opts)+1)
	allOpts = append(allOpts, ai.WithResponseSchema(responseSchema))
	allOpts = append(allOpts, opts...)

	resp, err := p.Chat(ctx, msgs, allOpts...)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(resp.Content), &result); err != nil {
		return zero, &UnmarshalError{
			Content:    resp.Content,
			TargetType: t.String(),
			Err:        err,
		}
	}
	return result, nil
}

// UnmarshalError is returned when a completion cannot be unmarshaled into
// the target type. Content carries the raw completion for diagnostics.
type UnmarshalError struct {
	Content    string
	TargetType string
	Err        error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal response into %s: %v", e.TargetType, e.Err)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// toSnakeCase converts a CamelCase string to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

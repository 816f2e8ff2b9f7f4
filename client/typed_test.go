package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/kressley/outform"
)

// stubProvider returns a canned response and records what it was asked.
type stubProvider struct {
	resp    *ai.Response
	err     error
	gotMsgs []ai.Message
	gotOpts []ai.Option
}

func (s *stubProvider) Chat(_ context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	s.gotMsgs = messages
	s.gotOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type personRecord struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
}

func TestChatTyped(t *testing.T) {
	stub := &stubProvider{
		resp: &ai.Response{Content: `{"full_name":"Ada Lovelace","date_of_birth":"1815-12-10"}`},
	}
	msgs := []ai.Message{{Role: ai.RoleUser, Content: "Who is Ada Lovelace?"}}

	person, err := ChatTyped[personRecord](context.Background(), stub, msgs)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", person.FullName)
	assert.Equal(t, "1815-12-10", person.DateOfBirth)
	assert.Equal(t, msgs, stub.gotMsgs)
}

func TestChatTyped_SetsResponseSchema(t *testing.T) {
	stub := &stubProvider{resp: &ai.Response{Content: `{}`}}

	_, err := ChatTyped[personRecord](context.Background(), stub,
		[]ai.Message{{Role: ai.RoleUser, Content: "x"}})
	require.NoError(t, err)

	applied := ai.ApplyOptions(stub.gotOpts...)
	require.NotNil(t, applied.ResponseSchema)
	assert.Equal(t, "person_record", applied.ResponseSchema.Name)

	format := ai.StrictFormat(*applied.ResponseSchema)
	assert.Contains(t, format.JSONSchema.Schema.Properties, "full_name")
	assert.Equal(t, []string{"full_name", "date_of_birth"}, format.JSONSchema.Schema.Required)
}

func TestChatTyped_ExplicitSchemaWins(t *testing.T) {
	stub := &stubProvider{resp: &ai.Response{Content: `{}`}}
	override := ai.ResponseSchema{Name: "override"}

	_, err := ChatTyped[personRecord](context.Background(), stub,
		[]ai.Message{{Role: ai.RoleUser, Content: "x"}},
		ai.WithResponseSchema(override))
	require.NoError(t, err)

	applied := ai.ApplyOptions(stub.gotOpts...)
	require.NotNil(t, applied.ResponseSchema)
	assert.Equal(t, "override", applied.ResponseSchema.Name)
}

func TestChatTyped_ProviderError(t *testing.T) {
	wantErr := ai.NewPermanentError("auth failed", 401, nil)
	stub := &stubProvider{err: wantErr}

	_, err := ChatTyped[personRecord](context.Background(), stub,
		[]ai.Message{{Role: ai.RoleUser, Content: "x"}})

	assert.ErrorIs(t, err, wantErr)
}

func TestChatTyped_UnmarshalError(t *testing.T) {
	stub := &stubProvider{resp: &ai.Response{Content: "not json at all"}}

	_, err := ChatTyped[personRecord](context.Background(), stub,
		[]ai.Message{{Role: ai.RoleUser, Content: "x"}})
	require.Error(t, err)

	var ue *UnmarshalError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "not json at all", ue.Content)
	assert.NotNil(t, errors.Unwrap(ue))
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Person", "person"},
		{"PersonRecord", "person_record"},
		{"HTTPResponse", "h_t_t_p_response"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toSnakeCase(tt.in), "input %q", tt.in)
	}
}

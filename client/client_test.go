package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/kressley/outform"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg := ConfigFromEnv()

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, ai.GPT4oMini, cfg.Model)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg := ConfigFromEnv()

	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.Model)
}

func TestNew_DefaultModel(t *testing.T) {
	c := New(Config{APIKey: "sk-test"})
	assert.Equal(t, ai.DefaultChatModel, c.Model())

	c = New(Config{APIKey: "sk-test", Model: ai.GPT41})
	assert.Equal(t, ai.GPT41, c.Model())
}

// marshalRoundTrip converts an SDK param value to a generic map so tests can
// inspect the wire shape.
func marshalRoundTrip(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestConvertMessages_Roles(t *testing.T) {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: "You extract facts."},
		{Role: ai.RoleUser, Content: "Who is Ada Lovelace?"},
		{Role: ai.RoleAssistant, Content: `{"full_name":"Ada Lovelace"}`},
	}

	converted := convertMessages(messages)
	require.Len(t, converted, 3)

	system := marshalRoundTrip(t, converted[0])
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You extract facts.", system["content"])

	user := marshalRoundTrip(t, converted[1])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "Who is Ada Lovelace?", user["content"])

	assistant := marshalRoundTrip(t, converted[2])
	assert.Equal(t, "assistant", assistant["role"])
}

func TestConvertMessages_UserParts(t *testing.T) {
	messages := []ai.Message{
		{
			Role: ai.RoleUser,
			Parts: []ai.ContentPart{
				ai.NewTextPart("What is Barack Obama basic information?"),
			},
		},
	}

	converted := convertMessages(messages)
	require.Len(t, converted, 1)

	user := marshalRoundTrip(t, converted[0])
	assert.Equal(t, "user", user["role"])

	content, ok := user["content"].([]any)
	require.True(t, ok, "user parts should serialize as a content array")
	require.Len(t, content, 1)

	part := content[0].(map[string]any)
	assert.Equal(t, "text", part["type"])
	assert.Equal(t, "What is Barack Obama basic information?", part["text"])
}

func TestConvertMessages_AssistantPartsFlattened(t *testing.T) {
	messages := []ai.Message{
		{
			Role:  ai.RoleAssistant,
			Parts: []ai.ContentPart{ai.NewTextPart(`{"x":1}`)},
		},
	}

	converted := convertMessages(messages)
	require.Len(t, converted, 1)

	assistant := marshalRoundTrip(t, converted[0])
	assert.Equal(t, "assistant", assistant["role"])
	assert.Equal(t, `{"x":1}`, assistant["content"])
}

func TestConvertMessages_SkipsEmpty(t *testing.T) {
	messages := []ai.Message{
		{Role: ai.RoleUser},
		{Role: ai.RoleAssistant, Content: ""},
		{Role: ai.RoleUser, Content: "kept"},
	}

	converted := convertMessages(messages)
	assert.Len(t, converted, 1)
}

func TestResponseFormatParam(t *testing.T) {
	type Person struct {
		FullName    string `json:"full_name"`
		DateOfBirth string `json:"date_of_birth"`
	}

	format := ai.StrictFormat(ai.ResponseSchema{Schema: ai.SchemaFor[Person]()})
	param := responseFormatParam(format)

	wire := marshalRoundTrip(t, param)
	assert.Equal(t, "json_schema", wire["type"])

	js := wire["json_schema"].(map[string]any)
	assert.Equal(t, "Person", js["name"])
	assert.Equal(t, true, js["strict"])
	_, hasDescription := js["description"]
	assert.False(t, hasDescription)

	doc := js["schema"].(map[string]any)
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Equal(t, []any{"full_name", "date_of_birth"}, doc["required"])

	props := doc["properties"].(map[string]any)
	assert.Contains(t, props, "full_name")
	assert.Contains(t, props, "date_of_birth")
}

func TestResponseFormatParam_Description(t *testing.T) {
	format := ai.StrictFormat(ai.ResponseSchema{
		Name:        "person",
		Description: "A person record",
		Schema:      json.RawMessage(`{"properties":{}}`),
	})

	wire := marshalRoundTrip(t, responseFormatParam(format))
	js := wire["json_schema"].(map[string]any)
	assert.Equal(t, "A person record", js["description"])
}

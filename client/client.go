package client

import (
	"context"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	ai "github.com/kressley/outform"
)

// Config holds what the client needs to reach the completion service.
// Construct it directly or with ConfigFromEnv; nothing reads the
// environment after the client is created.
type Config struct {
	// APIKey authenticates requests to the completion service.
	APIKey string
	// BaseURL overrides the service endpoint. SDK default when empty.
	BaseURL string
	// Model is the default chat model. DefaultChatModel when empty.
	Model ai.ChatModel
}

// ConfigFromEnv builds a Config from OPENAI_API_KEY, OPENAI_BASE_URL and
// OPENAI_MODEL. Callers that want .env support should load it first, e.g.
// with godotenv.
func ConfigFromEnv() Config {
	return Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   ai.ChatModel(os.Getenv("OPENAI_MODEL")),
	}
}

// Client issues chat completion requests against the service.
type Client struct {
	client *openai.Client
	model  ai.ChatModel
}

// New creates a client from the given config.
func New(cfg Config) *Client {
	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	sdk := openai.NewClient(reqOpts...)

	model := cfg.Model
	if model == "" {
		model = ai.DefaultChatModel
	}
	return &Client{client: &sdk, model: model}
}

// Model returns the client's default chat model.
func (c *Client) Model() ai.ChatModel {
	return c.model
}

// Chat sends a conversation and blocks until the service responds. When a
// response schema option is set, the request carries the strict response
// format produced by outform.StrictFormat. Failures are returned after a
// single attempt; there is no retry.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}
	options := ai.ApplyOptions(opts...)

	model := c.model
	if options.Model != "" {
		model = ai.ChatModel(options.Model)
	}

	params := openai.ChatCompletionNewParams{
		Model:    model.String(),
		Messages: convertMessages(messages),
	}
	if options.MaxCompletionTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(options.MaxCompletionTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if options.TopP != nil {
		params.TopP = openai.Float(*options.TopP)
	}
	if options.FrequencyPenalty != nil {
		params.FrequencyPenalty = openai.Float(*options.FrequencyPenalty)
	}
	if options.PresencePenalty != nil {
		params.PresencePenalty = openai.Float(*options.PresencePenalty)
	}
	if options.ResponseSchema != nil {
		params.ResponseFormat = responseFormatParam(ai.StrictFormat(*options.ResponseSchema))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, ai.NewPermanentError("completion service returned no choices", 0, nil)
	}

	return &ai.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

// responseFormatParam maps the wire-shaped response format onto the SDK's
// request union.
func responseFormatParam(f ai.ResponseFormat) openai.ChatCompletionNewParamsResponseFormatUnion {
	js := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   f.JSONSchema.Name,
		Schema: f.JSONSchema.Schema,
		Strict: openai.Bool(f.JSONSchema.Strict),
	}
	if f.JSONSchema.Description != "" {
		js.Description = openai.String(f.JSONSchema.Description)
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type:       "json_schema",
			JSONSchema: js,
		},
	}
}

var _ ai.ChatProvider = (*Client)(nil)

package outform

// Options contains configuration for a chat request.
type Options struct {
	Model               string
	MaxCompletionTokens int
	Temperature         *float64
	TopP                *float64
	FrequencyPenalty    *float64
	PresencePenalty     *float64
	ResponseSchema      *ResponseSchema
}

// Option is a functional option for configuring chat requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model ChatModel) Option {
	return func(o *Options) {
		o.Model = model.String()
	}
}

// WithMaxCompletionTokens bounds the number of tokens the service may
// generate for the completion.
func WithMaxCompletionTokens(n int) Option {
	return func(o *Options) {
		o.MaxCompletionTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTopP sets the nucleus sampling probability mass (0.0 to 1.0).
func WithTopP(p float64) Option {
	return func(o *Options) {
		o.TopP = &p
	}
}

// WithFrequencyPenalty sets the frequency penalty (-2.0 to 2.0).
func WithFrequencyPenalty(p float64) Option {
	return func(o *Options) {
		o.FrequencyPenalty = &p
	}
}

// WithPresencePenalty sets the presence penalty (-2.0 to 2.0).
func WithPresencePenalty(p float64) Option {
	return func(o *Options) {
		o.PresencePenalty = &p
	}
}

// WithResponseSchema constrains the completion to the given schema.
// The schema is converted to the service's strict response format with
// StrictFormat before the request is sent.
func WithResponseSchema(rs ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = &rs
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

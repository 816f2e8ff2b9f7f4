package outform

import "context"

// ChatProvider defines the interface for completion service backends.
type ChatProvider interface {
	// Chat sends a conversation and blocks until the service returns a
	// complete response or a transport error.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}

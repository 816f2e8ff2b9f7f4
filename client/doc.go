// Package client wraps the completion service SDK behind the
// outform.ChatProvider interface.
//
// Create a client from explicit config or the environment:
//
//	_ = godotenv.Load()
//	c := client.New(client.ConfigFromEnv())
//
// Requests are single synchronous calls; transport and service failures come
// back as categorized errors (see outform.IsTransient and friends) after one
// attempt, never retried.
//
//	resp, err := c.Chat(ctx, messages,
//	    outform.WithResponseSchema(rs),
//	    outform.WithTemperature(1),
//	    outform.WithMaxCompletionTokens(2048),
//	)
//
// ChatTyped generates the schema from a struct type and parses the
// completion in one step.
package client

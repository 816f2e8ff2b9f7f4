package client

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/openai/openai-go"

	ai "github.com/kressley/outform"
)

// wrapError attaches a category to SDK errors so callers can distinguish
// auth failures from rate limits without parsing messages. The underlying
// error is preserved for errors.Is/As; no retry happens here or anywhere
// else in the library.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// Likely a transport-level failure; surface it unchanged.
		return err
	}

	code := apiErr.StatusCode
	msg := err.Error()

	if retryAfter := parseRetryAfter(apiErr.Response); retryAfter > 0 {
		return ai.NewTransientErrorWithRetry(msg, code, retryAfter, err)
	}

	switch categorizeStatusCode(code) {
	case ai.ErrorTransient:
		return ai.NewTransientError(msg, code, err)
	case ai.ErrorUserInput:
		return ai.NewUserInputError(msg, code, err)
	default:
		return ai.NewPermanentError(msg, code, err)
	}
}

// categorizeStatusCode determines the error category from an HTTP status
// code. Unknown codes default to permanent.
func categorizeStatusCode(code int) ai.ErrorCategory {
	switch {
	case code == http.StatusTooManyRequests:
		return ai.ErrorTransient
	case code >= 500 && code < 600:
		return ai.ErrorTransient
	case code == http.StatusBadRequest,
		code == http.StatusNotFound,
		code == http.StatusUnprocessableEntity:
		return ai.ErrorUserInput
	default:
		return ai.ErrorPermanent
	}
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is absent or unparseable.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	// RFC 7231 HTTP-date form
	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}
	return 0
}

package chat

import (
	"errors"
	"fmt"

	"github.com/openai/openai-go"
)

// Kind classifies a failed completion request.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindRateLimited
	KindUpstream
)

// RequestError describes a failed completion request. StatusCode is zero
// when the failure never produced an HTTP response.
type RequestError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// wrapRequestError converts a transport error into a RequestError, deriving
// the kind from the HTTP status when the SDK surfaced one.
func wrapRequestError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &RequestError{
			Kind:       kindForStatus(apierr.StatusCode),
			StatusCode: apierr.StatusCode,
			Err:        err,
		}
	}
	return &RequestError{Kind: KindUnknown, Err: err}
}

func kindForStatus(code int) Kind {
	switch {
	case code == 401:
		return KindAuth
	case code == 429:
		return KindRateLimited
	case code >= 500:
		return KindUpstream
	default:
		return KindUnknown
	}
}

// Notice renders the user-facing line for a failed turn.
func Notice(err error) string {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return fmt.Sprintf("Error: %v", err)
	}
	switch reqErr.Kind {
	case KindAuth:
		return "Error: authentication failed. Check that GITHUB_TOKEN holds a valid token."
	case KindRateLimited:
		return "Error: rate limit reached. Wait a moment before sending another message."
	case KindUpstream:
		return "Error: the model endpoint is unavailable right now. Try again shortly."
	default:
		return fmt.Sprintf("Error: request failed: %v", reqErr.Err)
	}
}

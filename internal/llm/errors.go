package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any request is attempted when the
// bearer credential is absent from the environment.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// TransportError wraps connection level failures, including non-200 responses
// from the endpoint.
type TransportError struct {
	Status int // 0 when the request never produced a response
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error: endpoint returned status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StreamError reports an interrupted event stream. Partial holds the content
// delivered before the interruption; the caller keeps it.
type StreamError struct {
	Partial string
	Err     error
}

func (e *StreamError) Error() string {
	if e.Partial != "" {
		return fmt.Sprintf("stream interrupted after %d chars: %v", len(e.Partial), e.Err)
	}
	return fmt.Sprintf("stream interrupted: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// DecodeError reports an event frame whose payload did not match the expected
// chunk shape.
type DecodeError struct {
	Data string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Data == "" {
		return fmt.Sprintf("malformed stream frame: %v", e.Err)
	}
	return fmt.Sprintf("malformed stream frame %q: %v", truncate(e.Data, 64), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package locations

import (
	"errors"
	"fmt"
)

// ErrResponseTooLarge marks a body that exceeded the configured size cap.
var ErrResponseTooLarge = errors.New("response too large")

// FetchError reports a network-level failure or an unexpected HTTP status.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a body that is not JSON or does not match the envelope.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "malformed response"
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

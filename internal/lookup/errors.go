// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Each typed error below unwraps to
// its sentinel so callers can branch with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrConnection    = errors.New("connection error")
	ErrAPI           = errors.New("request unsuccessful")
	ErrDecode        = errors.New("decode error")
)

// ConfigurationError reports an invalid combination or range of display options.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ConnectionError reports a transport failure (DNS, refused connection, timeout).
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() []error { return []error{ErrConnection, e.Err} }

// APIError reports a response with a status other than 200.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", ErrAPI, e.StatusCode)
}

func (e *APIError) Unwrap() error { return ErrAPI }

// DecodeError reports a body that is not the expected JSON shape.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding response: %s: %v", e.Reason, e.Err)
	}
	return "decoding response: " + e.Reason
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}
	return []error{ErrDecode, e.Err}
}

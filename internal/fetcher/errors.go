// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrEmptyURL is returned when Do is called without a URL. Nothing is
	// dispatched and the last-request timestamp is left alone.
	ErrEmptyURL = errors.New("empty URL")

	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport failure")

	// ErrStatus matches every *StatusError.
	ErrStatus = errors.New("non-success response")
)

// TransportError reports a request that never produced a response:
// a timeout, a refused connection, a DNS failure.
type TransportError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("GET %s: timeout: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("GET %s: connection error: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTransport) match any TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// Is lets errors.Is(err, ErrStatus) match any StatusError.
func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// newTransportError classifies err as a timeout or a connection failure.
func newTransportError(url string, err error) *TransportError {
	timeout := errors.Is(err, context.DeadlineExceeded)
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		timeout = true
	}
	return &TransportError{URL: url, Timeout: timeout, Err: err}
}

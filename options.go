package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the session transport wrapper is installed, so
// transport-related options (like debug logging) end up beneath the
// session and request-id wrappers. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the session wrapper; logs are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments as it increases verbosity
// and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithExecutor replaces the default note-save executor. The executor owns
// retry and FIFO semantics; the client only submits jobs and stops it on
// Close.
func WithExecutor(exec executor) Option {
	return func(c *Client) error {
		if exec == nil {
			return fmt.Errorf("executor cannot be nil")
		}
		c.exec = exec
		return nil
	}
}

// WithSaveErrorHandler registers a callback for async note saves that gave
// up: optimistic-lock conflicts, other client errors, or exhausted retries.
// Conflicts arrive as *NoteConflictError (via errors.As) carrying the
// server's winning note, so the application can show it to the user. The
// callback runs on an executor worker goroutine and must not block.
// It only applies to the default executor; WithExecutor overrides it.
func WithSaveErrorHandler(fn func(error)) Option {
	return func(c *Client) error {
		c.saveErrHandler = fn
		return nil
	}
}

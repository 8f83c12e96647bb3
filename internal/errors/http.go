package errors

import "fmt"

// ClassifyStatus maps an HTTP status code to an error category:
// 4xx client errors (except 408 and 429) are irrecoverable, 5xx server
// errors and everything unexpected are recoverable.
func ClassifyStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429: // timeout / throttling - retry with backoff
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-success HTTP response.
func NewHTTPError(operation string, statusCode int) *ClassifiedError {
	return &ClassifiedError{
		Category:   ClassifyStatus(statusCode),
		StatusCode: statusCode,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// WrapIrrecoverable marks err as not worth retrying while preserving the
// error chain, e.g. a note conflict carried inside a 409 response.
func WrapIrrecoverable(statusCode int, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Irrecoverable,
		StatusCode: statusCode,
		Underlying: err,
	}
}

// NewNetworkError creates a classified error for a network-level failure.
// Network errors are always recoverable since they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

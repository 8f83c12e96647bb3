package types

import (
	"context"
	"errors"

	"github.com/frly/client-go/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor interface for dependency injection (used by async operations).
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the requested resource no longer exists,
// e.g. a section or expense deleted by another member.
var ErrNotFound = errors.New("resource not found")

package client

import (
	"errors"

	"github.com/frly/client-go/internal/shardqueue"
	"github.com/frly/client-go/internal/types"
)

// ErrBackPressure is reported when the client's internal shard queue stays
// full for the whole enqueue timeout.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure condition, either
// the re-exported sentinel or the executor's own queue-full error.
func IsBackPressure(err error) bool {
	return errors.Is(err, ErrBackPressure) || errors.Is(err, shardqueue.ErrQueueFull)
}

// ErrNotFound is returned when the requested resource no longer exists,
// e.g. a section or expense deleted by another member.
var ErrNotFound = types.ErrNotFound

// NoteConflictError reports a note save that lost an optimistic-lock race;
// it carries the server's current note. Detect it with errors.As.
type NoteConflictError = types.NoteConflictError

package client

import (
	"context"

	"github.com/frly/client-go/internal/shardqueue"
)

// executor abstracts the internal async job runner used by note saves.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

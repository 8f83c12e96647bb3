package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config controls the shard executor. The zero value is usable; missing
// fields are replaced with defaults in NewShardExecutor.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int `envconfig:"SHARDS" default:"4"`

	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int `envconfig:"QUEUE_SIZE" default:"128"`

	// EnqueueTimeout bounds how long Submit blocks waiting for queue space
	// before reporting back-pressure.
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// MaxAttempts caps retries of a recoverable job failure.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"8"`

	// BaseBackoff is the initial retry interval; it grows exponentially up
	// to MaxInterval.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`

	// ErrorHandler, when set, receives every job error that exhausted its
	// retries or was classified irrecoverable. It must not block.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads executor settings from SQ_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("sq", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings parsed from FRLY_* environment variables.
type Config struct {
	// APIURL is the base URL of the workspace API, e.g.
	// "https://api.frly.example.com/api".
	APIURL string `envconfig:"API_URL" required:"true"`

	// Token is the bearer token of an authenticated user.
	Token string `envconfig:"TOKEN"`

	// UserID is the authenticated user's id; PAYMENT previews use it to
	// select "my balance".
	UserID int64 `envconfig:"USER_ID"`

	// GroupID preselects the group scope; zero means no group selected.
	GroupID int64 `envconfig:"GROUP_ID"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// NewFromEnv constructs a Client from FRLY_* environment variables.
// Explicit options are applied after the env-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("frly", &cfg); err != nil {
		return nil, err
	}

	session := NewSession(cfg.Token, cfg.UserID)
	if cfg.GroupID != 0 {
		session.SwitchGroup(cfg.GroupID)
	}

	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.APIURL, session, append(base, opts...)...), nil
}

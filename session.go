package client

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned by TokenExpiry when the session carries no token.
var ErrNoToken = errors.New("session has no token")

// Session is the typed, injectable authentication scope of a Client: the
// bearer token, the authenticated user, and the currently selected group.
// It replaces ambient key-value storage with an explicit object created at
// login and dropped at logout.
//
// The transport layer reads the session on every request, so group
// switching is safe while calls are in flight: requests dispatched after
// SwitchGroup carry the new group scope.
type Session struct {
	mu      sync.RWMutex
	token   string
	userID  int64
	groupID int64
}

// NewSession builds a session for an authenticated user. groupID may be
// zero until the user selects a group; requests then carry no group scope
// and group-bound calls will be rejected by the server.
func NewSession(token string, userID int64) *Session {
	return &Session{token: token, userID: userID}
}

// SwitchGroup selects the group all subsequent requests are scoped to.
func (s *Session) SwitchGroup(groupID int64) {
	s.mu.Lock()
	s.groupID = groupID
	s.mu.Unlock()
}

// UserID returns the authenticated user's id.
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// GroupID returns the currently selected group, zero if none.
func (s *Session) GroupID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.groupID
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry reads the expiry claim from the bearer token without
// verifying its signature - the client never holds the signing key; the
// server is the authority on validity. Useful for proactively prompting a
// re-login instead of waiting for the first 401.
func (s *Session) TokenExpiry() (time.Time, error) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, ErrNoToken
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}

package client

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// sessionTransport wraps an http.RoundTripper to attach the bearer token
// and the group-scope header to every request. Reading the session per
// request means a group switch takes effect immediately.
type sessionTransport struct {
	base    http.RoundTripper
	session *Session
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	if tok := t.session.Token(); tok != "" {
		cloned.Header.Set("Authorization", "Bearer "+tok)
	}
	if gid := t.session.GroupID(); gid != 0 {
		cloned.Header.Set("X-Group-ID", strconv.FormatInt(gid, 10))
	}
	return t.base.RoundTrip(cloned)
}

// requestIDTransport stamps each outgoing request with a correlation id so
// client and server logs can be matched. A caller-supplied id wins.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

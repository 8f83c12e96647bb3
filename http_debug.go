package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems: malformed requests,
// unexpected responses, or auth/group-scope issues visible only in headers.
//
// Activation: set FRLY_DEBUG=true or DEBUG=true, or pass
// WithDebugLogging(true). Dumps include full bodies, so tokens and user
// data end up in the logs - development and staging only.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// FRLY_DEBUG targets this client specifically; DEBUG is the broader
// development flag. Either being "true" enables the debug transport.
func debugLoggingRequested() bool {
	return os.Getenv("FRLY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

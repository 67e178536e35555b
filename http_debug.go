package off

import (
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// debugConfig is read from the environment at client build time.
type debugConfig struct {
	// Debug turns on HTTP traffic logging. Set OFF_DEBUG=true.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// debugLoggingRequested reports whether the debug transport should be
// installed, per the OFF_DEBUG environment variable.
func debugLoggingRequested() bool {
	var cfg debugConfig
	if err := envconfig.Process("off", &cfg); err != nil {
		return false
	}
	return cfg.Debug
}

// debugTransport logs request and response header dumps for
// troubleshooting API traffic. Each round trip gets a request_id so the
// two log lines can be correlated.
//
// Bodies are never dumped: the response body stream belongs to the
// caller and must not be consumed here.
//
// Dumps include the User-Agent and any basic-auth header, so keep
// OFF_DEBUG out of production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, false); err == nil {
		log.Debug().
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, false); err == nil {
		log.Debug().
			Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

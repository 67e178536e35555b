package off

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// LibVersion is the library version advertised in the default user agent.
const LibVersion = "alpha"

// DefaultHost is the production Open Food Facts domain. Override it with
// Builder.Host to target the staging environment or a test server.
const DefaultHost = "openfoodfacts.org"

// DefaultUserAgent identifies this library to the API servers, as asked
// by the Open Food Facts API usage guidelines.
var DefaultUserAgent = fmt.Sprintf("OffGoClient - %s - Version %s - %s",
	runtime.GOOS, LibVersion, "https://github.com/openfoodfacts/openfoodfacts-go")

// V0 returns a builder for a client of the legacy API generation.
//
//	client, err := off.V0().Locale(off.NewLocale("fr", "")).Build()
func V0() *Builder {
	return newBuilder(types.V0)
}

// V2 returns a builder for a client of the v2 REST API generation.
//
//	client, err := off.V2().Build()
func V2() *Builder {
	return newBuilder(types.V2)
}

// Builder assembles a Client. Obtain one from V0 or V2, chain the
// setters, then call Build once. Defaults: world locale, production
// host, no credentials, DefaultUserAgent.
type Builder struct {
	version   types.Version
	locale    types.Locale
	username  string
	password  string
	auth      bool
	userAgent string
	host      string
}

func newBuilder(v types.Version) *Builder {
	return &Builder{
		version:   v,
		locale:    types.DefaultLocale(),
		userAgent: DefaultUserAgent,
		host:      DefaultHost,
	}
}

// Locale sets the default locale used to pick the API subdomain.
func (b *Builder) Locale(l Locale) *Builder {
	b.locale = l
	return b
}

// Auth sets HTTP basic-auth credentials, sent with every request. Only
// needed for write operations and the staging environment.
func (b *Builder) Auth(username, password string) *Builder {
	b.username = username
	b.password = password
	b.auth = true
	return b
}

// UserAgent replaces the default user agent string.
func (b *Builder) UserAgent(ua string) *Builder {
	b.userAgent = ua
	return b
}

// Host replaces the production API domain.
func (b *Builder) Host(host string) *Builder {
	b.host = host
	return b
}

// Build finalizes the configuration and returns the client. It fails
// only when the configured credentials cannot form a valid basic-auth
// header. The builder can be discarded afterwards.
func (b *Builder) Build() (*Client, error) {
	if b.auth {
		if err := validBasicAuth(b.username, b.password); err != nil {
			return nil, err
		}
	}
	rt := http.RoundTripper(http.DefaultTransport)
	if debugLoggingRequested() {
		rt = &debugTransport{base: rt}
	}
	rt = &headerTransport{
		base:      rt,
		userAgent: b.userAgent,
		username:  b.username,
		password:  b.password,
		auth:      b.auth,
	}
	return &Client{
		version: b.version,
		locale:  b.locale,
		host:    b.host,
		http:    &http.Client{Timeout: 30 * time.Second, Transport: rt},
	}, nil
}

// validBasicAuth enforces the RFC 7617 constraints the header cannot
// carry: no ':' in the username, no control characters in either field.
func validBasicAuth(username, password string) error {
	if strings.Contains(username, ":") {
		return fmt.Errorf("%w: username must not contain ':'", ErrInvalidAuth)
	}
	ctl := func(r rune) bool { return r < 0x20 || r == 0x7f }
	if strings.ContainsFunc(username, ctl) || strings.ContainsFunc(password, ctl) {
		return fmt.Errorf("%w: control character in credentials", ErrInvalidAuth)
	}
	return nil
}

// headerTransport stamps the configured User-Agent and optional basic
// auth on every outgoing request.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
	username  string
	password  string
	auth      bool
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	if t.auth {
		cloned.SetBasicAuth(t.username, t.password)
	}
	return t.base.RoundTrip(cloned)
}

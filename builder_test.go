package off

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestBuilderDefaults(t *testing.T) {
	t.Parallel()
	b := V0()
	assert.Equal(t, DefaultLocale(), b.locale)
	assert.False(t, b.auth)
	assert.Equal(t, DefaultHost, b.host)
	wantUA := fmt.Sprintf("OffGoClient - %s - Version alpha - https://github.com/openfoodfacts/openfoodfacts-go", runtime.GOOS)
	assert.Equal(t, wantUA, b.userAgent)
}

func TestBuilderOptions(t *testing.T) {
	t.Parallel()
	b := V0().
		Locale(NewLocale("gr", "")).
		Auth("user", "pwd").
		UserAgent("user agent").
		Host("example.test")
	assert.Equal(t, NewLocale("gr", ""), b.locale)
	assert.True(t, b.auth)
	assert.Equal(t, "user", b.username)
	assert.Equal(t, "pwd", b.password)
	assert.Equal(t, "user agent", b.userAgent)
	assert.Equal(t, "example.test", b.host)
}

func TestBuildVersions(t *testing.T) {
	t.Parallel()
	c0, err := V0().Build()
	require.NoError(t, err)
	assert.Equal(t, APIVersionV0, c0.Version())

	c2, err := V2().Build()
	require.NoError(t, err)
	assert.Equal(t, APIVersionV2, c2.Version())
}

func TestBuildRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	_, err := V0().Auth("user:name", "pwd").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAuth))

	_, err = V0().Auth("user", "p\nwd").Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAuth))
}

func TestBuildSetsTimeout(t *testing.T) {
	t.Parallel()
	c, err := V2().Build()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, c.http.Timeout)
}

func TestTransportStampsHeaders(t *testing.T) {
	t.Parallel()
	var gotUA, gotUser, gotPass string
	var gotAuthOK bool
	rt := &headerTransport{
		base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			gotUA = r.Header.Get("User-Agent")
			gotUser, gotPass, gotAuthOK = r.BasicAuth()
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
		}),
		userAgent: "test agent",
		username:  "user",
		password:  "pwd",
		auth:      true,
	}
	req, _ := http.NewRequest(http.MethodGet, "https://world.openfoodfacts.org/", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "test agent", gotUA)
	assert.True(t, gotAuthOK)
	assert.Equal(t, "user", gotUser)
	assert.Equal(t, "pwd", gotPass)
	// the caller's request must stay untouched
	assert.Empty(t, req.Header.Get("User-Agent"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestTransportNoAuthWhenUnset(t *testing.T) {
	t.Parallel()
	var hasAuth bool
	rt := &headerTransport{
		base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			_, _, hasAuth = r.BasicAuth()
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
		}),
		userAgent: "x",
	}
	req, _ := http.NewRequest(http.MethodGet, "https://world.openfoodfacts.org/", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.False(t, hasAuth)
}

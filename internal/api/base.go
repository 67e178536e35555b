package api

import (
	"context"
	"net/http"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// Get issues a GET request against rawURL with the given ordered query
// parameters attached verbatim. The response is returned as received:
// the body is neither read nor closed, and non-2xx statuses are not
// errors. The caller owns the body.
func Get(ctx context.Context, httpClient *http.Client, rawURL string, params types.Params) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	return httpClient.Do(req)
}

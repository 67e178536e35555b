package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// SearchV0 performs a legacy form search, {origin}/cgi/search.pl.
func SearchV0(ctx context.Context, httpClient *http.Client, origin string, params types.Params) (*http.Response, error) {
	u, err := url.JoinPath(origin, "cgi", "search.pl")
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return Get(ctx, httpClient, u, params)
}

// SearchV2 performs a REST search, {origin}/api/{v}/search.
func SearchV2(ctx context.Context, httpClient *http.Client, origin string, v types.Version, params types.Params) (*http.Response, error) {
	u, err := url.JoinPath(origin, "api", v.String(), "search")
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return Get(ctx, httpClient, u, params)
}

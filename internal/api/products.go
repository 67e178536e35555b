package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// ProductsBy fetches the product listing {origin}/{what}/{id}.json for a
// facet or category value.
func ProductsBy(ctx context.Context, httpClient *http.Client, origin, what, id string, params types.Params) (*http.Response, error) {
	u, err := url.JoinPath(origin, what, id+".json")
	if err != nil {
		return nil, fmt.Errorf("products by: %w", err)
	}
	return Get(ctx, httpClient, u, params)
}

// Product fetches a single product, {origin}/api/{v}/product/{barcode}.
func Product(ctx context.Context, httpClient *http.Client, origin string, v types.Version, barcode string, params types.Params) (*http.Response, error) {
	u, err := url.JoinPath(origin, "api", v.String(), "product", barcode)
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}
	return Get(ctx, httpClient, u, params)
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// Taxonomy fetches the static taxonomy file {origin}/data/taxonomies/{taxonomy}.json.
func Taxonomy(ctx context.Context, httpClient *http.Client, origin, taxonomy string) (*http.Response, error) {
	u, err := url.JoinPath(origin, "data", "taxonomies", taxonomy+".json")
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	return Get(ctx, httpClient, u, nil)
}

// Facet fetches the facet listing {origin}/{facet}.json.
func Facet(ctx context.Context, httpClient *http.Client, origin, facet string, params types.Params) (*http.Response, error) {
	u, err := url.JoinPath(origin, facet+".json")
	if err != nil {
		return nil, fmt.Errorf("facet: %w", err)
	}
	return Get(ctx, httpClient, u, params)
}

// Categories fetches the category listing {origin}/categories.json.
func Categories(ctx context.Context, httpClient *http.Client, origin string) (*http.Response, error) {
	u, err := url.JoinPath(origin, "categories.json")
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return Get(ctx, httpClient, u, nil)
}

// Nutrients fetches the per-country nutrient list {origin}/cgi/nutrients.pl.
func Nutrients(ctx context.Context, httpClient *http.Client, origin string) (*http.Response, error) {
	u, err := url.JoinPath(origin, "cgi", "nutrients.pl")
	if err != nil {
		return nil, fmt.Errorf("nutrients: %w", err)
	}
	return Get(ctx, httpClient, u, nil)
}

package off

import (
	"context"
	"net/http"

	"github.com/openfoodfacts/openfoodfacts-go/internal/api"
	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues read-only requests against the Open Food Facts API.
//
// Every method performs one blocking GET round trip and returns the raw
// *http.Response: the body is never read and non-2xx statuses are not
// errors. Errors are returned only for URL assembly failures and
// transport-level failures. The caller owns and must close the body.
//
// The zero value is not usable; build clients with V0 or V2. A Client is
// immutable after Build and safe for concurrent use.
//
// The 'cc' and 'lc' query parameters are not supported. Country and
// language are always selected via the subdomain.
type Client struct {
	version types.Version
	locale  types.Locale
	host    string
	http    *http.Client
}

// Version reports the API generation the client was built for.
func (c *Client) Version() APIVersion {
	return c.version
}

// origin returns "https://{locale}.{host}" where the locale is the
// Output override when set, the client default otherwise.
func (c *Client) origin(o *Output) string {
	l := c.locale
	if o != nil && o.Locale != nil {
		l = *o.Locale
	}
	return "https://" + l.String() + "." + c.host
}

// worldOrigin returns the origin pinned to the world subdomain.
func (c *Client) worldOrigin() string {
	return "https://" + types.DefaultLocale().String() + "." + c.host
}

// --------------------------------------------------------------------
// Metadata endpoints - delegated to internal/api
// --------------------------------------------------------------------

// Taxonomy returns the given taxonomy,
//
//	GET https://world.{host}/data/taxonomies/{taxonomy}.json
//
// Taxonomies are static JSON files that exist only on the world
// subdomain; the client locale is ignored. Taxonomy names include
// "additives", "allergens", "brands", "countries", "ingredients",
// "languages" and "states".
func (c *Client) Taxonomy(ctx context.Context, taxonomy string) (*http.Response, error) {
	resp, err := api.Taxonomy(ctx, c.http, c.worldOrigin(), taxonomy)
	observe("taxonomy", err)
	return resp, err
}

// Facet returns the given facet listing,
//
//	GET https://{locale}.{host}/{facet}.json
//
// The facet name may be given in english or localized, i.e. additives
// (world), additifs (fr). Supported output options: locale, page,
// page_size, fields, nocache.
func (c *Client) Facet(ctx context.Context, facet string, o *Output) (*http.Response, error) {
	resp, err := api.Facet(ctx, c.http, c.origin(o), facet,
		o.Params("page", "page_size", "fields", "nocache"))
	observe("facet", err)
	return resp, err
}

// Categories returns the category listing,
//
//	GET https://world.{host}/categories.json
//
// Output options, including any locale override, are ignored: the
// listing is always served from the world subdomain.
func (c *Client) Categories(ctx context.Context, o *Output) (*http.Response, error) {
	resp, err := api.Categories(ctx, c.http, c.worldOrigin())
	observe("categories", err)
	return resp, err
}

// Nutrients returns the per-country nutrient list,
//
//	GET https://{locale}.{host}/cgi/nutrients.pl
//
// Supported output options: locale.
func (c *Client) Nutrients(ctx context.Context, o *Output) (*http.Response, error) {
	resp, err := api.Nutrients(ctx, c.http, c.origin(o))
	observe("nutrients", err)
	return resp, err
}

// --------------------------------------------------------------------
// Product endpoints - delegated to internal/api
// --------------------------------------------------------------------

// ProductsBy returns all products for the given facet or category value,
//
//	GET https://{locale}.{host}/{what}/{id}.json
//
// what is a singular facet name ("brand", "label", "entry-date", ...) or
// the "category" literal, english or localized. id is the localized
// value id returned by the matching Facet or Categories call. Supported
// output options: locale, page, page_size, fields.
func (c *Client) ProductsBy(ctx context.Context, what, id string, o *Output) (*http.Response, error) {
	resp, err := api.ProductsBy(ctx, c.http, c.origin(o), what, id,
		o.Params("page", "page_size", "fields"))
	observe("products_by", err)
	return resp, err
}

// Product returns a single product by barcode,
//
//	GET https://{locale}.{host}/api/{version}/product/{barcode}
//
// Supported output options: locale, fields.
func (c *Client) Product(ctx context.Context, barcode string, o *Output) (*http.Response, error) {
	resp, err := api.Product(ctx, c.http, c.origin(o), c.version, barcode,
		o.Params("fields"))
	observe("product", err)
	return resp, err
}

// --------------------------------------------------------------------
// Search endpoints - delegated to internal/api
// --------------------------------------------------------------------

// Search runs the given query. The endpoint follows the query's
// generation, not the client's:
//
//	GET https://{locale}.{host}/cgi/search.pl   (SearchQueryV0)
//	GET https://{locale}.{host}/api/v2/search   (SearchQueryV2)
//
// Supported output options: locale, fields. The fields pair is appended
// after the query's own parameters.
func (c *Client) Search(ctx context.Context, query SearchQuery, o *Output) (*http.Response, error) {
	params := query.Params()
	params.Extend(o.Params("fields"))

	var (
		resp *http.Response
		err  error
	)
	if query.Version() == types.V0 {
		resp, err = api.SearchV0(ctx, c.http, c.origin(o), params)
	} else {
		resp, err = api.SearchV2(ctx, c.http, c.origin(o), query.Version(), params)
	}
	observe("search", err)
	return resp, err
}

// SearchByBarcodes returns the products matching a comma-separated list
// of barcodes,
//
//	GET https://{locale}.{host}/api/v2/search?code={barcodes}
//
// The v2 REST search endpoint serves this call regardless of the
// client's configured generation. Supported output options: locale,
// fields.
func (c *Client) SearchByBarcodes(ctx context.Context, barcodes string, o *Output) (*http.Response, error) {
	var params types.Params
	params.Add("code", barcodes)
	params.Extend(o.Params("fields"))

	resp, err := api.SearchV2(ctx, c.http, c.origin(o), types.V2, params)
	observe("search_by_barcodes", err)
	return resp, err
}

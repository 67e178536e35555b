package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

func TestProductsBy_PathAndParams(t *testing.T) {
	t.Parallel()
	var path, query string
	srv := recordServer(t, &path, &query)

	var p types.Params
	p.Add("page", "2")
	p.Add("page_size", "10")
	resp, err := ProductsBy(context.Background(), srv.Client(), srv.URL, "brand", "nestle", p)
	if err != nil {
		t.Fatalf("ProductsBy: %v", err)
	}
	defer resp.Body.Close()
	if path != "/brand/nestle.json" {
		t.Fatalf("path = %q", path)
	}
	if query != "page=2&page_size=10" {
		t.Fatalf("query = %q", query)
	}
}

func TestProduct_Path(t *testing.T) {
	t.Parallel()
	var path, query string
	srv := recordServer(t, &path, &query)

	var p types.Params
	p.Add("fields", "code,product_name")
	resp, err := Product(context.Background(), srv.Client(), srv.URL, types.V2, "069000019832", p)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	defer resp.Body.Close()
	if path != "/api/v2/product/069000019832" {
		t.Fatalf("path = %q", path)
	}
	if query != "fields=code%2Cproduct_name" {
		t.Fatalf("query = %q", query)
	}
}

func TestProduct_VersionInPath(t *testing.T) {
	t.Parallel()
	var path, query string
	srv := recordServer(t, &path, &query)

	resp, err := Product(context.Background(), srv.Client(), srv.URL, types.V0, "069000019832", nil)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	defer resp.Body.Close()
	if path != "/api/v0/product/069000019832" {
		t.Fatalf("path = %q", path)
	}
}

func TestProductsBy_BadOrigin(t *testing.T) {
	t.Parallel()
	if _, err := ProductsBy(context.Background(), http.DefaultClient, "https://bad host", "brand", "x", nil); err == nil {
		t.Fatal("expected URL error for malformed origin")
	}
}

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

func TestSearchV0_PathAndQueryOrder(t *testing.T) {
	t.Parallel()
	var path, query string
	srv := recordServer(t, &path, &query)

	params := types.NewSearchQueryV0().
		Criteria("brands", types.OpContains, "nestle").
		Params()
	resp, err := SearchV0(context.Background(), srv.Client(), srv.URL, params)
	if err != nil {
		t.Fatalf("SearchV0: %v", err)
	}
	defer resp.Body.Close()
	if path != "/cgi/search.pl" {
		t.Fatalf("path = %q", path)
	}
	want := "tagtype_1=brands&tag_contains_1=contains&tag_1=nestle&action=process&json=true"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
}

func TestSearchV2_Path(t *testing.T) {
	t.Parallel()
	var path, query string
	srv := recordServer(t, &path, &query)

	params := types.NewSearchQueryV2().
		CriteriaTag("brands", "nestle").
		Params()
	resp, err := SearchV2(context.Background(), srv.Client(), srv.URL, types.V2, params)
	if err != nil {
		t.Fatalf("SearchV2: %v", err)
	}
	defer resp.Body.Close()
	if path != "/api/v2/search" {
		t.Fatalf("path = %q", path)
	}
	if query != "brands_tags=nestle" {
		t.Fatalf("query = %q", query)
	}
}

func TestSearchV0_BadOrigin(t *testing.T) {
	t.Parallel()
	if _, err := SearchV0(context.Background(), http.DefaultClient, "https://bad host", nil); err == nil {
		t.Fatal("expected URL error for malformed origin")
	}
}

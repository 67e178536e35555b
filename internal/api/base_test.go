package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("rt failure")
}

func TestGet_AttachesParamsVerbatim(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var p types.Params
	p.Add("b", "2")
	p.Add("a", "1")
	resp, err := Get(context.Background(), srv.Client(), srv.URL, p)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if gotQuery != "b=2&a=1" {
		t.Fatalf("RawQuery = %q", gotQuery)
	}
}

func TestGet_NoParamsNoQuery(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := Get(context.Background(), srv.Client(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if gotQuery != "" {
		t.Fatalf("RawQuery = %q, want empty", gotQuery)
	}
}

func TestGet_NonOKIsNotError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not here"))
	}))
	defer srv.Close()

	resp, err := Get(context.Background(), srv.Client(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil || string(body) != "not here" {
		t.Fatalf("body = %q, err = %v", body, err)
	}
}

func TestGet_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Get(ctx, http.DefaultClient, "http://example.com", nil); err == nil {
		t.Fatal("expected context error")
	}
}

func TestGet_TransportError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: errRT{}}
	if _, err := Get(context.Background(), hc, "http://example.com", nil); err == nil {
		t.Fatal("expected transport error")
	}
}

package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mobintix/site-service/internal/geo"
)

func jsonServer(t *testing.T, status int, body string, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCountry_PrimarySuccess(t *testing.T) {
	var fallbackHits atomic.Int64
	primary := jsonServer(t, http.StatusOK, `{"country_code":"in"}`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"success":true,"country_code":"DE"}`, &fallbackHits)

	r := geo.NewResolver(primary.URL+"/%s", fallback.URL+"/%s", nil)
	got := r.Country(context.Background(), "1.2.3.4")
	if got != "IN" {
		t.Errorf("Country = %q, want IN (uppercased)", got)
	}
	if fallbackHits.Load() != 0 {
		t.Errorf("fallback was called %d times, want 0", fallbackHits.Load())
	}
}

func TestCountry_FallbackAfterPrimaryFailure(t *testing.T) {
	var fallbackHits atomic.Int64
	primary := jsonServer(t, http.StatusInternalServerError, `boom`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"success":true,"country_code":"DE"}`, &fallbackHits)

	r := geo.NewResolver(primary.URL+"/%s", fallback.URL+"/%s", nil)
	got := r.Country(context.Background(), "1.2.3.4")
	if got != "DE" {
		t.Errorf("Country = %q, want DE", got)
	}
	if fallbackHits.Load() != 1 {
		t.Errorf("fallback was called %d times, want exactly 1", fallbackHits.Load())
	}
}

func TestCountry_DefaultWhenBothFail(t *testing.T) {
	primary := jsonServer(t, http.StatusServiceUnavailable, `down`, nil)
	fallback := jsonServer(t, http.StatusServiceUnavailable, `down`, nil)

	r := geo.NewResolver(primary.URL+"/%s", fallback.URL+"/%s", nil)
	if got := r.Country(context.Background(), "1.2.3.4"); got != "US" {
		t.Errorf("Country = %q, want US default", got)
	}
}

func TestCountry_FallbackUntrustedWithoutSuccess(t *testing.T) {
	primary := jsonServer(t, http.StatusOK, `{}`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"success":false,"country_code":"DE"}`, nil)

	r := geo.NewResolver(primary.URL+"/%s", fallback.URL+"/%s", nil)
	if got := r.Country(context.Background(), "1.2.3.4"); got != "US" {
		t.Errorf("Country = %q, want US when fallback reports success=false", got)
	}
}

func TestCountry_MalformedPrimaryBody(t *testing.T) {
	var fallbackHits atomic.Int64
	primary := jsonServer(t, http.StatusOK, `not json`, nil)
	fallback := jsonServer(t, http.StatusOK, `{"success":true,"country_code":"CA"}`, &fallbackHits)

	r := geo.NewResolver(primary.URL+"/%s", fallback.URL+"/%s", nil)
	if got := r.Country(context.Background(), "1.2.3.4"); got != "CA" {
		t.Errorf("Country = %q, want CA", got)
	}
	if fallbackHits.Load() != 1 {
		t.Errorf("fallback was called %d times, want 1", fallbackHits.Load())
	}
}

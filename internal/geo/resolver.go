// Package geo resolves a visitor's country code from their IP address.
//
// Resolution is fail-open: a primary lookup, at most one fallback lookup,
// and a fixed "US" default when both fail. Region detection must never
// block a page from rendering, so errors are logged rather than returned.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"mobintix/site-service/internal/cache"
)

const (
	lookupTimeout  = 5 * time.Second
	defaultCountry = "US"
)

// Resolver performs IP geolocation against two external endpoints.
// Endpoint URLs are format strings with one %s for the IP, so tests can
// point them at local servers.
type Resolver struct {
	primaryURL  string
	fallbackURL string
	client      *http.Client
	cache       *cache.Cache // optional; nil disables caching
}

// NewResolver constructs a Resolver. cache may be nil.
func NewResolver(primaryURL, fallbackURL string, c *cache.Cache) *Resolver {
	return &Resolver{
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		client:      &http.Client{Timeout: lookupTimeout},
		cache:       c,
	}
}

// primaryResponse mirrors the primary endpoint's JSON body.
type primaryResponse struct {
	CountryCode string `json:"country_code"`
}

// fallbackResponse mirrors the fallback endpoint's JSON body.
// CountryCode is only trusted when Success is true.
type fallbackResponse struct {
	Success     bool   `json:"success"`
	CountryCode string `json:"country_code"`
}

// Country returns the ISO 3166-1 alpha-2 country code for ip.
// It never fails: on any error the fallback endpoint is tried exactly once,
// and if that also fails the fixed default "US" is returned.
func (r *Resolver) Country(ctx context.Context, ip string) string {
	key := "geo:" + ip
	var cached string
	if r.cache.Get(ctx, key, &cached) && cached != "" {
		return cached
	}

	code, err := r.lookupPrimary(ctx, ip)
	if err != nil {
		log.Printf("[geo] primary lookup failed for %s: %v", ip, err)
		code, err = r.lookupFallback(ctx, ip)
		if err != nil {
			log.Printf("[geo] fallback lookup failed for %s: %v", ip, err)
			return defaultCountry
		}
	}

	code = strings.ToUpper(code)
	r.cache.Set(ctx, key, code)
	return code
}

func (r *Resolver) lookupPrimary(ctx context.Context, ip string) (string, error) {
	body, err := r.get(ctx, fmt.Sprintf(r.primaryURL, ip))
	if err != nil {
		return "", err
	}
	var resp primaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}
	if resp.CountryCode == "" {
		return "", fmt.Errorf("empty country_code")
	}
	return resp.CountryCode, nil
}

func (r *Resolver) lookupFallback(ctx context.Context, ip string) (string, error) {
	body, err := r.get(ctx, fmt.Sprintf(r.fallbackURL, ip))
	if err != nil {
		return "", err
	}
	var resp fallbackResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}
	if !resp.Success || resp.CountryCode == "" {
		return "", fmt.Errorf("lookup unsuccessful")
	}
	return resp.CountryCode, nil
}

func (r *Resolver) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

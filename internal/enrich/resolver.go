// Package enrich resolves the effective public address of a caller and
// fetches coarse geolocation data for it.
//
// Both lookups are best-effort with a single attempt and a bounded timeout:
// any failure degrades to a fallback value and is never surfaced to the
// ingestion caller.
package enrich

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
)

const (
	// maxBodySize caps how much of an upstream response is read.
	maxBodySize = 1 << 20
)

// errorMarker is stored as the lookup result when the geolocation service
// could not be reached or answered non-200.
var errorMarker = []byte(`{"error": "Failed to fetch IP location"}`)

// Resolver performs the outbound enrichment lookups.
type Resolver struct {
	client  *http.Client
	echoURL string
	geoURL  string
}

// New creates a Resolver from the enrichment configuration.
func New(cfg config.Enrichment) *Resolver {
	return &Resolver{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		echoURL: cfg.EchoURL,
		geoURL:  cfg.GeoURL,
	}
}

// EffectiveAddress returns the address a visit should be recorded under.
//
// A loopback caller is typical for local or proxied deployments and says
// nothing about the visitor, so the public address is resolved through the
// echo service instead. If that lookup fails in any way the raw address is
// kept; this method never fails.
func (r *Resolver) EffectiveAddress(ctx context.Context, raw string) string {
	if !isLoopback(raw) {
		return raw
	}

	body, err := r.get(ctx, r.echoURL)
	if err != nil {
		log.Warn().Err(err).Msg("address echo lookup failed, keeping loopback address")

		return raw
	}

	echoed := strings.TrimSpace(string(body))
	if net.ParseIP(echoed) == nil {
		log.Warn().Str("body", echoed).Msg("address echo returned no usable address")

		return raw
	}

	return echoed
}

// Lookup fetches the geolocation data for the given address. The result is
// the raw upstream response body, treated as opaque by the caller; ok
// reports whether the lookup succeeded. On failure the result is a
// structured error marker instead, never an error.
func (r *Resolver) Lookup(ctx context.Context, addr string) (result []byte, ok bool) {
	body, err := r.get(ctx, r.geoURL+url.PathEscape(addr))
	if err != nil {
		log.Warn().Err(err).Str("address", addr).Msg("geolocation lookup failed")

		return errorMarker, false
	}

	return body, true
}

// get performs a single GET with the resolver's bounded client and returns
// the body for a 200 response.
func (r *Resolver) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &url.Error{
			Op:  http.MethodGet,
			URL: rawURL,
			Err: errUnexpectedStatus(resp.StatusCode),
		}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

// isLoopback reports whether the raw caller address is a loopback address.
func isLoopback(raw string) bool {
	ip := net.ParseIP(raw)
	return ip != nil && ip.IsLoopback()
}

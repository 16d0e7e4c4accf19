package config

import (
	"github.com/GoVisitorDash/GoVisitorDash/internal/logger"
)

const (
	// DefaultRedirectTarget is where a visitor is sent after /track completes.
	DefaultRedirectTarget = "https://intelleva.app"

	// DefaultEchoURL is the public IP echo service used to resolve loopback callers.
	DefaultEchoURL = "https://api.ipify.org"

	// DefaultGeoURL is the IP geolocation lookup base URL; the address is appended.
	DefaultGeoURL = "http://ip-api.com/json/"

	// DefaultEnrichmentTimeoutSeconds bounds each outbound enrichment call.
	DefaultEnrichmentTimeoutSeconds = 5
)

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	DB         DB
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Enrichment Enrichment
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	RedirectTarget string // where /track sends the visitor afterwards
}

// Enrichment holds the outbound lookup settings for visit enrichment.
// Both lookups are best-effort: a failed call degrades the recorded
// value, it never fails the request.
type Enrichment struct {
	EchoURL        string // public IP echo service for loopback callers
	GeoURL         string // geolocation-by-address base URL
	TimeoutSeconds int    // per-call timeout, single attempt, no retries
}

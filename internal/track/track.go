// Package track implements the visitor ingestion pipeline: it combines the
// caller metadata, the browser-reported payload and the enrichment results
// into one snapshot and upserts it into the visitor store.
package track

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/visitor"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
	"github.com/GoVisitorDash/GoVisitorDash/internal/enrich"
)

// Enrichment outcome labels for the ingest counter.
const (
	OutcomeEnriched = "enriched"
	OutcomeGeoError = "geo_error"
)

var ingests = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "visitor_ingests_total",
		Help: "Number of ingested visits, differentiated by enrichment outcome.",
	},
	[]string{"outcome"},
)

// Payload is the loosely-typed body of a tracking request. Every field is
// optional; a missing field becomes the empty/absent representation instead
// of an error. Structured fields stay raw JSON because their shape tracks
// the browser-side collector, not this service.
type Payload struct {
	Address          json.RawMessage `json:"address"`
	Latitude         *float64        `json:"latitude"`
	Longitude        *float64        `json:"longitude"`
	ScreenResolution string          `json:"screen_resolution"`
	Language         string          `json:"language"`
	Platform         string          `json:"platform"`
	DevicePixelRatio json.Number     `json:"device_pixel_ratio"`
	CPUCores         *int            `json:"cpu_cores"`
	Memory           json.RawMessage `json:"memory"`
	Connection       json.RawMessage `json:"connection"`
	Battery          json.RawMessage `json:"battery"`
	Plugins          json.RawMessage `json:"plugins"`
}

// Service is the ingestion pipeline.
type Service struct {
	db       *gorm.DB
	resolver *enrich.Resolver
}

// NewService creates an ingestion pipeline writing through the given
// database handle and enriching through the given resolver.
func NewService(db *gorm.DB, resolver *enrich.Resolver) *Service {
	return &Service{
		db:       db,
		resolver: resolver,
	}
}

// Ingest records one visit. It resolves the effective address, attaches the
// geolocation lookup result and replaces the stored snapshot for that
// address. The returned address is the effective one; the only possible
// error is a store failure.
func (s *Service) Ingest(ctx context.Context, callerAddr, userAgent string, p Payload) (string, error) {
	addr := s.resolver.EffectiveAddress(ctx, callerAddr)

	geo, ok := s.resolver.Lookup(ctx, addr)

	outcome := OutcomeEnriched
	if !ok {
		outcome = OutcomeGeoError
	}
	ingests.WithLabelValues(outcome).Inc()

	v := &models.Visitor{
		Address:          addr,
		LastVisit:        time.Now(),
		ReportedAddress:  rawString(p.Address),
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		GeoLookup:        string(geo),
		UserAgent:        userAgent,
		ScreenResolution: p.ScreenResolution,
		Language:         p.Language,
		Platform:         p.Platform,
		DevicePixelRatio: p.DevicePixelRatio.String(),
		CPUCores:         p.CPUCores,
		Memory:           rawString(p.Memory),
		ConnectionInfo:   rawString(p.Connection),
		BatteryInfo:      rawString(p.Battery),
		Plugins:          rawString(p.Plugins),
	}

	if err := visitor.Upsert(s.db, v); err != nil {
		return addr, err
	}

	return addr, nil
}

// rawString converts an optional raw JSON field to its stored text form.
// Absent and JSON null both map to "".
func rawString(m json.RawMessage) string {
	trimmed := bytes.TrimSpace(m)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	return string(trimmed)
}

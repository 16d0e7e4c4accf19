// Package models contains database model definitions.
package models

import (
	"time"
)

// Visitor represents the latest recorded visit snapshot for one network
// address. The address is the natural key: a repeat visit from the same
// address overwrites the previous snapshot completely, no history is kept.
//
// The enrichment and browser-reported structures (GeoLookup,
// ReportedAddress, ConnectionInfo, BatteryInfo, Plugins, Memory) are stored
// as serialized JSON text. Their shape tracks whatever the browser-side
// collector and the geolocation service currently send, so they stay opaque
// here and are parsed defensively at render time.
type Visitor struct {
	// Address is the effective network address of the visitor.
	Address string `gorm:"primaryKey;size:64"`
	// LastVisit is set to the ingestion time on every write.
	LastVisit time.Time `gorm:"index"`
	// ReportedAddress is the client-supplied postal address as a JSON blob, or "".
	ReportedAddress string
	// Latitude is present only when the browser granted geolocation permission.
	Latitude *float64
	// Longitude is present only when the browser granted geolocation permission.
	Longitude *float64
	// GeoLookup holds the raw geolocation service response, or an error marker.
	GeoLookup string
	// UserAgent as reported in the request header.
	UserAgent string

	// Browser-reported device metadata, all optional.
	ScreenResolution string
	Language         string
	Platform         string
	DevicePixelRatio string
	CPUCores         *int
	Memory           string
	ConnectionInfo   string
	BatteryInfo      string
	Plugins          string
}

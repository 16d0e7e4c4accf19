package dashboard

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
)

// Placeholder strings used by the dashboard columns.
const (
	notAvailable = "N/A"
	invalidData  = "Invalid Data"
	noDetails    = "Details unavailable"

	statusAllowed = "Allowed"
	statusDenied  = "Denied"
)

// Row is one visitor prepared for template rendering: every display string
// is precomputed so the template stays free of logic.
type Row struct {
	GPSAllowed        bool
	GPSStatus         string
	MapLink           string // empty when coordinates are incomplete
	EstimatedLocation string
	LastVisit         string
	Address           string
	PreciseAddress    string
	UserAgent         string
	ScreenResolution  string
	Language          string
	Platform          string
	DevicePixelRatio  string
	CPUCores          string
	Memory            string
	ConnectionInfo    string
	BatteryInfo       string
	Plugins           string
}

// buildRows derives the display rows from the raw visitor records.
func buildRows(visitors []models.Visitor) []Row {
	rows := make([]Row, 0, len(visitors))

	for i := range visitors {
		rows = append(rows, buildRow(&visitors[i]))
	}

	return rows
}

func buildRow(v *models.Visitor) Row {
	status, allowed := gpsStatus(v.Latitude)

	return Row{
		GPSAllowed:        allowed,
		GPSStatus:         status,
		MapLink:           mapLink(v.Latitude, v.Longitude),
		EstimatedLocation: estimatedLocation(v.GeoLookup),
		LastVisit:         v.LastVisit.Format(time.RFC3339),
		Address:           orNA(v.Address),
		PreciseAddress:    preciseAddress(v.ReportedAddress),
		UserAgent:         orNA(v.UserAgent),
		ScreenResolution:  orNA(v.ScreenResolution),
		Language:          orNA(v.Language),
		Platform:          orNA(v.Platform),
		DevicePixelRatio:  orNA(v.DevicePixelRatio),
		CPUCores:          intOrNA(v.CPUCores),
		Memory:            orNA(v.Memory),
		ConnectionInfo:    orNA(v.ConnectionInfo),
		BatteryInfo:       orNA(v.BatteryInfo),
		Plugins:           orNA(v.Plugins),
	}
}

// gpsStatus is presence based: a recorded latitude means the browser
// granted geolocation permission, even at latitude 0.
func gpsStatus(lat *float64) (status string, allowed bool) {
	if lat == nil {
		return statusDenied, false
	}

	return statusAllowed, true
}

// mapLink builds a map URL from the coordinates, or returns "" when either
// coordinate is missing.
func mapLink(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}

	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(*lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(*lon, 'f', -1, 64)
}

// estimatedLocation reconstructs the coarse location from the stored
// geolocation lookup blob. Only the city and regionName fields are
// consumed, everything else in the blob is upstream-defined.
func estimatedLocation(raw string) string {
	if raw == "" {
		return notAvailable
	}

	var info map[string]any
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return invalidData
	}

	joined := joinNonEmpty(stringField(info, "city"), stringField(info, "regionName"))
	if joined == "" {
		return notAvailable
	}

	return joined
}

// preciseAddress reconstructs the street address from the client-reported
// blob. The locality falls back from city to town to village, matching the
// reverse-geocoder's field variants.
func preciseAddress(raw string) string {
	if raw == "" {
		return notAvailable
	}

	var addr map[string]any
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return invalidData
	}

	locality := stringField(addr, "city")
	if locality == "" {
		locality = stringField(addr, "town")
	}
	if locality == "" {
		locality = stringField(addr, "village")
	}

	joined := joinNonEmpty(stringField(addr, "road"), locality, stringField(addr, "state"))
	if joined == "" {
		return noDetails
	}

	return joined
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}

	return s
}

func intOrNA(n *int) string {
	if n == nil {
		return notAvailable
	}

	return strconv.Itoa(*n)
}

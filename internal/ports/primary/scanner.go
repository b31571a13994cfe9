package primary

import "context"

// GeofenceRadiusMeters is the authorized maintenance zone radius around the
// site location.
const GeofenceRadiusMeters = 50

// Asset is a physical piece of equipment identified by its QR payload.
type Asset struct {
	ID              string
	Name            string
	Category        string
	SiteID          string
	LastMaintenance string
	Status          string // Operational, Down, Maintenance Required
}

// HistoryEntry is one past maintenance action on an asset.
type HistoryEntry struct {
	ID         string
	Date       string
	Action     string
	Technician string
	Status     string // Passed, Fixed, Pending
}

// ScanRequest simulates a QR scan at a given distance from the site center.
type ScanRequest struct {
	AssetID        string
	DistanceMeters float64
}

// ScanResult is a successful scan: the asset and its maintenance history.
type ScanResult struct {
	Asset   *Asset
	History []HistoryEntry
}

// ScannerService is the primary port for the simulated QR/geofence scanner.
// A scan beyond the geofence radius is refused before any asset lookup.
type ScannerService interface {
	Scan(ctx context.Context, req ScanRequest) (*ScanResult, error)
}

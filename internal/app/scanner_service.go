package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/altigreen/internal/ctxutil"
	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// ErrGeofenceViolation is returned when a scan is attempted outside the
// authorized maintenance zone. The geofence check runs before any asset
// lookup.
var ErrGeofenceViolation = errors.New("GEOFENCE VIOLATION: you are outside the authorized maintenance zone")

// ScannerServiceImpl implements the ScannerService interface.
type ScannerServiceImpl struct {
	assets secondary.AssetRepository
}

// NewScannerService creates a new ScannerService with injected dependencies.
func NewScannerService(assets secondary.AssetRepository) *ScannerServiceImpl {
	return &ScannerServiceImpl{assets: assets}
}

// Scan simulates the QR scan flow: geofence verification first, then asset
// lookup. A passed scan is appended to the asset's maintenance history with
// the acting user as technician.
func (s *ScannerServiceImpl) Scan(ctx context.Context, req primary.ScanRequest) (*primary.ScanResult, error) {
	if req.DistanceMeters > primary.GeofenceRadiusMeters {
		return nil, ErrGeofenceViolation
	}

	asset, err := s.assets.GetByID(ctx, req.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up asset %s: %w", req.AssetID, err)
	}

	technician := ctxutil.ActorFromContext(ctx)
	if technician == "" {
		technician = "System"
	}

	id, err := s.assets.GetNextHistoryID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate history ID: %w", err)
	}
	entry := &secondary.AssetHistoryRecord{
		ID:         id,
		AssetID:    asset.ID,
		Date:       time.Now().Format("2006-01-02"),
		Action:     "QR Scan Verification",
		Technician: technician,
		Status:     "Passed",
	}
	if err := s.assets.AddHistory(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record scan: %w", err)
	}

	history, err := s.assets.GetHistory(ctx, asset.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset history: %w", err)
	}

	result := &primary.ScanResult{
		Asset: &primary.Asset{
			ID:              asset.ID,
			Name:            asset.Name,
			Category:        asset.Category,
			SiteID:          asset.SiteID,
			LastMaintenance: asset.LastMaintenance,
			Status:          asset.Status,
		},
	}
	for _, h := range history {
		result.History = append(result.History, primary.HistoryEntry{
			ID:         h.ID,
			Date:       h.Date,
			Action:     h.Action,
			Technician: h.Technician,
			Status:     h.Status,
		})
	}
	return result, nil
}

// Ensure ScannerServiceImpl implements the interface
var _ primary.ScannerService = (*ScannerServiceImpl)(nil)

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/altigreen/internal/ctxutil"
	"github.com/example/altigreen/internal/ports/primary"
	"github.com/example/altigreen/internal/ports/secondary"
)

// mockAssetRepository implements secondary.AssetRepository for testing.
type mockAssetRepository struct {
	assets  map[string]*secondary.AssetRecord
	history map[string][]*secondary.AssetHistoryRecord
	nextID  int
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{
		assets: map[string]*secondary.AssetRecord{
			"AG-MINING-X1-092": {
				ID: "AG-MINING-X1-092", Name: "Mining Loader X1", Category: "Loader",
				SiteID: "SITE-A", LastMaintenance: "2023-11-10", Status: "Operational",
			},
		},
		history: map[string][]*secondary.AssetHistoryRecord{
			"AG-MINING-X1-092": {
				{ID: "H1", AssetID: "AG-MINING-X1-092", Date: "2023-11-10", Action: "Brake Pad Replacement", Technician: "Amit S.", Status: "Fixed"},
			},
		},
	}
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id string) (*secondary.AssetRecord, error) {
	if asset, ok := m.assets[id]; ok {
		return asset, nil
	}
	return nil, secondary.ErrAssetNotFound
}

func (m *mockAssetRepository) GetHistory(ctx context.Context, assetID string) ([]*secondary.AssetHistoryRecord, error) {
	return m.history[assetID], nil
}

func (m *mockAssetRepository) AddHistory(ctx context.Context, entry *secondary.AssetHistoryRecord) error {
	m.history[entry.AssetID] = append([]*secondary.AssetHistoryRecord{entry}, m.history[entry.AssetID]...)
	return nil
}

func (m *mockAssetRepository) GetNextHistoryID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("H%d", m.nextID+10), nil
}

func TestScan_Success(t *testing.T) {
	repo := newMockAssetRepository()
	service := NewScannerService(repo)
	ctx := ctxutil.WithActor(context.Background(), "Rajesh K.")

	result, err := service.Scan(ctx, primary.ScanRequest{AssetID: "AG-MINING-X1-092", DistanceMeters: 10})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Asset.Name != "Mining Loader X1" {
		t.Errorf("unexpected asset: %+v", result.Asset)
	}

	// The scan itself lands in the history, newest first
	if len(result.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(result.History))
	}
	if result.History[0].Action != "QR Scan Verification" {
		t.Errorf("expected scan entry first, got %s", result.History[0].Action)
	}
	if result.History[0].Technician != "Rajesh K." {
		t.Errorf("expected acting technician recorded, got %s", result.History[0].Technician)
	}
}

func TestScan_GeofenceViolation(t *testing.T) {
	repo := newMockAssetRepository()
	service := NewScannerService(repo)

	_, err := service.Scan(context.Background(), primary.ScanRequest{
		AssetID: "AG-MINING-X1-092", DistanceMeters: primary.GeofenceRadiusMeters + 1,
	})
	if !errors.Is(err, ErrGeofenceViolation) {
		t.Fatalf("expected geofence violation, got %v", err)
	}

	// Refused before any lookup: nothing recorded
	if len(repo.history["AG-MINING-X1-092"]) != 1 {
		t.Error("expected no history entry for refused scan")
	}
}

func TestScan_AtGeofenceBoundary(t *testing.T) {
	repo := newMockAssetRepository()
	service := NewScannerService(repo)

	// Exactly on the radius is still inside the zone
	if _, err := service.Scan(context.Background(), primary.ScanRequest{
		AssetID: "AG-MINING-X1-092", DistanceMeters: primary.GeofenceRadiusMeters,
	}); err != nil {
		t.Errorf("expected scan at boundary to pass, got %v", err)
	}
}

func TestScan_UnknownAsset(t *testing.T) {
	repo := newMockAssetRepository()
	service := NewScannerService(repo)

	_, err := service.Scan(context.Background(), primary.ScanRequest{AssetID: "AG-NOPE", DistanceMeters: 5})
	if err == nil {
		t.Fatal("expected error for unknown asset")
	}
	if !errors.Is(err, secondary.ErrAssetNotFound) {
		t.Errorf("expected asset-not-found, got %v", err)
	}
}

func TestScan_AnonymousActorRecordsSystem(t *testing.T) {
	repo := newMockAssetRepository()
	service := NewScannerService(repo)

	result, err := service.Scan(context.Background(), primary.ScanRequest{AssetID: "AG-MINING-X1-092", DistanceMeters: 0})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.History[0].Technician != "System" {
		t.Errorf("expected System technician without actor, got %s", result.History[0].Technician)
	}
}

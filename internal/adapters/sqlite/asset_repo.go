package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/altigreen/internal/ports/secondary"
)

// AssetRepository implements secondary.AssetRepository with SQLite.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new SQLite asset repository.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetByID retrieves an asset by its QR payload.
func (r *AssetRepository) GetByID(ctx context.Context, id string) (*secondary.AssetRecord, error) {
	var (
		record          secondary.AssetRecord
		category        sql.NullString
		siteID          sql.NullString
		lastMaintenance sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, category, site_id, last_maintenance, status FROM assets WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &category, &siteID, &lastMaintenance, &record.Status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("asset %s: %w", id, secondary.ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	record.Category = category.String
	record.SiteID = siteID.String
	record.LastMaintenance = lastMaintenance.String
	return &record, nil
}

// GetHistory retrieves maintenance history for an asset, newest first.
func (r *AssetRepository) GetHistory(ctx context.Context, assetID string) ([]*secondary.AssetHistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, asset_id, date, technician, action, status FROM asset_history WHERE asset_id = ? ORDER BY date DESC, id DESC",
		assetID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset history: %w", err)
	}
	defer rows.Close()

	var history []*secondary.AssetHistoryRecord
	for rows.Next() {
		var (
			record     secondary.AssetHistoryRecord
			technician sql.NullString
		)
		if err := rows.Scan(&record.ID, &record.AssetID, &record.Date, &technician, &record.Action, &record.Status); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		record.Technician = technician.String
		history = append(history, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return history, nil
}

// AddHistory appends a maintenance history entry.
func (r *AssetRepository) AddHistory(ctx context.Context, entry *secondary.AssetHistoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO asset_history (id, asset_id, date, action, technician, status) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.AssetID, entry.Date, entry.Action, entry.Technician, entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

// GetNextHistoryID returns the next available history entry ID.
func (r *AssetRepository) GetNextHistoryID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 2) AS INTEGER)), 0) FROM asset_history",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next history ID: %w", err)
	}
	return fmt.Sprintf("H%d", maxID+1), nil
}

// Ensure AssetRepository implements the interface
var _ secondary.AssetRepository = (*AssetRepository)(nil)

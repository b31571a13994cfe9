package db

import (
	"database/sql"
	"fmt"
)

// SeedAssets populates the asset registry with the standard fleet fixtures.
// IDs double as QR payloads; they line up with the asset IDs referenced by
// the seed work orders.
func SeedAssets(database *sql.DB) error {
	assets := []struct{ id, name, category, siteID, lastMaintenance, status string }{
		{"AG-EXC-88", "Titan Excavator X1", "Excavator", "SITE-A", "2023-11-10", "Maintenance Required"},
		{"AG-HT-12", "Haul Truck H-500", "Hauler", "SITE-A", "2023-10-28", "Operational"},
		{"AG-DR-04", "Drill Rig D-20", "Drill", "SITE-A", "2023-11-20", "Operational"},
		{"EQ-CONV-01", "Conveyor Belt System", "Conveyor", "SITE-B", "2023-11-01", "Down"},
		{"AG-MINING-X1-092", "Mining Loader X1", "Loader", "SITE-A", "2023-11-10", "Operational"},
	}
	for _, a := range assets {
		if _, err := database.Exec(
			"INSERT INTO assets (id, name, category, site_id, last_maintenance, status) VALUES (?, ?, ?, ?, ?, ?)",
			a.id, a.name, a.category, a.siteID, a.lastMaintenance, a.status,
		); err != nil {
			return fmt.Errorf("seed assets: %w", err)
		}
	}

	history := []struct{ id, assetID, date, action, technician, status string }{
		{"H1", "AG-MINING-X1-092", "2023-11-10", "Brake Pad Replacement", "Amit S.", "Fixed"},
		{"H2", "AG-MINING-X1-092", "2023-10-25", "Hydraulic Pressure Check", "Rajesh K.", "Passed"},
		{"H3", "AG-MINING-X1-092", "2023-10-15", "Firmware Update v4.0", "System", "Passed"},
	}
	for _, h := range history {
		if _, err := database.Exec(
			"INSERT INTO asset_history (id, asset_id, date, action, technician, status) VALUES (?, ?, ?, ?, ?, ?)",
			h.id, h.assetID, h.date, h.action, h.technician, h.status,
		); err != nil {
			return fmt.Errorf("seed asset history: %w", err)
		}
	}

	return nil
}

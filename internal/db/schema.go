package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(); repository code referencing a column that
// does not exist here fails immediately with "no such column" at test time
// instead of in production.
const SchemaSQL = `
-- Snapshots (key -> JSON document store)
-- The work order sequence persists here under 'alti_work_orders' in the same
-- layout the original browser client kept in localStorage.
CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Assets (physical equipment, id doubles as the QR payload)
CREATE TABLE IF NOT EXISTS assets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	site_id TEXT,
	last_maintenance TEXT,
	status TEXT NOT NULL CHECK(status IN ('Operational', 'Down', 'Maintenance Required')) DEFAULT 'Operational',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Asset maintenance history
CREATE TABLE IF NOT EXISTS asset_history (
	id TEXT PRIMARY KEY,
	asset_id TEXT NOT NULL,
	date TEXT NOT NULL,
	action TEXT NOT NULL,
	technician TEXT,
	status TEXT NOT NULL CHECK(status IN ('Passed', 'Fixed', 'Pending')) DEFAULT 'Pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (asset_id) REFERENCES assets(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_asset_history_asset ON asset_history(asset_id);

-- Audit log (one row per store mutation)
CREATE TABLE IF NOT EXISTS audit_log (
	id TEXT PRIMARY KEY,
	actor TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'toggle')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_entity ON audit_log(entity_type, entity_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}

	// Seed assets on a fresh install so the scanner has something to find
	var assetCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&assetCount); err != nil {
		return err
	}
	if assetCount == 0 {
		return SeedAssets(db)
	}

	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

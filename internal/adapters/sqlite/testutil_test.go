// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/altigreen/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedAsset inserts a test asset and returns its ID.
func seedAsset(t *testing.T, database *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "AG-TEST-01"
	}
	if name == "" {
		name = "Test Excavator"
	}
	_, err := database.Exec(
		"INSERT INTO assets (id, name, category, site_id, last_maintenance, status) VALUES (?, ?, 'Excavator', 'SITE-A', '2023-11-01', 'Operational')",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed asset: %v", err)
	}
	return id
}

// seedHistory inserts a history entry for an asset.
func seedHistory(t *testing.T, database *sql.DB, id, assetID, date, action string) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO asset_history (id, asset_id, date, action, technician, status) VALUES (?, ?, ?, ?, 'Amit S.', 'Passed')",
		id, assetID, date, action,
	)
	if err != nil {
		t.Fatalf("failed to seed history: %v", err)
	}
}

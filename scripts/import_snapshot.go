//go:build ignore

package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Imports a browser localStorage export of the work order snapshot into the
// local database, replacing whatever is stored under alti_work_orders.
//
// Usage: go run scripts/import_snapshot.go -file export.json [-db ~/.alti/alti.db]

func main() {
	file := flag.String("file", "", "JSON file holding the exported work order array")
	dbPath := flag.String("db", "", "database path (default ~/.alti/alti.db)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read export: %v\n", err)
		os.Exit(1)
	}

	// Validate it is a JSON array before touching the database
	var orders []json.RawMessage
	if err := json.Unmarshal(data, &orders); err != nil {
		fmt.Fprintf(os.Stderr, "export is not a JSON array: %v\n", err)
		os.Exit(1)
	}

	path := *dbPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		path = filepath.Join(home, ".alti", "alti.db")
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	_, err = database.Exec(
		"INSERT INTO snapshots (key, value) VALUES ('alti_work_orders', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		string(data),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Imported %d work orders into %s\n", len(orders), path)
}

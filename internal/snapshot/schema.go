package snapshot

import "database/sql"

const (
	// SQLite schema for storing snapshots
	createMetadataTable = `
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	createDefinitionsTable = `
		CREATE TABLE IF NOT EXISTS tuple_definitions (
			table_name TEXT PRIMARY KEY,
			definition_json TEXT NOT NULL
		);
	`

	createSectionsTable = `
		CREATE TABLE IF NOT EXISTS sections (
			position INTEGER PRIMARY KEY,
			section_id TEXT NOT NULL,
			section_type TEXT NOT NULL,
			codepage INTEGER NOT NULL
		);
	`

	createTupleDataTable = `
		CREATE TABLE IF NOT EXISTS tuple_data (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section_position INTEGER NOT NULL,
			table_name TEXT NOT NULL,
			tuple_json TEXT NOT NULL
		);
	`

	createTupleDataIndex = `
		CREATE INDEX IF NOT EXISTS idx_tuple_data_section
		ON tuple_data(section_position, id);
	`
)

// initializeSchema creates the snapshot tables
func initializeSchema(db *sql.DB) error {
	schemas := []string{
		createMetadataTable,
		createDefinitionsTable,
		createSectionsTable,
		createTupleDataTable,
		createTupleDataIndex,
	}

	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return err
		}
	}

	return nil
}

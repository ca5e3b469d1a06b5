package database

import (
	_ "modernc.org/sqlite"

	"github.com/koba/wix-tuples/internal/schema"
)

// SQLite implements the Database interface for a SQLite file
type SQLite struct {
	conn
}

// NewSQLite creates a new SQLite database connection; config.Database is the file path
func NewSQLite(config Config) *SQLite {
	return &SQLite{conn{config: config, dialect: DialectSQLite}}
}

// Connect opens the SQLite file, creating it if needed
func (s *SQLite) Connect() error {
	return s.open("sqlite", s.config.Database)
}

// GetAllTables retrieves all user table names
func (s *SQLite) GetAllTables() ([]string, error) {
	return s.queryTableNames("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
}

// GetTableSchema reads the tuple definition a table was created from
func (s *SQLite) GetTableSchema(tableName string) (*schema.TupleDefinition, error) {
	return s.queryDefinition(tableName, "SELECT name, type FROM pragma_table_info(?) ORDER BY cid", tableName)
}

// GetTableData retrieves all data from a table in insertion order
func (s *SQLite) GetTableData(tableName string, limit int) ([]schema.Row, error) {
	return s.queryRows("SELECT * FROM "+quoteIdentifier(DialectSQLite, tableName)+" ORDER BY rowid", limit)
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/koba/wix-tuples/internal/schema"
)

var (
	ErrUnsupportedDatabase = errors.New("unsupported database type")
	ErrMissingConfig       = errors.New("missing database configuration")
	ErrUnknownSQLType      = errors.New("unknown SQL column type")
)

// Dialect names a supported SQL database
type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect accepts the usual spellings of a database type
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "mysql":
		return DialectMySQL, nil
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedDatabase, s)
}

// Config holds database connection configuration
type Config struct {
	Type     Dialect
	Host     string
	Port     string
	Database string // file path for sqlite
	User     string
	Password string
}

// Database interface defines operations for database connections
type Database interface {
	Connect() error
	Close() error
	Dialect() Dialect
	GetAllTables() ([]string, error)
	GetTableSchema(tableName string) (*schema.TupleDefinition, error)
	GetTableData(tableName string, limit int) ([]schema.Row, error)
	Exec(statements []string) error
}

// NewDatabase creates a new database connection based on type
func NewDatabase(config Config) (Database, error) {
	switch config.Type {
	case DialectMySQL:
		return NewMySQL(config), nil
	case DialectPostgres:
		return NewPostgres(config), nil
	case DialectSQLite:
		return NewSQLite(config), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDatabase, config.Type)
	}
}

// LoadConfigFromEnv loads database configuration from environment variables
func LoadConfigFromEnv() (Config, error) {
	rawType := os.Getenv("DB_TYPE")
	if rawType == "" {
		return Config{}, fmt.Errorf("%w: DB_TYPE environment variable is required", ErrMissingConfig)
	}
	dbType, err := ParseDialect(rawType)
	if err != nil {
		return Config{}, err
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	database := os.Getenv("DB_NAME")
	if database == "" {
		return Config{}, fmt.Errorf("%w: DB_NAME environment variable is required", ErrMissingConfig)
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")

	port := os.Getenv("DB_PORT")
	if port == "" {
		switch dbType {
		case DialectMySQL:
			port = "3306"
		case DialectPostgres:
			port = "5432"
		}
	}

	return Config{
		Type:     dbType,
		Host:     host,
		Port:     port,
		Database: database,
		User:     user,
		Password: password,
	}, nil
}

// liveColumn is a column as reported by the database catalog
type liveColumn struct {
	name    string
	sqlType string
}

// ColumnTypeFromSQL maps a column type reported by the database back to a column kind.
// Paths are stored as text and read back as String.
func ColumnTypeFromSQL(dialect Dialect, sqlType string) (schema.ColumnType, error) {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	switch {
	case dialect == DialectMySQL && strings.HasPrefix(t, "tinyint(1)"):
		return schema.ColumnTypeBool, nil
	case t == "boolean" || t == "bool":
		return schema.ColumnTypeBool, nil
	case strings.HasPrefix(t, "bigint"):
		return schema.ColumnTypeLargeNumber, nil
	case strings.HasPrefix(t, "int"):
		return schema.ColumnTypeNumber, nil
	case strings.Contains(t, "text") || strings.Contains(t, "char"):
		return schema.ColumnTypeString, nil
	}
	return schema.ColumnTypeString, fmt.Errorf("%w: %s", ErrUnknownSQLType, sqlType)
}

// buildDefinition turns the live columns of a table into a definition,
// leaving out the bookkeeping columns
func buildDefinition(dialect Dialect, tableName string, columns []liveColumn) (*schema.TupleDefinition, error) {
	var defColumns []schema.Column
	for _, col := range columns {
		if schema.IsBookkeepingColumn(col.name) {
			continue
		}
		ct, err := ColumnTypeFromSQL(dialect, col.sqlType)
		if err != nil {
			return nil, fmt.Errorf("column %s.%s: %w", tableName, col.name, err)
		}
		defColumns = append(defColumns, schema.Column{Name: col.name, Type: ct})
	}
	return schema.NewTupleDefinition(tableName, defColumns...), nil
}

// conn is the connection state every dialect shares
type conn struct {
	config  Config
	dialect Dialect
	db      *sql.DB
}

// open connects with the given driver and checks the connection is usable
func (c *conn) open(driverName, dsn string) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", c.dialect, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping %s: %w", c.dialect, err)
	}

	c.db = db
	return nil
}

// Close closes the connection
func (c *conn) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *conn) Dialect() Dialect { return c.dialect }

// Exec runs the statements in one transaction
func (c *conn) Exec(statements []string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (c *conn) queryTableNames(query string, args ...interface{}) ([]string, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

// queryDefinition reads a table's columns with a query returning name and
// SQL type, in column order
func (c *conn) queryDefinition(tableName, query string, args ...interface{}) (*schema.TupleDefinition, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	defer rows.Close()

	var columns []liveColumn
	for rows.Next() {
		var col liveColumn
		if err := rows.Scan(&col.name, &col.sqlType); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownDefinition, tableName)
	}

	return buildDefinition(c.dialect, tableName, columns)
}

// queryRows reads every row of a query; a positive limit caps the row count
func (c *conn) queryRows(query string, limit int) ([]schema.Row, error) {
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get table data: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var data []schema.Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(schema.Row)
		for i, col := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = val
			}
		}

		data = append(data, row)
	}

	return data, rows.Err()
}

// quoteIdentifier quotes a table or column name for the dialect
func quoteIdentifier(dialect Dialect, name string) string {
	if dialect == DialectMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

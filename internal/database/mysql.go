package database

import (
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/koba/wix-tuples/internal/schema"
)

// MySQL implements the Database interface for MySQL
type MySQL struct {
	conn
}

// NewMySQL creates a new MySQL database connection
func NewMySQL(config Config) *MySQL {
	return &MySQL{conn{config: config, dialect: DialectMySQL}}
}

// Connect establishes a connection to MySQL
func (m *MySQL) Connect() error {
	cfg := mysql.NewConfig()
	cfg.User = m.config.User
	cfg.Passwd = m.config.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(m.config.Host, m.config.Port)
	cfg.DBName = m.config.Database
	cfg.ParseTime = true

	return m.open("mysql", cfg.FormatDSN())
}

// GetAllTables retrieves all table names in the database
func (m *MySQL) GetAllTables() ([]string, error) {
	return m.queryTableNames(
		"SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME",
		m.config.Database,
	)
}

// GetTableSchema reads the tuple definition a table was created from
func (m *MySQL) GetTableSchema(tableName string) (*schema.TupleDefinition, error) {
	query := `
		SELECT
			COLUMN_NAME,
			COLUMN_TYPE
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`
	return m.queryDefinition(tableName, query, m.config.Database, tableName)
}

// GetTableData retrieves all data from a table
func (m *MySQL) GetTableData(tableName string, limit int) ([]schema.Row, error) {
	return m.queryRows("SELECT * FROM "+quoteIdentifier(DialectMySQL, tableName), limit)
}

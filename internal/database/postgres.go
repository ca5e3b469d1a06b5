package database

import (
	"fmt"

	_ "github.com/lib/pq"

	"github.com/koba/wix-tuples/internal/schema"
)

// Postgres implements the Database interface for PostgreSQL
type Postgres struct {
	conn
}

// NewPostgres creates a new PostgreSQL database connection
func NewPostgres(config Config) *Postgres {
	return &Postgres{conn{config: config, dialect: DialectPostgres}}
}

// Connect establishes a connection to PostgreSQL
func (p *Postgres) Connect() error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.config.Host,
		p.config.Port,
		p.config.User,
		p.config.Password,
		p.config.Database,
	)
	return p.open("postgres", dsn)
}

// GetAllTables retrieves all table names in the public schema
func (p *Postgres) GetAllTables() ([]string, error) {
	return p.queryTableNames(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
}

// GetTableSchema reads the tuple definition a table was created from
func (p *Postgres) GetTableSchema(tableName string) (*schema.TupleDefinition, error) {
	query := `
		SELECT
			column_name,
			data_type
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`
	return p.queryDefinition(tableName, query, tableName)
}

// GetTableData retrieves all data from a table in physical order
func (p *Postgres) GetTableData(tableName string, limit int) ([]schema.Row, error) {
	return p.queryRows("SELECT * FROM "+quoteIdentifier(DialectPostgres, tableName)+" ORDER BY ctid", limit)
}

package generator

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/koba/wix-tuples/internal/database"
	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

var ErrUnsupportedDialect = errors.New("unsupported SQL dialect")

// GenerateSQL generates migration SQL from a diff result
func GenerateSQL(result *diff.DiffResult, dialect database.Dialect) (string, error) {
	statements, err := Statements(result, dialect)
	if err != nil {
		return "", err
	}
	return strings.Join(statements, "\n"), nil
}

// Statements returns the migration statements for a diff result: definition
// changes first, then tuple changes, each in table name order. Tuple changes
// of dropped tables are left out.
func Statements(result *diff.DiffResult, dialect database.Dialect) ([]string, error) {
	if err := checkDialect(dialect); err != nil {
		return nil, err
	}

	var sqlStatements []string

	// Generate DDL statements
	ddlGen := NewDDLGenerator(dialect)
	for _, tableName := range sortedKeys(result.DefinitionDiffs) {
		sqlStatements = append(sqlStatements, ddlGen.Generate(result.DefinitionDiffs[tableName])...)
	}

	// Generate DML statements
	dmlGen := NewDMLGenerator(dialect)
	for _, tableName := range sortedKeys(result.TupleDiffs) {
		if d, ok := result.DefinitionDiffs[tableName]; ok && d.Action == diff.ActionDrop {
			continue
		}
		sqlStatements = append(sqlStatements, dmlGen.Generate(result.TupleDiffs[tableName])...)
	}

	return sqlStatements, nil
}

// CreateTables returns a CREATE TABLE statement per definition
func CreateTables(defs []*schema.TupleDefinition, dialect database.Dialect) ([]string, error) {
	if err := checkDialect(dialect); err != nil {
		return nil, err
	}

	ddlGen := NewDDLGenerator(dialect)
	statements := make([]string, 0, len(defs))
	for _, def := range defs {
		statements = append(statements, ddlGen.CreateTable(def))
	}
	return statements, nil
}

// InsertTuples returns an INSERT statement per tuple of im, in section order
func InsertTuples(im *intermediate.Intermediate, dialect database.Dialect) ([]string, error) {
	if err := checkDialect(dialect); err != nil {
		return nil, err
	}

	dmlGen := NewDMLGenerator(dialect)
	var statements []string
	for _, section := range im.Sections {
		for _, t := range section.Tuples {
			statements = append(statements, dmlGen.Insert(diff.SectionTuple{SectionID: section.ID, Tuple: t}))
		}
	}
	return statements, nil
}

func checkDialect(dialect database.Dialect) error {
	switch dialect {
	case database.DialectMySQL, database.DialectPostgres, database.DialectSQLite:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// sqlDialect holds what DDL and DML share: identifier quoting and literals
type sqlDialect struct {
	dialect database.Dialect
}

func (d sqlDialect) quoteIdentifier(name string) string {
	if d.dialect == database.DialectMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d sqlDialect) formatValue(val interface{}) string {
	if val == nil {
		return "NULL"
	}

	switch v := val.(type) {
	case string:
		// Escape single quotes
		escaped := strings.ReplaceAll(v, "'", "''")
		if d.dialect == database.DialectMySQL {
			escaped = strings.ReplaceAll(escaped, `\`, `\\`)
		}
		return fmt.Sprintf("'%s'", escaped)
	case int32, int64:
		return fmt.Sprintf("%d", v)
	case bool:
		if d.dialect == database.DialectPostgres {
			if v {
				return "TRUE"
			}
			return "FALSE"
		}
		if v {
			return "1"
		}
		return "0"
	default:
		// Fallback to string representation
		return d.formatValue(fmt.Sprint(v))
	}
}

// sqlType returns the column type a kind is stored as
func (d sqlDialect) sqlType(kind schema.ColumnType) string {
	switch kind.Storage() {
	case schema.ColumnTypeNumber:
		if d.dialect == database.DialectMySQL {
			return "INT"
		}
		return "INTEGER"
	case schema.ColumnTypeLargeNumber:
		return "BIGINT"
	case schema.ColumnTypeBool:
		if d.dialect == database.DialectMySQL {
			return "TINYINT(1)"
		}
		return "BOOLEAN"
	}
	return "TEXT"
}

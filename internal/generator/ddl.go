package generator

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/koba/wix-tuples/internal/database"
	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/schema"
)

// DDLGenerator generates DDL statements
type DDLGenerator struct {
	sqlDialect
}

// NewDDLGenerator creates a new DDL generator
func NewDDLGenerator(dialect database.Dialect) *DDLGenerator {
	return &DDLGenerator{sqlDialect{dialect: dialect}}
}

// Generate generates DDL for a definition diff
func (g *DDLGenerator) Generate(definitionDiff *diff.DefinitionDiff) []string {
	var statements []string

	switch definitionDiff.Action {
	case diff.ActionAdd:
		statements = append(statements, g.CreateTable(definitionDiff.NewDefinition))

	case diff.ActionDrop:
		statements = append(statements, g.generateDropTable(definitionDiff.TableName))

	case diff.ActionModify:
		// Drops come first in the change list, then columns in their new order
		for _, colChange := range definitionDiff.ColumnChanges {
			switch colChange.Action {
			case diff.ActionAdd:
				statements = append(statements, g.generateAddColumn(definitionDiff.NewDefinition, colChange))
			case diff.ActionDrop:
				statements = append(statements, g.generateDropColumn(definitionDiff.TableName, colChange.ColumnName))
			case diff.ActionModify:
				if stmt := g.generateModifyColumn(definitionDiff.NewDefinition, colChange); stmt != "" {
					statements = append(statements, stmt)
				}
			}
		}
	}

	return statements
}

// CreateTable generates the table storing rows of def: the bookkeeping
// columns followed by the definition's columns in order
func (g *DDLGenerator) CreateTable(def *schema.TupleDefinition) string {
	var parts []string

	for _, name := range schema.BookkeepingColumns {
		parts = append(parts, g.quoteIdentifier(name)+" TEXT")
	}
	for _, col := range def.Columns() {
		parts = append(parts, g.columnDefinition(col))
	}

	tableName := g.quoteIdentifier(def.Name())
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n);", tableName, strings.Join(parts, ",\n  "))
}

func (g *DDLGenerator) generateDropTable(tableName string) string {
	return fmt.Sprintf("DROP TABLE %s;", g.quoteIdentifier(tableName))
}

func (g *DDLGenerator) generateAddColumn(def *schema.TupleDefinition, change diff.ColumnChange) string {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s",
		g.quoteIdentifier(def.Name()),
		g.columnDefinition(*change.NewColumn),
	)

	if g.dialect == database.DialectMySQL {
		return stmt + g.columnPosition(def, change.NewPosition) + ";"
	}
	if change.NewPosition != def.Len()-1 {
		logger.Warning(fmt.Sprintf("%s: column %s.%s is appended, not placed at position %d", g.dialect, def.Name(), change.ColumnName, change.NewPosition))
	}
	return stmt + ";"
}

func (g *DDLGenerator) generateDropColumn(tableName, columnName string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;",
		g.quoteIdentifier(tableName),
		g.quoteIdentifier(columnName),
	)
}

// generateModifyColumn returns "" when the change needs no statement or the
// dialect cannot express it
func (g *DDLGenerator) generateModifyColumn(def *schema.TupleDefinition, change diff.ColumnChange) string {
	typeChanged := change.OldColumn.Type.Storage() != change.NewColumn.Type.Storage()

	switch g.dialect {
	case database.DialectMySQL:
		if !typeChanged && !change.Moved() {
			return ""
		}
		return fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s%s;",
			g.quoteIdentifier(def.Name()),
			g.columnDefinition(*change.NewColumn),
			g.columnPosition(def, change.NewPosition),
		)

	case database.DialectPostgres:
		if change.Moved() {
			logger.Warning(fmt.Sprintf("%s: cannot move column %s.%s to position %d", g.dialect, def.Name(), change.ColumnName, change.NewPosition))
		}
		if !typeChanged {
			return ""
		}
		sqlType := g.sqlType(change.NewColumn.Type)
		return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s USING %s::%s;",
			g.quoteIdentifier(def.Name()),
			g.quoteIdentifier(change.ColumnName),
			sqlType,
			g.quoteIdentifier(change.ColumnName),
			sqlType,
		)
	}

	if typeChanged || change.Moved() {
		logger.Warning(fmt.Sprintf("%s: cannot alter column %s.%s, statement skipped", g.dialect, def.Name(), change.ColumnName))
	}
	return ""
}

// columnPosition places a MySQL column right after its predecessor in def
func (g *DDLGenerator) columnPosition(def *schema.TupleDefinition, position int) string {
	if position == 0 {
		return " AFTER " + g.quoteIdentifier(schema.BookkeepingColumns[len(schema.BookkeepingColumns)-1])
	}
	return " AFTER " + g.quoteIdentifier(def.Column(position-1).Name)
}

func (g *DDLGenerator) columnDefinition(col schema.Column) string {
	return g.quoteIdentifier(col.Name) + " " + g.sqlType(col.Type)
}

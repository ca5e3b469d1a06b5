package generator

import (
	"fmt"
	"strings"

	"github.com/koba/wix-tuples/internal/database"
	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

// DMLGenerator generates DML statements
type DMLGenerator struct {
	sqlDialect
}

// NewDMLGenerator creates a new DML generator
func NewDMLGenerator(dialect database.Dialect) *DMLGenerator {
	return &DMLGenerator{sqlDialect{dialect: dialect}}
}

// Generate generates DML for a tuple diff
func (g *DMLGenerator) Generate(tupleDiff *diff.TupleDiff) []string {
	var statements []string

	// Generate DELETE statements
	for _, st := range tupleDiff.TuplesDeleted {
		statements = append(statements, g.generateDelete(st))
	}

	// Generate INSERT statements
	for _, st := range tupleDiff.TuplesAdded {
		statements = append(statements, g.Insert(st))
	}

	// Generate UPDATE statements
	for _, mod := range tupleDiff.TuplesModified {
		if stmt := g.generateUpdate(mod.Old, mod.New); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// rowColumns returns the stored columns of def in table order
func rowColumns(def *schema.TupleDefinition) []string {
	columns := make([]string, 0, len(schema.BookkeepingColumns)+def.Len())
	columns = append(columns, schema.BookkeepingColumns...)
	for _, col := range def.Columns() {
		columns = append(columns, col.Name)
	}
	return columns
}

// Insert generates the INSERT storing one tuple
func (g *DMLGenerator) Insert(st diff.SectionTuple) string {
	row := intermediate.TupleToRow(st.Tuple, st.SectionID)

	var columns []string
	var values []string
	for _, col := range rowColumns(st.Tuple.Definition()) {
		columns = append(columns, g.quoteIdentifier(col))
		values = append(values, g.formatValue(row[col]))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		g.quoteIdentifier(st.Tuple.Definition().Name()),
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
	)
}

// generateDelete removes the row with the tuple's id. A row without an id is
// removed once, so that one of several identical rows survives.
func (g *DMLGenerator) generateDelete(st diff.SectionTuple) string {
	tableName := g.quoteIdentifier(st.Tuple.Definition().Name())
	where := g.buildWhereClause(st)

	if st.Tuple.ID() != nil {
		return fmt.Sprintf("DELETE FROM %s WHERE %s;", tableName, where)
	}

	switch g.dialect {
	case database.DialectMySQL:
		return fmt.Sprintf("DELETE FROM %s WHERE %s LIMIT 1;", tableName, where)
	case database.DialectPostgres:
		return fmt.Sprintf("DELETE FROM %s WHERE ctid IN (SELECT ctid FROM %s WHERE %s LIMIT 1);", tableName, tableName, where)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE rowid IN (SELECT rowid FROM %s WHERE %s LIMIT 1);", tableName, tableName, where)
}

func (g *DMLGenerator) generateUpdate(oldTuple, newTuple diff.SectionTuple) string {
	oldRow := intermediate.TupleToRow(oldTuple.Tuple, oldTuple.SectionID)
	newRow := intermediate.TupleToRow(newTuple.Tuple, newTuple.SectionID)

	var setClauses []string
	for _, col := range rowColumns(newTuple.Tuple.Definition()) {
		if col == schema.IDColumn {
			continue
		}
		newVal := newRow[col]
		if oldVal, exists := oldRow[col]; !exists || oldVal != newVal {
			setClauses = append(setClauses,
				fmt.Sprintf("%s = %s", g.quoteIdentifier(col), g.formatValue(newVal)),
			)
		}
	}

	if len(setClauses) == 0 {
		return ""
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s;",
		g.quoteIdentifier(newTuple.Tuple.Definition().Name()),
		strings.Join(setClauses, ", "),
		g.buildWhereClause(oldTuple),
	)
}

// buildWhereClause matches a row by its id, or by section and every column
// when the row has no id
func (g *DMLGenerator) buildWhereClause(st diff.SectionTuple) string {
	row := intermediate.TupleToRow(st.Tuple, st.SectionID)

	columns := []string{schema.IDColumn}
	if st.Tuple.ID() == nil {
		columns = append([]string{schema.IDColumn, schema.SectionColumn}, rowColumns(st.Tuple.Definition())[len(schema.BookkeepingColumns):]...)
	}

	var conditions []string
	for _, col := range columns {
		val := row[col]
		if val == nil {
			conditions = append(conditions,
				fmt.Sprintf("%s IS NULL", g.quoteIdentifier(col)),
			)
		} else {
			conditions = append(conditions,
				fmt.Sprintf("%s = %s", g.quoteIdentifier(col), g.formatValue(val)),
			)
		}
	}

	return strings.Join(conditions, " AND ")
}

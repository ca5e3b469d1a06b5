package database

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

// Pull reads the named tables, or every table when tables is empty, back into
// an intermediate. Rows are grouped into one section per distinct _Section
// value, in the order the sections are first seen. Tables the resolver does
// not know are skipped. A positive limit caps the rows read per table.
func Pull(db Database, resolver intermediate.DefinitionResolver, tables []string, limit int) (*intermediate.Intermediate, error) {
	if len(tables) == 0 {
		var err error
		if tables, err = db.GetAllTables(); err != nil {
			return nil, err
		}
	}

	im := intermediate.New()
	for _, tableName := range tables {
		def, err := resolver.ResolveDefinition(tableName)
		if errors.Is(err, schema.ErrUnknownDefinition) {
			logger.Warning(fmt.Sprintf("skipping table %s: no tuple definition", tableName))
			continue
		}
		if err != nil {
			return nil, err
		}

		rows, err := db.GetTableData(tableName, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", tableName, err)
		}

		for _, row := range rows {
			t, sectionID, err := intermediate.RowToTuple(def, row)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", tableName, err)
			}

			section, ok := im.Section(sectionID)
			if !ok {
				section = intermediate.NewSection(sectionID, intermediate.SectionTypeUnknown, 0)
				im.AddSection(section)
			}
			section.AddTuple(t)
		}
		logger.Verbose(fmt.Sprintf("pulled %d rows from %s", len(rows), tableName))
	}

	return im, nil
}

// Verify compares the live tables with the definitions they should hold and
// returns one diff per table whose stored columns differ. Missing tables are
// reported as added; live tables the resolver does not know are ignored.
func Verify(db Database, defs []*schema.TupleDefinition) ([]*diff.DefinitionDiff, error) {
	tables, err := db.GetAllTables()
	if err != nil {
		return nil, err
	}
	live := make(map[string]bool, len(tables))
	for _, tableName := range tables {
		live[tableName] = true
	}

	var diffs []*diff.DefinitionDiff
	for _, def := range defs {
		if !live[def.Name()] {
			diffs = append(diffs, diff.CompareStorage(nil, def))
			continue
		}

		liveDef, err := db.GetTableSchema(def.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read schema of %s: %w", def.Name(), err)
		}
		if d := diff.CompareStorage(liveDef, def); d != nil {
			diffs = append(diffs, d)
		}
	}

	logger.Verbose(fmt.Sprintf("verified %d tables, %d differ", len(defs), len(diffs)))
	return diffs, nil
}

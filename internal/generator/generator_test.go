package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/database"
	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
	"github.com/koba/wix-tuples/internal/snapshot"
)

var (
	propDefinition = schema.NewTupleDefinition("Prop",
		schema.Column{Name: "Value", Type: schema.ColumnTypeString},
		schema.Column{Name: "Hidden", Type: schema.ColumnTypeBool})
	entryDefinition = schema.NewTupleDefinition("Entry",
		schema.Column{Name: "Count", Type: schema.ColumnTypeNumber})
)

func prop(id, value string, hidden bool) *intermediate.Tuple {
	t := intermediate.NewTuple(propDefinition, nil, intermediate.NewIdentifier(intermediate.AccessPublic, id))
	t.SetString(0, value)
	t.SetBool(1, hidden)
	return t
}

func entry(count int32) *intermediate.Tuple {
	t := intermediate.NewTuple(entryDefinition, nil, nil)
	t.SetNumber(0, count)
	return t
}

func buildIntermediate(tuples ...*intermediate.Tuple) *intermediate.Intermediate {
	im := intermediate.New()
	section := intermediate.NewSection("Product", intermediate.SectionTypeProduct, 0)
	for _, t := range tuples {
		section.AddTuple(t)
	}
	im.AddSection(section)
	return im
}

func TestUnsupportedDialect(t *testing.T) {
	_, err := GenerateSQL(&diff.DiffResult{}, "oracle")
	require.ErrorIs(t, err, ErrUnsupportedDialect)

	_, err = CreateTables([]*schema.TupleDefinition{propDefinition}, "")
	require.ErrorIs(t, err, ErrUnsupportedDialect)

	_, err = InsertTuples(buildIntermediate(), "mssql")
	require.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestSQLType(t *testing.T) {
	tests := []struct {
		kind     schema.ColumnType
		mysql    string
		postgres string
	}{
		{schema.ColumnTypeString, "TEXT", "TEXT"},
		{schema.ColumnTypePath, "TEXT", "TEXT"},
		{schema.ColumnTypeNumber, "INT", "INTEGER"},
		{schema.ColumnTypeLargeNumber, "BIGINT", "BIGINT"},
		{schema.ColumnTypeBool, "TINYINT(1)", "BOOLEAN"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.mysql, sqlDialect{database.DialectMySQL}.sqlType(tt.kind))
			assert.Equal(t, tt.postgres, sqlDialect{database.DialectPostgres}.sqlType(tt.kind))

			// the type read back from the store is the stored kind
			for _, d := range []database.Dialect{database.DialectMySQL, database.DialectPostgres, database.DialectSQLite} {
				kind, err := database.ColumnTypeFromSQL(d, sqlDialect{d}.sqlType(tt.kind))
				require.NoError(t, err)
				assert.Equal(t, tt.kind.Storage(), kind, d)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	mysql := sqlDialect{database.DialectMySQL}
	postgres := sqlDialect{database.DialectPostgres}
	sqlite := sqlDialect{database.DialectSQLite}

	assert.Equal(t, "NULL", mysql.formatValue(nil))
	assert.Equal(t, "'it''s'", postgres.formatValue("it's"))
	assert.Equal(t, `'C:\\dir'`, mysql.formatValue(`C:\dir`))
	assert.Equal(t, `'C:\dir'`, sqlite.formatValue(`C:\dir`))
	assert.Equal(t, "-7", sqlite.formatValue(int32(-7)))
	assert.Equal(t, "10000000000", sqlite.formatValue(int64(10000000000)))
	assert.Equal(t, "TRUE", postgres.formatValue(true))
	assert.Equal(t, "FALSE", postgres.formatValue(false))
	assert.Equal(t, "1", mysql.formatValue(true))
	assert.Equal(t, "0", sqlite.formatValue(false))

	assert.Equal(t, "`a``b`", mysql.quoteIdentifier("a`b"))
	assert.Equal(t, `"a""b"`, sqlite.quoteIdentifier(`a"b`))
}

func TestCreateTables(t *testing.T) {
	statements, err := CreateTables([]*schema.TupleDefinition{propDefinition}, database.DialectPostgres)
	require.NoError(t, err)
	require.Equal(t, []string{
		"CREATE TABLE \"Prop\" (\n" +
			"  \"_Id\" TEXT,\n" +
			"  \"_Access\" TEXT,\n" +
			"  \"_SourceLineNumbers\" TEXT,\n" +
			"  \"_Section\" TEXT,\n" +
			"  \"Value\" TEXT,\n" +
			"  \"Hidden\" BOOLEAN\n" +
			");",
	}, statements)
}

func TestInsertTuples(t *testing.T) {
	p := intermediate.NewTuple(propDefinition,
		&intermediate.SourceLineNumber{FileName: "a.wxs", LineNumber: 4},
		intermediate.NewIdentifier(intermediate.AccessPrivate, "A"))
	p.SetString(0, "it's")
	p.SetBool(1, true)
	im := buildIntermediate(p, entry(3))

	statements, err := InsertTuples(im, database.DialectMySQL)
	require.NoError(t, err)
	require.Equal(t, []string{
		"INSERT INTO `Prop` (`_Id`, `_Access`, `_SourceLineNumbers`, `_Section`, `Value`, `Hidden`) VALUES ('A', 'private', 'a.wxs*4', 'Product', 'it''s', 1);",
		"INSERT INTO `Entry` (`_Id`, `_Access`, `_SourceLineNumbers`, `_Section`, `Count`) VALUES (NULL, NULL, NULL, 'Product', 3);",
	}, statements)
}

func TestDDLGenerate(t *testing.T) {
	oldDef := schema.NewTupleDefinition("T",
		schema.Column{Name: "A", Type: schema.ColumnTypeString},
		schema.Column{Name: "B", Type: schema.ColumnTypeNumber},
		schema.Column{Name: "C", Type: schema.ColumnTypeString})
	newDef := schema.NewTupleDefinition("T",
		schema.Column{Name: "N", Type: schema.ColumnTypeBool},
		schema.Column{Name: "A", Type: schema.ColumnTypePath},
		schema.Column{Name: "B", Type: schema.ColumnTypeLargeNumber})
	d := diff.CompareDefinitions(oldDef, newDef)
	require.NotNil(t, d)

	t.Run("mysql", func(t *testing.T) {
		assert.Equal(t, []string{
			"ALTER TABLE `T` DROP COLUMN `C`;",
			"ALTER TABLE `T` ADD COLUMN `N` TINYINT(1) AFTER `_Section`;",
			"ALTER TABLE `T` MODIFY COLUMN `A` TEXT AFTER `N`;",
			"ALTER TABLE `T` MODIFY COLUMN `B` BIGINT AFTER `A`;",
		}, NewDDLGenerator(database.DialectMySQL).Generate(d))
	})

	t.Run("postgres", func(t *testing.T) {
		assert.Equal(t, []string{
			`ALTER TABLE "T" DROP COLUMN "C";`,
			`ALTER TABLE "T" ADD COLUMN "N" BOOLEAN;`,
			`ALTER TABLE "T" ALTER COLUMN "B" TYPE BIGINT USING "B"::BIGINT;`,
		}, NewDDLGenerator(database.DialectPostgres).Generate(d))
	})

	t.Run("sqlite", func(t *testing.T) {
		assert.Equal(t, []string{
			`ALTER TABLE "T" DROP COLUMN "C";`,
			`ALTER TABLE "T" ADD COLUMN "N" BOOLEAN;`,
		}, NewDDLGenerator(database.DialectSQLite).Generate(d))
	})

	t.Run("add and drop table", func(t *testing.T) {
		g := NewDDLGenerator(database.DialectSQLite)
		assert.Equal(t, []string{`DROP TABLE "T";`}, g.Generate(diff.CompareDefinitions(oldDef, nil)))
		assert.Equal(t, []string{g.CreateTable(newDef)}, g.Generate(diff.CompareDefinitions(nil, newDef)))
	})
}

func TestDMLGenerate(t *testing.T) {
	tupleDiff := &diff.TupleDiff{
		TableName: "Prop",
		TuplesDeleted: []diff.SectionTuple{
			{SectionID: "Product", Tuple: prop("C", "3", false)},
		},
		TuplesAdded: []diff.SectionTuple{
			{SectionID: "Product", Tuple: prop("D", "4", false)},
		},
		TuplesModified: []diff.TupleModification{
			{
				Old: diff.SectionTuple{SectionID: "Product", Tuple: prop("B", "2", false)},
				New: diff.SectionTuple{SectionID: "Fragment", Tuple: prop("B", "20", false)},
			},
		},
	}

	assert.Equal(t, []string{
		`DELETE FROM "Prop" WHERE "_Id" = 'C';`,
		`INSERT INTO "Prop" ("_Id", "_Access", "_SourceLineNumbers", "_Section", "Value", "Hidden") VALUES ('D', 'public', NULL, 'Product', '4', FALSE);`,
		`UPDATE "Prop" SET "_Section" = 'Fragment', "Value" = '20' WHERE "_Id" = 'B';`,
	}, NewDMLGenerator(database.DialectPostgres).Generate(tupleDiff))

	anonymous := &diff.TupleDiff{
		TableName:     "Entry",
		TuplesDeleted: []diff.SectionTuple{{SectionID: "Product", Tuple: entry(1)}},
	}
	assert.Equal(t, []string{
		"DELETE FROM `Entry` WHERE `_Id` IS NULL AND `_Section` = 'Product' AND `Count` = 1 LIMIT 1;",
	}, NewDMLGenerator(database.DialectMySQL).Generate(anonymous))
	assert.Equal(t, []string{
		`DELETE FROM "Entry" WHERE rowid IN (SELECT rowid FROM "Entry" WHERE "_Id" IS NULL AND "_Section" = 'Product' AND "Count" = 1 LIMIT 1);`,
	}, NewDMLGenerator(database.DialectSQLite).Generate(anonymous))
}

func openSQLite(t *testing.T) database.Database {
	db, err := database.NewDatabase(database.Config{Type: database.DialectSQLite, Database: filepath.Join(t.TempDir(), "tuples.db")})
	require.NoError(t, err)
	require.NoError(t, db.Connect())
	t.Cleanup(func() { db.Close() })
	return db
}

func push(t *testing.T, db database.Database, im *intermediate.Intermediate, defs ...*schema.TupleDefinition) {
	statements, err := CreateTables(defs, db.Dialect())
	require.NoError(t, err)
	inserts, err := InsertTuples(im, db.Dialect())
	require.NoError(t, err)
	require.NoError(t, db.Exec(append(statements, inserts...)))
}

func TestMigrateSQLite(t *testing.T) {
	require := require.New(t)
	defs := []*schema.TupleDefinition{propDefinition, entryDefinition}

	oldIM := buildIntermediate(prop("A", "1", false), prop("B", "2", true), prop("C", "3", false), entry(1), entry(1), entry(2))
	newIM := buildIntermediate(prop("A", "1", false), prop("B", "20", true), prop("D", "it's", true), entry(1), entry(2), entry(3))

	db := openSQLite(t)
	push(t, db, oldIM, defs...)

	result := diff.Compare(snapshot.New(oldIM, defs), snapshot.New(newIM, defs))
	require.Empty(result.DefinitionDiffs)
	statements, err := Statements(result, db.Dialect())
	require.NoError(err)
	require.NoError(db.Exec(statements))

	pulled, err := database.Pull(db, schema.NewDefinitionSet(defs...), nil, 0)
	require.NoError(err)
	require.True(diff.Compare(snapshot.New(newIM, defs), snapshot.New(pulled, defs)).Empty())
}

func TestMigrateSQLiteDefinition(t *testing.T) {
	require := require.New(t)

	oldDef := schema.NewTupleDefinition("Prop", schema.Column{Name: "Value", Type: schema.ColumnTypeString})
	oldProp := intermediate.NewTuple(oldDef, nil, intermediate.NewIdentifier(intermediate.AccessPublic, "A"))
	oldProp.SetString(0, "1")
	oldIM := buildIntermediate(oldProp)
	newIM := buildIntermediate(prop("A", "1", true))

	db := openSQLite(t)
	push(t, db, oldIM, oldDef)

	sql, err := GenerateSQL(diff.Compare(snapshot.New(oldIM, nil), snapshot.New(newIM, nil)), db.Dialect())
	require.NoError(err)
	require.Equal(`ALTER TABLE "Prop" ADD COLUMN "Hidden" BOOLEAN;`+"\n"+
		`UPDATE "Prop" SET "Hidden" = 1 WHERE "_Id" = 'A';`, sql)
	statements, err := Statements(diff.Compare(snapshot.New(oldIM, nil), snapshot.New(newIM, nil)), db.Dialect())
	require.NoError(err)
	require.NoError(db.Exec(statements))

	def, err := db.GetTableSchema("Prop")
	require.NoError(err)
	require.True(def.Equal(propDefinition))

	diffs, err := database.Verify(db, []*schema.TupleDefinition{propDefinition})
	require.NoError(err)
	require.Empty(diffs)
}

package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

func TestParseDialect(t *testing.T) {
	require := require.New(t)

	for in, want := range map[string]Dialect{
		"mysql":      DialectMySQL,
		"MySQL":      DialectMySQL,
		"PostgreSQL": DialectPostgres,
		"postgres":   DialectPostgres,
		"sqlite3":    DialectSQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(err)
		require.Equal(want, got)
	}

	_, err := ParseDialect("oracle")
	require.ErrorIs(err, ErrUnsupportedDatabase)

	_, err = NewDatabase(Config{Type: "oracle"})
	require.ErrorIs(err, ErrUnsupportedDatabase)
}

func TestLoadConfigFromEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv("DB_TYPE", "")
	_, err := LoadConfigFromEnv()
	require.ErrorIs(err, ErrMissingConfig)

	t.Setenv("DB_TYPE", "PostgreSQL")
	t.Setenv("DB_NAME", "")
	_, err = LoadConfigFromEnv()
	require.ErrorIs(err, ErrMissingConfig)

	t.Setenv("DB_NAME", "tuples")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "wix")
	t.Setenv("DB_PASSWORD", "secret")
	config, err := LoadConfigFromEnv()
	require.NoError(err)
	require.Equal(Config{
		Type:     DialectPostgres,
		Host:     "localhost",
		Port:     "5432",
		Database: "tuples",
		User:     "wix",
		Password: "secret",
	}, config)
}

func TestColumnTypeFromSQL(t *testing.T) {
	tests := []struct {
		dialect Dialect
		sqlType string
		want    schema.ColumnType
	}{
		{DialectMySQL, "tinyint(1)", schema.ColumnTypeBool},
		{DialectMySQL, "int(11)", schema.ColumnTypeNumber},
		{DialectMySQL, "bigint(20)", schema.ColumnTypeLargeNumber},
		{DialectMySQL, "text", schema.ColumnTypeString},
		{DialectPostgres, "integer", schema.ColumnTypeNumber},
		{DialectPostgres, "boolean", schema.ColumnTypeBool},
		{DialectPostgres, "character varying", schema.ColumnTypeString},
		{DialectSQLite, "INTEGER", schema.ColumnTypeNumber},
		{DialectSQLite, "BIGINT", schema.ColumnTypeLargeNumber},
		{DialectSQLite, "BOOLEAN", schema.ColumnTypeBool},
		{DialectSQLite, "TEXT", schema.ColumnTypeString},
	}
	for _, tt := range tests {
		got, err := ColumnTypeFromSQL(tt.dialect, tt.sqlType)
		require.NoError(t, err, tt.sqlType)
		require.Equal(t, tt.want, got, tt.sqlType)
	}

	_, err := ColumnTypeFromSQL(DialectSQLite, "BLOB")
	require.ErrorIs(t, err, ErrUnknownSQLType)
}

func TestSQLite(t *testing.T) {
	require := require.New(t)

	db, err := NewDatabase(Config{Type: DialectSQLite, Database: filepath.Join(t.TempDir(), "tuples.db")})
	require.NoError(err)
	require.NoError(db.Connect())
	defer db.Close()
	require.Equal(DialectSQLite, db.Dialect())

	require.NoError(db.Exec([]string{
		`CREATE TABLE "Property" ("_Id" TEXT, "_Access" TEXT, "_SourceLineNumbers" TEXT, "_Section" TEXT, "Value" TEXT, "Order" INTEGER, "Size" BIGINT, "Hidden" BOOLEAN)`,
		`INSERT INTO "Property" ("_Id", "_Access", "_Section", "Value", "Order", "Size", "Hidden") VALUES ('A', 'public', 's', 'one', 1, 10000000000, 1)`,
		`INSERT INTO "Property" ("_Id", "_Access", "_Section", "Value") VALUES ('B', 'public', 's', 'two')`,
	}))

	tables, err := db.GetAllTables()
	require.NoError(err)
	require.Equal([]string{"Property"}, tables)

	def, err := db.GetTableSchema("Property")
	require.NoError(err)
	require.True(def.Equal(schema.NewTupleDefinition("Property",
		schema.Column{Name: "Value", Type: schema.ColumnTypeString},
		schema.Column{Name: "Order", Type: schema.ColumnTypeNumber},
		schema.Column{Name: "Size", Type: schema.ColumnTypeLargeNumber},
		schema.Column{Name: "Hidden", Type: schema.ColumnTypeBool})))

	_, err = db.GetTableSchema("Missing")
	require.ErrorIs(err, schema.ErrUnknownDefinition)

	rows, err := db.GetTableData("Property", 0)
	require.NoError(err)
	require.Len(rows, 2)
	require.Equal("A", rows[0]["_Id"])
	require.Equal("one", rows[0]["Value"])
	require.Nil(rows[1]["Order"])

	rows, err = db.GetTableData("Property", 1)
	require.NoError(err)
	require.Len(rows, 1)

	err = db.Exec([]string{
		`INSERT INTO "Property" ("_Id") VALUES ('C')`,
		`INSERT INTO "Nope" ("_Id") VALUES ('D')`,
	})
	require.Error(err)
	rows, err = db.GetTableData("Property", 0)
	require.NoError(err)
	require.Len(rows, 2, "failed batch must roll back")
}

func openSQLite(t *testing.T) Database {
	db, err := NewDatabase(Config{Type: DialectSQLite, Database: filepath.Join(t.TempDir(), "tuples.db")})
	require.NoError(t, err)
	require.NoError(t, db.Connect())
	t.Cleanup(func() { db.Close() })
	return db
}

var propDefinition = schema.NewTupleDefinition("Prop",
	schema.Column{Name: "Value", Type: schema.ColumnTypeString},
	schema.Column{Name: "Hidden", Type: schema.ColumnTypeBool})

func TestPull(t *testing.T) {
	require := require.New(t)

	db := openSQLite(t)
	require.NoError(db.Exec([]string{
		`CREATE TABLE "Prop" ("_Id" TEXT, "_Access" TEXT, "_SourceLineNumbers" TEXT, "_Section" TEXT, "Value" TEXT, "Hidden" BOOLEAN)`,
		`CREATE TABLE "Other" ("_Id" TEXT, "Data" TEXT)`,
		`INSERT INTO "Prop" VALUES ('A', 'private', 'a.wxs*2', 'S1', 'x', 1)`,
		`INSERT INTO "Prop" VALUES ('B', NULL, NULL, 'S2', NULL, 0)`,
		`INSERT INTO "Prop" VALUES ('C', 'public', NULL, 'S1', 'z', NULL)`,
		`INSERT INTO "Other" VALUES ('D', 'ignored')`,
	}))

	im, err := Pull(db, schema.NewDefinitionSet(propDefinition), nil, 0)
	require.NoError(err)
	require.NotEmpty(im.ID)
	require.Len(im.Sections, 2)

	s1 := im.Sections[0]
	require.Equal("S1", s1.ID)
	require.Equal(intermediate.SectionTypeUnknown, s1.Type)
	require.Len(s1.Tuples, 2)

	a := s1.Tuples[0]
	require.Equal(intermediate.NewIdentifier(intermediate.AccessPrivate, "A"), a.ID())
	require.Equal("a.wxs*2", a.SourceLineNumbers().String())
	require.Equal("x", a.AsString(0))
	require.True(a.AsBool(1))
	require.Equal("C", s1.Tuples[1].ID().ID)
	require.Nil(s1.Tuples[1].AsNullableBool(1))

	s2 := im.Sections[1]
	require.Equal("S2", s2.ID)
	require.Len(s2.Tuples, 1)
	require.True(s2.Tuples[0].IsNull(0))
	require.False(s2.Tuples[0].AsBool(1))
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	db := openSQLite(t)
	require.NoError(db.Exec([]string{
		`CREATE TABLE "Prop" ("_Id" TEXT, "_Access" TEXT, "_SourceLineNumbers" TEXT, "_Section" TEXT, "Value" TEXT, "Hidden" BOOLEAN)`,
		`CREATE TABLE "Files" ("_Id" TEXT, "_Access" TEXT, "_SourceLineNumbers" TEXT, "_Section" TEXT, "Source" TEXT, "Size" INTEGER)`,
	}))

	files := schema.NewTupleDefinition("Files",
		schema.Column{Name: "Source", Type: schema.ColumnTypePath},
		schema.Column{Name: "Size", Type: schema.ColumnTypeLargeNumber})
	missing := schema.NewTupleDefinition("Missing", schema.Column{Name: "Data", Type: schema.ColumnTypeString})

	diffs, err := Verify(db, []*schema.TupleDefinition{propDefinition, files, missing})
	require.NoError(err)
	require.Len(diffs, 2)

	require.Equal("Files", diffs[0].TableName)
	require.Equal(diff.ActionModify, diffs[0].Action)
	require.Len(diffs[0].ColumnChanges, 1)
	require.Equal("Size", diffs[0].ColumnChanges[0].ColumnName)

	require.Equal("Missing", diffs[1].TableName)
	require.Equal(diff.ActionAdd, diffs[1].Action)
}

func TestPullTablesAndLimit(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.Exec([]string{
		`CREATE TABLE "Prop" ("_Id" TEXT, "_Access" TEXT, "_SourceLineNumbers" TEXT, "_Section" TEXT, "Value" TEXT, "Hidden" BOOLEAN)`,
		`INSERT INTO "Prop" VALUES ('A', NULL, NULL, 'S1', 'x', 1)`,
		`INSERT INTO "Prop" VALUES ('B', NULL, NULL, 'S1', 'y', 0)`,
	}))

	im, err := Pull(db, schema.NewDefinitionSet(propDefinition), []string{"Prop"}, 1)
	require.NoError(t, err)
	require.Len(t, im.TuplesOf("Prop"), 1)

	_, err = Pull(db, schema.NewDefinitionSet(propDefinition), []string{"Prop", "Missing"}, 0)
	require.NoError(t, err, "tables without a definition are skipped")
}

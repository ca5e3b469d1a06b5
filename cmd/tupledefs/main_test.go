package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/tuples"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeIntermediate(t *testing.T, path string, value string) {
	im := intermediate.New()
	section := intermediate.NewSection("Product", intermediate.SectionTypeProduct, 1252)
	prop := tuples.NewPropertyTuple(nil, intermediate.NewIdentifier(intermediate.AccessPublic, "ARPNOMODIFY"))
	prop.SetValue(value)
	section.AddTuple(prop.Tuple)
	im.AddSection(section)
	require.NoError(t, im.SaveFile(path))
}

func TestTablesAndShow(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)
	require.Regexp(t, `\d+\s+Component\s+5\n`, out)

	out, err = execute(t, "show", "Component")
	require.NoError(t, err)
	require.Contains(t, out, "Table: Component\n")
	require.Regexp(t, `1\s+Directory_\s+String\n`, out)

	_, err = execute(t, "show", "NoSuchTable")
	require.Error(t, err)
}

func TestDDL(t *testing.T) {
	out, err := execute(t, "ddl", "--dialect", "sqlite")
	require.NoError(t, err)
	require.Contains(t, out, "CREATE TABLE \"Component\" (\n")

	_, err = execute(t, "ddl", "--dialect", "oracle")
	require.Error(t, err)
}

func TestSnapshotDiffMigrate(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	writeIntermediate(t, a, "1")
	writeIntermediate(t, b, "0")

	out, err := execute(t, "snapshot", a, "base", "--output-dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Snapshot created successfully")
	_, err = os.Stat(filepath.Join(dir, "base.db"))
	require.NoError(t, err)

	out, err = execute(t, "diff", filepath.Join(dir, "base.db"), a)
	require.NoError(t, err)
	require.Equal(t, "No differences found.\n", out)

	out, err = execute(t, "diff", a, b)
	require.NoError(t, err)
	require.Contains(t, out, "Table: Property\n  Tuples added: 0\n  Tuples deleted: 0\n  Tuples modified: 1\n")

	out, err = execute(t, "migrate", a, b, "--dialect", "postgres")
	require.NoError(t, err)
	require.Contains(t, out, `UPDATE "Property" SET "Value" = '0' WHERE "_Id" = 'ARPNOMODIFY';`)
}

func TestPushPull(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.json")
	writeIntermediate(t, input, "1")

	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_NAME", filepath.Join(dir, "tuples.sqlite"))

	_, err := execute(t, "push", input)
	require.NoError(t, err)

	_, err = execute(t, "verify")
	require.NoError(t, err)

	_, err = execute(t, "pull", output)
	require.NoError(t, err)

	out, err := execute(t, "diff", input, output)
	require.NoError(t, err)
	require.Equal(t, "No differences found.\n", out)
}

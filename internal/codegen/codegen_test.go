package codegen

import (
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/catalog"
)

const sample = `
enums:
  - name: Color
    kind: enum
    members:
      - {name: Red, value: 1}
      - {name: Green, value: 2}
  - name: Style
    kind: flags
    members:
      - {name: Bold, value: 0x1}
      - {name: Italic, value: 0x2}
tuples:
  - name: Widget
    columns:
      - {name: Parent_, type: String}
      - {name: Color, type: Number, nullable: true, enum: Color}
      - {name: Style, type: Number, flags: Style}
      - {name: Size, type: LargeNumber, nullable: true}
      - {name: Level, type: String, nullable: true, enum: Color}
      - {name: Tint, type: Number, enum: Color}
`

func generate(t *testing.T, doc string) map[string]string {
	c, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)
	files, err := NewGenerator(c).Generate()
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

func TestGenerate(t *testing.T) {
	require := require.New(t)

	files := generate(t, sample)
	require.Len(files, 5)

	widget := files["tuple_widget.go"]
	require.True(strings.HasPrefix(widget, "// Code generated by tuplegen. DO NOT EDIT."))
	require.Contains(widget, `schema.Column{Name: "Parent_", Type: schema.ColumnTypeString},`)
	require.Contains(widget, "WidgetFieldParentRef = iota")
	require.Contains(widget, "func (t *WidgetTuple) ParentRef() string {")
	require.Contains(widget, "func (t *WidgetTuple) Color() (*Color, error) {")
	require.Contains(widget, "func (t *WidgetTuple) SetSize(v *int64) {")
	require.Contains(widget, "func (t *WidgetTuple) Italic() bool {")
	require.Contains(widget, "t.Tuple.SetString(WidgetFieldLevel, (*v).String())")
	require.Contains(widget, "return 0, nullEnumError(WidgetDefinition, WidgetFieldTint)")

	require.Contains(files["enums.go"], "func ParseColor(s string) (Color, error) {")
	require.Contains(files["enums.go"], "ColorGreen Color = 2")
	require.Contains(files["flags.go"], "StyleItalic Style = 0x2")
	require.Contains(files["definitions.go"], "TypeWidget TupleDefinitionType = iota")
	require.Contains(files["fields_gen_test.go"], `require.Equal("Size", WidgetDefinition.Column(WidgetFieldSize).Name)`)
}

func TestWriteFilesRemovesStaleTables(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	stale := filepath.Join(dir, "tuple_gadget.go")
	require.NoError(os.WriteFile(stale, []byte("package tuples\n"), 0o644))
	handWritten := filepath.Join(dir, "registry.go")
	require.NoError(os.WriteFile(handWritten, []byte("package tuples\n"), 0o644))

	c, err := catalog.Parse([]byte(sample))
	require.NoError(err)
	require.NoError(NewGenerator(c).WriteFiles(dir))

	require.FileExists(filepath.Join(dir, "tuple_widget.go"))
	require.FileExists(handWritten)
	require.NoFileExists(stale)
}

func TestCheckedInFilesAreCurrent(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join("..", "tuples")
	c, err := catalog.Load(filepath.Join(dir, "catalog.yaml"))
	require.NoError(err)

	files, err := NewGenerator(c).Generate()
	require.NoError(err)
	for _, f := range files {
		current, err := os.ReadFile(filepath.Join(dir, f.Name))
		require.NoError(err, "%s is missing, run go generate ./internal/tuples", f.Name)
		require.Equal(string(f.Content), string(current), "%s is stale, run go generate ./internal/tuples", f.Name)
	}
}

// typeCheck compiles the generated files together with the hand-written
// sources of internal/tuples.
func typeCheck(t *testing.T, doc string) {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checks dependencies from source")
	}

	dir, err := filepath.Abs(filepath.Join("..", "tuples"))
	require.NoError(t, err)

	fset := token.NewFileSet()
	var files []*ast.File
	for name, src := range generate(t, doc) {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), src, 0)
		require.NoError(t, err, name)
		files = append(files, f)
	}
	for _, name := range []string{"doc.go", "errors.go", "format.go", "registry.go"} {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		require.NoError(t, err, name)
		files = append(files, f)
	}

	cgo := build.Default.CgoEnabled
	build.Default.CgoEnabled = false
	defer func() { build.Default.CgoEnabled = cgo }()

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("github.com/koba/wix-tuples/internal/tuples", fset, files, nil)
	require.NoError(t, err)
}

func TestGeneratedSampleCompiles(t *testing.T) {
	typeCheck(t, sample)
}

func TestGeneratedCatalogCompiles(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "tuples", "catalog.yaml"))
	require.NoError(t, err)
	typeCheck(t, string(data))
}

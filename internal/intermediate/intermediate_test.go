package intermediate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/schema"
)

var testDefinition = schema.NewTupleDefinition("Test",
	schema.Column{Name: "Name", Type: schema.ColumnTypeString},
	schema.Column{Name: "Count", Type: schema.ColumnTypeNumber},
	schema.Column{Name: "Size", Type: schema.ColumnTypeLargeNumber},
	schema.Column{Name: "Enabled", Type: schema.ColumnTypeBool},
	schema.Column{Name: "Source", Type: schema.ColumnTypePath},
)

func TestValueCasts(t *testing.T) {
	require := require.New(t)

	s, err := StringValue("abc").AsString()
	require.NoError(err)
	require.Equal("abc", s)

	n, err := NumberValue(5).AsNumber()
	require.NoError(err)
	require.Equal(int32(5), n)

	large, err := NumberValue(5).AsLargeNumber()
	require.NoError(err)
	require.Equal(int64(5), large)

	p, err := PathOf(PathValue{Path: `c:\a.txt`}).AsString()
	require.NoError(err)
	require.Equal(`c:\a.txt`, p)

	_, err = StringValue("5").AsNumber()
	require.ErrorIs(err, ErrInvalidCast)

	_, err = NumberValue(1).AsBool()
	require.ErrorIs(err, ErrInvalidCast)

	_, err = LargeNumberValue(1).AsNumber()
	require.ErrorIs(err, ErrInvalidCast)
}

func TestNullableCasts(t *testing.T) {
	require := require.New(t)

	n, err := Null(schema.ColumnTypeNumber).AsNullableNumber()
	require.NoError(err)
	require.Nil(n)

	b, err := Null(schema.ColumnTypeBool).AsNullableBool()
	require.NoError(err)
	require.Nil(b)

	large, err := Null(schema.ColumnTypeLargeNumber).AsNullableLargeNumber()
	require.NoError(err)
	require.Nil(large)

	zero, err := Null(schema.ColumnTypeNumber).AsNumber()
	require.NoError(err)
	require.Zero(zero)

	_, err = Null(schema.ColumnTypeString).AsNullableNumber()
	require.ErrorIs(err, ErrInvalidCast)
}

func TestTupleRoundTrip(t *testing.T) {
	require := require.New(t)

	tuple := NewTuple(testDefinition, nil, nil)
	require.Len(tuple.Fields(), testDefinition.Len())
	for i := range tuple.Fields() {
		require.True(tuple.IsNull(i))
	}

	tuple.SetString(0, "abc")
	tuple.SetNumber(1, 5)
	tuple.SetLargeNumber(2, 1<<40)
	tuple.SetBool(3, true)
	tuple.SetPath(4, PathValue{Path: "a.cab", Embed: true})

	require.Equal("abc", tuple.AsString(0))
	require.Equal(int32(5), tuple.AsNumber(1))
	require.Equal(int64(1<<40), tuple.AsLargeNumber(2))
	require.True(tuple.AsBool(3))
	require.Equal(PathValue{Path: "a.cab", Embed: true}, tuple.AsPath(4))

	tuple.SetNullableNumber(1, nil)
	require.Nil(tuple.AsNullableNumber(1))
	require.True(tuple.IsNull(1))

	tuple.SetNull(0)
	require.True(tuple.IsNull(0))
	require.Equal("", tuple.AsString(0))
}

func TestTupleEqualNil(t *testing.T) {
	require := require.New(t)

	tuple := NewTuple(testDefinition, nil, nil)
	require.False(tuple.Equal(nil))

	var missing *Tuple
	require.False(missing.Equal(tuple))
	require.True(missing.Equal(nil))
}

func TestTupleSetChecks(t *testing.T) {
	require := require.New(t)

	tuple := NewTuple(testDefinition, nil, nil)

	require.ErrorIs(tuple.Set(1, StringValue("x")), ErrInvalidCast)
	require.ErrorIs(tuple.Set(5, StringValue("x")), ErrFieldIndexOutOfRange)
	require.ErrorIs(tuple.Set(-1, StringValue("x")), ErrFieldIndexOutOfRange)
	require.NoError(tuple.Set(1, Null(schema.ColumnTypeNumber)))

	_, err := tuple.Field(5)
	require.ErrorIs(err, ErrFieldIndexOutOfRange)

	require.Panics(func() { tuple.AsNumber(0) })
	require.Panics(func() { tuple.SetBool(0, true) })
	require.Panics(func() { tuple.AsString(10) })
}

func TestSourceLineNumbers(t *testing.T) {
	require := require.New(t)

	sln := &SourceLineNumber{FileName: "product.wxs", LineNumber: 12, Parent: &SourceLineNumber{FileName: "main.wxs", LineNumber: 3}}
	require.Equal("product.wxs*12|main.wxs*3", sln.String())

	parsed, err := ParseSourceLineNumber(sln.String())
	require.NoError(err)
	require.Equal(sln, parsed)

	parsed, err = ParseSourceLineNumber("generated.wxs")
	require.NoError(err)
	require.Equal(&SourceLineNumber{FileName: "generated.wxs"}, parsed)

	parsed, err = ParseSourceLineNumber("")
	require.NoError(err)
	require.Nil(parsed)

	_, err = ParseSourceLineNumber("a.wxs*x")
	require.ErrorIs(err, ErrInvalidSourceLineNumber)

	_, err = ParseSourceLineNumber("a.wxs*1||b.wxs")
	require.ErrorIs(err, ErrInvalidSourceLineNumber)

	_, err = ParseSourceLineNumber(`a.wxs\`)
	require.ErrorIs(err, ErrInvalidSourceLineNumber)
}

func TestSourceLineNumberEscaping(t *testing.T) {
	require := require.New(t)

	sln := &SourceLineNumber{FileName: "a*b.wxs", LineNumber: 3, Parent: &SourceLineNumber{FileName: `dir|x\\main.wxs`}}
	require.Equal(`a\*b.wxs*3|dir\|x\\\\main.wxs`, sln.String())

	parsed, err := ParseSourceLineNumber(sln.String())
	require.NoError(err)
	require.Equal(sln, parsed)

	parsed, err = ParseSourceLineNumber(`C:\\src\\product.wxs*9`)
	require.NoError(err)
	require.Equal(&SourceLineNumber{FileName: `C:\src\product.wxs`, LineNumber: 9}, parsed)
}

func TestIdentifiers(t *testing.T) {
	require := require.New(t)

	a := GenerateIdentifier("cmp", "INSTALLFOLDER", "app.exe")
	b := GenerateIdentifier("cmp", "INSTALLFOLDER", "app.exe")
	c := GenerateIdentifier("cmp", "INSTALLFOLDER", "other.exe")
	require.Equal(a, b)
	require.NotEqual(a, c)
	require.Len(a, len("cmp")+32)

	access, err := ParseAccessModifier("private")
	require.NoError(err)
	require.Equal(AccessPrivate, access)

	_, err = ParseAccessModifier("secret")
	require.ErrorIs(err, ErrInvalidAccessModifier)
}

func newTestIntermediate() *Intermediate {
	im := New()
	section := NewSection("product", SectionTypeProduct, 1252)

	first := NewTuple(testDefinition, &SourceLineNumber{FileName: "a.wxs", LineNumber: 7}, NewIdentifier(AccessPublic, "first"))
	first.SetString(0, "abc")
	first.SetNumber(1, 5)
	first.SetLargeNumber(2, 9000000000)
	first.SetBool(3, false)
	first.SetPath(4, PathValue{Path: "data.bin", BaseURI: "file:///src/"})
	section.AddTuple(first)

	anonymous := NewTuple(testDefinition, nil, nil)
	anonymous.SetString(0, "")
	section.AddTuple(anonymous)

	im.AddSection(section)
	im.AddSection(NewSection("fragment", SectionTypeFragment, 0))
	return im
}

func TestSaveLoad(t *testing.T) {
	require := require.New(t)

	im := newTestIntermediate()

	var buf bytes.Buffer
	require.NoError(im.Save(&buf))

	loaded, err := Load(&buf, schema.NewDefinitionSet(testDefinition))
	require.NoError(err)
	require.Equal(im.ID, loaded.ID)
	require.Len(loaded.Sections, 2)

	section := loaded.Sections[0]
	require.Equal("product", section.ID)
	require.Equal(SectionTypeProduct, section.Type)
	require.Equal(1252, section.Codepage)
	require.Len(section.Tuples, 2)

	for i, tuple := range section.Tuples {
		require.True(im.Sections[0].Tuples[i].Equal(tuple))
	}
	require.Equal("a.wxs*7", section.Tuples[0].SourceLineNumbers().String())
	require.Nil(section.Tuples[1].ID())
	require.False(section.Tuples[1].IsNull(0))
	require.True(section.Tuples[1].IsNull(1))

	require.Equal([]string{"Test"}, loaded.TableNames())
	require.Len(loaded.TuplesOf("Test"), 2)
}

func TestDecodeTupleErrors(t *testing.T) {
	require := require.New(t)
	resolver := schema.NewDefinitionSet(testDefinition)

	_, err := DecodeTuple([]byte(`{"type":"Test","fields":["a",1,2]}`), resolver)
	require.ErrorIs(err, ErrFieldCountMismatch)

	_, err = DecodeTuple([]byte(`{"type":"Test","fields":[1,1,2,true,null]}`), resolver)
	require.ErrorIs(err, ErrInvalidCast)

	_, err = DecodeTuple([]byte(`{"type":"Test","fields":["a",3000000000,2,true,null]}`), resolver)
	require.ErrorIs(err, ErrInvalidCast)

	_, err = DecodeTuple([]byte(`{"type":"Missing","fields":[]}`), resolver)
	require.ErrorIs(err, schema.ErrUnknownDefinition)

	tuple, err := DecodeTuple([]byte(`{"type":"Test","fields":["a",1,2,true,"plain.txt"]}`), resolver)
	require.NoError(err)
	require.Equal("plain.txt", tuple.AsPath(4).Path)
}

func TestRowMapping(t *testing.T) {
	require := require.New(t)

	im := newTestIntermediate()
	source := im.Sections[0].Tuples[0]

	row := TupleToRow(source, "product")
	require.Equal("first", row[schema.IDColumn])
	require.Equal("public", row[schema.AccessColumn])
	require.Equal("a.wxs*7", row[schema.SourceLineNumbersColumn])
	require.Equal("data.bin", row["Source"])

	// values as a SQL driver hands them back
	row["Count"] = int64(5)
	row["Size"] = []byte("9000000000")
	row["Enabled"] = int64(0)
	row["Name"] = []byte("abc")

	tuple, sectionID, err := RowToTuple(testDefinition, row)
	require.NoError(err)
	require.Equal("product", sectionID)
	require.Equal("first", tuple.ID().ID)
	require.Equal("abc", tuple.AsString(0))
	require.Equal(int32(5), tuple.AsNumber(1))
	require.Equal(int64(9000000000), tuple.AsLargeNumber(2))
	require.False(tuple.AsBool(3))
	require.Equal("data.bin", tuple.AsPath(4).Path)

	row["Count"] = "many"
	_, _, err = RowToTuple(testDefinition, row)
	require.ErrorIs(err, ErrInvalidCast)

	anonymous, _, err := RowToTuple(testDefinition, schema.Row{schema.SectionColumn: "s"})
	require.NoError(err)
	require.Nil(anonymous.ID())
	require.True(anonymous.IsNull(0))
}

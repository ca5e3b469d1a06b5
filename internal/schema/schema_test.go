package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnTypeText(t *testing.T) {
	require := require.New(t)

	for _, ct := range []ColumnType{ColumnTypeString, ColumnTypeBool, ColumnTypeNumber, ColumnTypeLargeNumber, ColumnTypePath} {
		parsed, err := ParseColumnType(ct.String())
		require.NoError(err)
		require.Equal(ct, parsed)
	}

	_, err := ParseColumnType("Object")
	require.ErrorIs(err, ErrUnknownColumnType)

	require.Equal(ColumnTypeString, ColumnTypePath.Storage())
	require.Equal(ColumnTypeNumber, ColumnTypeNumber.Storage())
}

func TestTupleDefinition(t *testing.T) {
	require := require.New(t)

	columns := []Column{
		{Name: "Name", Type: ColumnTypeString},
		{Name: "Count", Type: ColumnTypeNumber},
	}
	def := NewTupleDefinition("Example", columns...)
	columns[0].Name = "Changed"

	require.Equal("Example", def.Name())
	require.Equal(2, def.Len())
	require.Equal("Name", def.Column(0).Name)

	i, ok := def.ColumnIndex("Count")
	require.True(ok)
	require.Equal(1, i)
	_, ok = def.ColumnIndex("Missing")
	require.False(ok)

	copied := def.Columns()
	copied[1].Type = ColumnTypeBool
	require.Equal(ColumnTypeNumber, def.Column(1).Type)

	require.True(def.Equal(NewTupleDefinition("Example",
		Column{Name: "Name", Type: ColumnTypeString},
		Column{Name: "Count", Type: ColumnTypeNumber})))
	require.False(def.Equal(NewTupleDefinition("Example",
		Column{Name: "Count", Type: ColumnTypeNumber},
		Column{Name: "Name", Type: ColumnTypeString})))
	require.False(def.Equal(nil))
}

func TestDefinitionJSON(t *testing.T) {
	require := require.New(t)

	def := NewTupleDefinition("Example",
		Column{Name: "Name", Type: ColumnTypeString},
		Column{Name: "Source", Type: ColumnTypePath})

	data, err := json.Marshal(def)
	require.NoError(err)
	require.JSONEq(`{"name":"Example","columns":[{"name":"Name","type":"String"},{"name":"Source","type":"Path"}]}`, string(data))

	var decoded TupleDefinition
	require.NoError(json.Unmarshal(data, &decoded))
	require.True(def.Equal(&decoded))
	i, ok := decoded.ColumnIndex("Source")
	require.True(ok)
	require.Equal(1, i)

	require.Error(json.Unmarshal([]byte(`{"name":"X","columns":[{"name":"A","type":"Blob"}]}`), &decoded))
}

func TestDefinitionSet(t *testing.T) {
	require := require.New(t)

	set := NewDefinitionSet(NewTupleDefinition("A"), NewTupleDefinition("B"))

	def, err := set.ResolveDefinition("B")
	require.NoError(err)
	require.Equal("B", def.Name())

	_, err = set.ResolveDefinition("C")
	require.ErrorIs(err, ErrUnknownDefinition)

	require.True(IsBookkeepingColumn(IDColumn))
	require.False(IsBookkeepingColumn("Name"))
}

package diff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
	"github.com/koba/wix-tuples/internal/snapshot"
)

var (
	colName    = schema.Column{Name: "Name", Type: schema.ColumnTypeString}
	colCount   = schema.Column{Name: "Count", Type: schema.ColumnTypeNumber}
	colSize    = schema.Column{Name: "Size", Type: schema.ColumnTypeLargeNumber}
	colSource  = schema.Column{Name: "Source", Type: schema.ColumnTypePath}
	colEnabled = schema.Column{Name: "Enabled", Type: schema.ColumnTypeBool}
)

func TestCompareDefinitions(t *testing.T) {
	base := schema.NewTupleDefinition("Test", colName, colCount, colSize)

	t.Run("equal", func(t *testing.T) {
		assert.Nil(t, CompareDefinitions(base, schema.NewTupleDefinition("Test", colName, colCount, colSize)))
		assert.Nil(t, CompareDefinitions(nil, nil))
	})

	t.Run("added table", func(t *testing.T) {
		d := CompareDefinitions(nil, base)
		require.NotNil(t, d)
		assert.Equal(t, ActionAdd, d.Action)
		assert.Equal(t, "Test", d.TableName)
		assert.Same(t, base, d.NewDefinition)
	})

	t.Run("dropped table", func(t *testing.T) {
		d := CompareDefinitions(base, nil)
		require.NotNil(t, d)
		assert.Equal(t, ActionDrop, d.Action)
		assert.Same(t, base, d.OldDefinition)
	})

	t.Run("added and dropped columns", func(t *testing.T) {
		d := CompareDefinitions(base, schema.NewTupleDefinition("Test", colName, colCount, colEnabled))
		require.NotNil(t, d)
		assert.Equal(t, ActionModify, d.Action)
		require.Len(t, d.ColumnChanges, 2)

		assert.Equal(t, "Size", d.ColumnChanges[0].ColumnName)
		assert.Equal(t, ActionDrop, d.ColumnChanges[0].Action)
		assert.Equal(t, 2, d.ColumnChanges[0].OldPosition)
		assert.Equal(t, -1, d.ColumnChanges[0].NewPosition)

		assert.Equal(t, "Enabled", d.ColumnChanges[1].ColumnName)
		assert.Equal(t, ActionAdd, d.ColumnChanges[1].Action)
		assert.Equal(t, 2, d.ColumnChanges[1].NewPosition)
	})

	t.Run("changed type", func(t *testing.T) {
		d := CompareDefinitions(base, schema.NewTupleDefinition("Test", colName, schema.Column{Name: "Count", Type: schema.ColumnTypeLargeNumber}, colSize))
		require.NotNil(t, d)
		require.Len(t, d.ColumnChanges, 1)
		assert.True(t, d.ColumnChanges[0].TypeChanged())
		assert.False(t, d.ColumnChanges[0].Moved())
		assert.Equal(t, schema.ColumnTypeNumber, d.ColumnChanges[0].OldColumn.Type)
	})

	t.Run("moved column", func(t *testing.T) {
		d := CompareDefinitions(base, schema.NewTupleDefinition("Test", colName, colSize, colCount))
		require.NotNil(t, d)
		require.Len(t, d.ColumnChanges, 2)

		change := d.ColumnChanges[0]
		assert.Equal(t, "Size", change.ColumnName)
		assert.Equal(t, ActionModify, change.Action)
		assert.True(t, change.Moved())
		assert.False(t, change.TypeChanged())
		assert.Equal(t, 2, change.OldPosition)
		assert.Equal(t, 1, change.NewPosition)
	})

	t.Run("path to string", func(t *testing.T) {
		oldDef := schema.NewTupleDefinition("Test", colName, colSource)
		newDef := schema.NewTupleDefinition("Test", colName, schema.Column{Name: "Source", Type: schema.ColumnTypeString})

		d := CompareDefinitions(oldDef, newDef)
		require.NotNil(t, d)
		require.Len(t, d.ColumnChanges, 1)
		assert.True(t, d.ColumnChanges[0].TypeChanged())

		assert.Nil(t, CompareStorage(oldDef, newDef))
	})
}

var (
	propertyDefinition = schema.NewTupleDefinition("Prop", schema.Column{Name: "Value", Type: schema.ColumnTypeString})
	entryDefinition    = schema.NewTupleDefinition("Entry", colCount)
)

func property(id, value string) *intermediate.Tuple {
	t := intermediate.NewTuple(propertyDefinition, nil, intermediate.NewIdentifier(intermediate.AccessPublic, id))
	t.SetString(0, value)
	return t
}

func entry(count int32) *intermediate.Tuple {
	t := intermediate.NewTuple(entryDefinition, nil, nil)
	t.SetNumber(0, count)
	return t
}

func buildSnapshot(sectionID string, tuples ...*intermediate.Tuple) *snapshot.Snapshot {
	im := intermediate.New()
	section := intermediate.NewSection(sectionID, intermediate.SectionTypeProduct, 0)
	for _, t := range tuples {
		section.AddTuple(t)
	}
	im.AddSection(section)
	return snapshot.New(im, []*schema.TupleDefinition{propertyDefinition, entryDefinition})
}

func TestCompare(t *testing.T) {
	oldSnap := buildSnapshot("Product",
		property("A", "1"), property("B", "2"), property("C", "3"),
		entry(1), entry(1), entry(2),
	)
	newSnap := buildSnapshot("Product",
		property("A", "1"), property("B", "20"), property("D", "4"),
		entry(1), entry(2), entry(3),
	)

	result := Compare(oldSnap, newSnap)
	assert.Empty(t, result.DefinitionDiffs)
	require.Len(t, result.TupleDiffs, 2)

	props := result.TupleDiffs["Prop"]
	require.NotNil(t, props)
	require.Len(t, props.TuplesAdded, 1)
	assert.Equal(t, "D", props.TuplesAdded[0].Tuple.ID().ID)
	require.Len(t, props.TuplesDeleted, 1)
	assert.Equal(t, "C", props.TuplesDeleted[0].Tuple.ID().ID)
	require.Len(t, props.TuplesModified, 1)
	assert.Equal(t, "2", props.TuplesModified[0].Old.Tuple.AsString(0))
	assert.Equal(t, "20", props.TuplesModified[0].New.Tuple.AsString(0))

	entries := result.TupleDiffs["Entry"]
	require.NotNil(t, entries)
	assert.Empty(t, entries.TuplesModified)
	require.Len(t, entries.TuplesAdded, 1)
	assert.Equal(t, int32(3), entries.TuplesAdded[0].Tuple.AsNumber(0))
	require.Len(t, entries.TuplesDeleted, 1)
	assert.Equal(t, int32(1), entries.TuplesDeleted[0].Tuple.AsNumber(0))
}

func TestCompareSectionMove(t *testing.T) {
	result := Compare(buildSnapshot("Product", property("A", "1")), buildSnapshot("Fragment", property("A", "1")))

	props := result.TupleDiffs["Prop"]
	require.NotNil(t, props)
	require.Len(t, props.TuplesModified, 1)
	assert.Equal(t, "Product", props.TuplesModified[0].Old.SectionID)
	assert.Equal(t, "Fragment", props.TuplesModified[0].New.SectionID)
}

func TestCompareDefinitionChange(t *testing.T) {
	oldSnap := buildSnapshot("Product")
	newSnap := buildSnapshot("Product")
	changed := schema.NewTupleDefinition("Prop", schema.Column{Name: "Value", Type: schema.ColumnTypeString}, colEnabled)
	newSnap.Definitions["Prop"] = changed
	newSnap.Definitions["Extra"] = schema.NewTupleDefinition("Extra", colName)
	delete(newSnap.Definitions, "Entry")

	result := Compare(oldSnap, newSnap)
	assert.Empty(t, result.TupleDiffs)
	require.Len(t, result.DefinitionDiffs, 3)
	assert.Equal(t, ActionModify, result.DefinitionDiffs["Prop"].Action)
	assert.Equal(t, ActionAdd, result.DefinitionDiffs["Extra"].Action)
	assert.Equal(t, ActionDrop, result.DefinitionDiffs["Entry"].Action)
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	Display(&buf, Compare(buildSnapshot("Product", property("A", "1")), buildSnapshot("Product", property("A", "1"))))
	assert.Equal(t, "No differences found.\n", buf.String())

	oldSnap := buildSnapshot("Product", property("A", "1"))
	newSnap := buildSnapshot("Product", property("A", "2"), property("B", "3"))
	newSnap.Definitions["Entry"] = schema.NewTupleDefinition("Entry", colName, colCount)

	buf.Reset()
	Display(&buf, Compare(oldSnap, newSnap))
	out := buf.String()
	assert.Contains(t, out, "=== Definition Differences ===")
	assert.Contains(t, out, "    - Name: ADD String at 0\n")
	assert.Contains(t, out, "    - Count: MODIFY position 0 -> 1\n")
	assert.Contains(t, out, "=== Tuple Differences ===")
	assert.Contains(t, out, "Table: Prop\n  Tuples added: 1\n  Tuples deleted: 0\n  Tuples modified: 1\n")
}

package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
	"github.com/koba/wix-tuples/internal/tuples"
)

func testIntermediate() *intermediate.Intermediate {
	im := intermediate.New()

	product := intermediate.NewSection("Product", intermediate.SectionTypeProduct, 1252)
	dir := tuples.NewDirectoryTuple(&intermediate.SourceLineNumber{FileName: "product.wxs", LineNumber: 3}, intermediate.NewIdentifier(intermediate.AccessPublic, "INSTALLFOLDER"))
	dir.SetDefaultDir("App")
	product.AddTuple(dir.Tuple)

	cmp := tuples.NewComponentTuple(nil, intermediate.NewIdentifier(intermediate.AccessPrivate, "MainComponent"))
	cmp.SetDirectoryRef("INSTALLFOLDER")
	cmp.SetAttributes(tuples.ComponentAttributesWin64)
	product.AddTuple(cmp.Tuple)
	im.AddSection(product)

	fragment := intermediate.NewSection("Fragment1", intermediate.SectionTypeFragment, 0)
	prop := tuples.NewPropertyTuple(nil, intermediate.NewIdentifier(intermediate.AccessPublic, "ARPNOMODIFY"))
	prop.SetValue("1")
	fragment.AddTuple(prop.Tuple)
	im.AddSection(fragment)

	return im
}

func TestSnapshotRoundTrip(t *testing.T) {
	require := require.New(t)

	im := testIntermediate()
	path := filepath.Join(t.TempDir(), "nested", "build.db")
	ext := schema.NewTupleDefinition("Extension", schema.Column{Name: "Data", Type: schema.ColumnTypePath})

	require.NoError(CreateSnapshot(im, []*schema.TupleDefinition{ext}, path))
	// replacing an existing snapshot
	require.NoError(CreateSnapshot(im, []*schema.TupleDefinition{ext}, path))

	snap, err := LoadSnapshot(path)
	require.NoError(err)

	require.Equal(im.ID, snap.Metadata[MetaIntermediateID])
	require.Equal("3", snap.Metadata[MetaTupleCount])
	require.Equal(intermediate.FormatVersion, snap.Metadata[MetaFormatVersion])
	require.NotEmpty(snap.Metadata[MetaCreatedAt])

	require.Len(snap.Definitions, 4)
	require.True(snap.Definitions["Component"].Equal(tuples.ComponentDefinition))
	require.True(snap.Definitions["Extension"].Equal(ext))

	loaded := snap.Intermediate
	require.Equal(im.ID, loaded.ID)
	require.Len(loaded.Sections, 2)
	for i, section := range im.Sections {
		got := loaded.Sections[i]
		require.Equal(section.ID, got.ID)
		require.Equal(section.Type, got.Type)
		require.Equal(section.Codepage, got.Codepage)
		require.Len(got.Tuples, len(section.Tuples))
		for j, tuple := range section.Tuples {
			require.True(tuple.Equal(got.Tuples[j]), "%s tuple %d", section.ID, j)
		}
	}

	cmp, err := tuples.AsComponentTuple(loaded.Sections[0].Tuples[1])
	require.NoError(err)
	require.True(cmp.Win64())
	require.Equal(intermediate.AccessPrivate, cmp.ID().Access)
	require.Equal("product.wxs*3", loaded.Sections[0].Tuples[0].SourceLineNumbers().String())
}

func TestLoadMissingSnapshot(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.db"))
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestNew(t *testing.T) {
	im := testIntermediate()
	snap := New(im, nil)

	require.Equal(t, "3", snap.Metadata[MetaTupleCount])
	require.Equal(t, im.ID, snap.Metadata[MetaIntermediateID])
	require.Len(t, snap.Definitions, 3)
	require.Contains(t, snap.Definitions, "Property")
	require.Same(t, im, snap.Intermediate)
}

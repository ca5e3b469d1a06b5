package tuples

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/catalog"
	"github.com/koba/wix-tuples/internal/schema"
)

func TestEveryTypeRegisteredOnce(t *testing.T) {
	require := require.New(t)

	types := Types()
	require.Len(All(), len(types))

	seen := make(map[string]bool)
	for _, tt := range types {
		def, err := ByType(tt)
		require.NoError(err)
		require.Equal(tt.String(), def.Name())
		require.False(seen[def.Name()], def.Name())
		seen[def.Name()] = true

		found, ok := TryGetTupleType(def.Name())
		require.True(ok)
		require.Equal(tt, found)

		byName, err := ByName(def.Name())
		require.NoError(err)
		require.Same(def, byName)
	}
}

func TestLookupFailures(t *testing.T) {
	require := require.New(t)

	_, err := ByType(TypeMustBeFromAnExtension)
	require.ErrorIs(err, ErrExtensionTupleType)

	_, err = ByType(TypeMustBeFromAnExtension + 1)
	require.ErrorIs(err, ErrUnknownTupleType)

	_, err = ByType(-1)
	require.ErrorIs(err, ErrUnknownTupleType)

	_, err = ByName("component")
	require.ErrorIs(err, ErrUnknownTupleType)

	_, ok := TryGetTupleType("NoSuchTable")
	require.False(ok)
	_, ok = TryGetTupleType("MustBeFromAnExtension")
	require.False(ok)
}

func TestConsolidatedDefinitions(t *testing.T) {
	require := require.New(t)

	def, err := ByName("UpgradedFilesOptionalData")
	require.NoError(err)
	for _, name := range []string{"AllowIgnoreOnPatchError", "IncludeWholeFile"} {
		i, ok := def.ColumnIndex(name)
		require.True(ok, name)
		require.Equal(schema.ColumnTypeBool, def.Column(i).Type)
	}

	_, err = ByName("TargetFiles_OptionalData")
	require.ErrorIs(err, ErrUnknownTupleType)
	_, err = ByName("UpgradedFiles_OptionalData")
	require.ErrorIs(err, ErrUnknownTupleType)
}

func TestDefinitionsMatchCatalog(t *testing.T) {
	require := require.New(t)

	c, err := catalog.Load("catalog.yaml")
	require.NoError(err)

	defs, err := c.Definitions()
	require.NoError(err)
	require.Len(defs, len(All()))
	for i, def := range All() {
		require.True(defs[i].Equal(def), "catalog and generated code disagree on %s", def.Name())
	}
}

func TestResolver(t *testing.T) {
	require := require.New(t)

	ext := schema.NewTupleDefinition("WixUtilExtension_XmlConfig",
		schema.Column{Name: "File", Type: schema.ColumnTypeString},
		schema.Column{Name: "Sequence", Type: schema.ColumnTypeNumber})

	r, err := NewResolver(ext)
	require.NoError(err)

	def, err := r.ResolveDefinition("WixUtilExtension_XmlConfig")
	require.NoError(err)
	require.Same(ext, def)

	def, err = r.ResolveDefinition("File")
	require.NoError(err)
	require.Same(FileDefinition, def)

	_, err = r.ResolveDefinition("Unknown")
	require.ErrorIs(err, schema.ErrUnknownDefinition)

	require.Equal([]*schema.TupleDefinition{ext}, r.Extensions())

	_, err = NewResolver(schema.NewTupleDefinition("File"))
	require.ErrorIs(err, ErrDuplicateDefinition)

	_, err = NewResolver(ext, schema.NewTupleDefinition("WixUtilExtension_XmlConfig"))
	require.ErrorIs(err, ErrDuplicateDefinition)
}

func TestFormatFlags(t *testing.T) {
	require := require.New(t)

	require.Equal("0", ComponentAttributes(0).String())
	require.Equal("Win64", ComponentAttributesWin64.String())
	require.Equal("Optional|Win64", ComponentAttributesOptional.With(ComponentAttributesWin64).String())
	require.Equal("Permanent|0x10000", (ComponentAttributesPermanent | 0x10000).String())
}

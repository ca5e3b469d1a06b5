package tuples

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/catalog"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	c, err := catalog.Load("catalog.yaml")
	require.NoError(t, err)
	return c
}

// wrap returns the typed wrapper of a fresh row of the given table
func wrap(t *testing.T, table catalog.Tuple) (*intermediate.Tuple, reflect.Value) {
	def, err := ByName(table.Name)
	require.NoError(t, err)
	row := intermediate.NewTuple(def, nil, nil)
	w, err := Wrap(row)
	require.NoError(t, err)
	return row, reflect.ValueOf(w)
}

func sampleValue(typ reflect.Type) reflect.Value {
	elem := typ
	if typ.Kind() == reflect.Ptr {
		elem = typ.Elem()
	}

	var v reflect.Value
	switch elem.Kind() {
	case reflect.String:
		v = reflect.ValueOf("abc")
	case reflect.Int32:
		v = reflect.ValueOf(int32(-5))
	case reflect.Int64:
		v = reflect.ValueOf(int64(1) << 40)
	case reflect.Bool:
		v = reflect.ValueOf(true)
	default:
		v = reflect.ValueOf(intermediate.PathValue{Path: "bin/app.exe", BaseURI: "file:///src/", Embed: true})
	}

	if typ.Kind() == reflect.Ptr {
		p := reflect.New(elem)
		p.Elem().Set(v)
		return p
	}
	return v
}

func TestExampleScenario(t *testing.T) {
	require := require.New(t)

	def := schema.NewTupleDefinition("Example",
		schema.Column{Name: "Name", Type: schema.ColumnTypeString},
		schema.Column{Name: "Count", Type: schema.ColumnTypeNumber})

	row := intermediate.NewTuple(def, nil, nil)
	row.SetString(0, "abc")
	row.SetNumber(1, 5)
	require.Equal("abc", row.AsString(0))
	require.Equal(int32(5), row.AsNumber(1))

	im := intermediate.New()
	section := intermediate.NewSection("s", intermediate.SectionTypeFragment, 0)
	section.AddTuple(row)
	im.AddSection(section)

	var buf bytes.Buffer
	require.NoError(im.Save(&buf))

	resolver, err := NewResolver(def)
	require.NoError(err)
	loaded, err := intermediate.Load(&buf, resolver)
	require.NoError(err)

	reparsed := loaded.Sections[0].Tuples[0]
	require.Equal("abc", reparsed.AsString(0))
	require.Equal(int32(5), reparsed.AsNumber(1))
	require.True(row.Equal(reparsed))
}

func TestTypedWrapper(t *testing.T) {
	require := require.New(t)

	sln := &intermediate.SourceLineNumber{FileName: "product.wxs", LineNumber: 40}
	cmp := NewComponentTuple(sln, intermediate.NewIdentifier(intermediate.AccessPublic, "MainComponent"))
	cmp.SetComponentID("{6D4F5B3C-8F2A-4E58-9C21-3F1E2B7A9D10}")
	cmp.SetDirectoryRef("INSTALLFOLDER")
	cmp.SetAttributes(ComponentAttributesWin64 | ComponentAttributesPermanent)

	require.Equal("INSTALLFOLDER", cmp.DirectoryRef())
	require.True(cmp.Win64())
	require.True(cmp.Permanent())
	require.False(cmp.Optional())
	require.Equal("MainComponent", cmp.ID().ID)
	require.Same(sln, cmp.SourceLineNumbers())

	back, err := AsComponentTuple(cmp.Tuple)
	require.NoError(err)
	require.Same(cmp.Tuple, back.Tuple)

	_, err = AsFileTuple(cmp.Tuple)
	require.ErrorIs(err, ErrDefinitionMismatch)

	ca := NewCustomActionTuple(nil, nil)
	_, err = ca.ExecutionType()
	require.ErrorIs(err, ErrInvalidEnumValue)
	require.ErrorContains(err, "CustomAction.ExecutionType is null")
	ca.SetExecutionType(CustomActionExecutionTypeDeferred)
	ca.SetTargetType(CustomActionTargetTypeVBScript)
	executionType, err := ca.ExecutionType()
	require.NoError(err)
	require.Equal(CustomActionExecutionTypeDeferred, executionType)
	require.Equal(int32(0x400), ca.Tuple.AsNumber(CustomActionFieldExecutionType))

	pkg := NewWixBundlePackageTuple(nil, nil)
	pkg.SetPerMachine(YesNoDefaultTypeYes)
	require.Equal("Yes", pkg.Tuple.AsString(WixBundlePackageFieldPerMachine))

	media := NewMediaTuple(nil, nil)
	level, err := media.CompressionLevel()
	require.NoError(err)
	require.Nil(level)
	high := CompressionLevelHigh
	media.SetCompressionLevel(&high)
	level, err = media.CompressionLevel()
	require.NoError(err)
	require.Equal(CompressionLevelHigh, *level)
}

func TestFlagSet(t *testing.T) {
	f := ComponentAttributesWin64.With(ComponentAttributesShared)
	require.True(t, f.Has(ComponentAttributesWin64))
	require.True(t, f.Has(ComponentAttributesWin64|ComponentAttributesShared))
	require.False(t, f.Has(ComponentAttributesPermanent))

	f = f.Without(ComponentAttributesWin64)
	require.False(t, f.Has(ComponentAttributesWin64))
	require.Equal(t, "Shared", f.String())
	require.Equal(t, "0", ComponentAttributes(0).String())
}

func TestWrapUnknownTable(t *testing.T) {
	row := intermediate.NewTuple(schema.NewTupleDefinition("ExtensionTable"), nil, nil)
	_, err := Wrap(row)
	require.ErrorIs(t, err, ErrUnknownTupleType)
}

func TestAccessorRoundTrip(t *testing.T) {
	for _, table := range loadCatalog(t).Tuples {
		for _, col := range table.Columns {
			if col.Enum != "" || col.Flags != "" {
				continue
			}
			row, w := wrap(t, table)
			setter := w.MethodByName(catalog.Setter(col))
			getter := w.MethodByName(col.GoName())
			require.True(t, setter.IsValid(), "%s.%s", table.Name, col.Name)
			require.True(t, getter.IsValid(), "%s.%s", table.Name, col.Name)

			in := sampleValue(setter.Type().In(0))
			setter.Call([]reflect.Value{in})
			out := getter.Call(nil)[0]
			require.Equal(t, in.Interface(), out.Interface(), "%s.%s", table.Name, col.Name)

			if col.Nullable {
				setter.Call([]reflect.Value{reflect.Zero(setter.Type().In(0))})
				require.True(t, getter.Call(nil)[0].IsNil(), "%s.%s", table.Name, col.Name)
				i, _ := row.Definition().ColumnIndex(col.Name)
				require.True(t, row.IsNull(i))
			}
		}
	}
}

func TestFlagProperties(t *testing.T) {
	c := loadCatalog(t)
	for _, table := range c.Tuples {
		for _, col := range table.Columns {
			if col.Flags == "" {
				continue
			}
			flags, ok := c.Enum(col.Flags)
			require.True(t, ok)

			_, w := wrap(t, table)
			setter := w.MethodByName(catalog.Setter(col))
			flagType := setter.Type().In(0)

			for _, m := range flags.Members {
				derived := w.MethodByName(m.Name)
				require.True(t, derived.IsValid(), "%s.%s", table.Name, m.Name)

				setter.Call([]reflect.Value{reflect.ValueOf(m.Value).Convert(flagType)})
				require.True(t, derived.Call(nil)[0].Bool(), "%s.%s set", table.Name, m.Name)

				setter.Call([]reflect.Value{reflect.ValueOf(int32(^m.Value)).Convert(flagType)})
				require.False(t, derived.Call(nil)[0].Bool(), "%s.%s cleared", table.Name, m.Name)
			}
		}
	}
}

func TestEnumProperties(t *testing.T) {
	c := loadCatalog(t)
	for _, table := range c.Tuples {
		for _, col := range table.Columns {
			if col.Enum == "" {
				continue
			}
			enum, ok := c.Enum(col.Enum)
			require.True(t, ok)

			row, w := wrap(t, table)
			setter := w.MethodByName(catalog.Setter(col))
			getter := w.MethodByName(col.GoName())
			param := setter.Type().In(0)
			elem := param
			if param.Kind() == reflect.Ptr {
				elem = param.Elem()
			}

			out := getter.Call(nil)
			if col.Nullable {
				require.True(t, out[0].IsNil(), "%s.%s", table.Name, col.Name)
				require.True(t, out[1].IsNil(), "%s.%s", table.Name, col.Name)
			} else {
				err, _ := out[1].Interface().(error)
				require.True(t, errors.Is(err, ErrInvalidEnumValue), "%s.%s read a null slot as a member", table.Name, col.Name)
			}

			for _, m := range enum.Members {
				in := reflect.ValueOf(m.Value).Convert(elem)
				if param.Kind() == reflect.Ptr {
					p := reflect.New(elem)
					p.Elem().Set(in)
					in = p
				}
				setter.Call([]reflect.Value{in})

				out := getter.Call(nil)
				require.True(t, out[1].IsNil(), "%s.%s = %s", table.Name, col.Name, m.Name)
				got := out[0]
				if got.Kind() == reflect.Ptr {
					got = got.Elem()
				}
				require.Equal(t, m.Value, got.Int(), "%s.%s = %s", table.Name, col.Name, m.Name)
			}

			i, _ := row.Definition().ColumnIndex(col.Name)
			if col.Type == "Number" {
				row.SetNumber(i, unusedValue(enum))
			} else {
				row.SetString(i, "NotAMember")
			}
			out = getter.Call(nil)
			err, _ := out[1].Interface().(error)
			require.True(t, errors.Is(err, ErrInvalidEnumValue), "%s.%s accepted an unknown value", table.Name, col.Name)
		}
	}
}

func unusedValue(e *catalog.Enum) int32 {
	used := make(map[int64]bool, len(e.Members))
	for _, m := range e.Members {
		used[m.Value] = true
	}
	v := int64(7919)
	for used[v] {
		v++
	}
	return int32(v)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koba/wix-tuples/internal/schema"
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
      - {name: Color, type: Number, enum: Color}
      - {name: Style, type: Number, flags: Style}
      - {name: Label, type: String, nullable: true}
  - name: Marker
    columns: []
`

func TestParse(t *testing.T) {
	require := require.New(t)

	c, err := Parse([]byte(sample))
	require.NoError(err)
	require.Len(c.Tuples, 2)

	e, ok := c.Enum("Style")
	require.True(ok)
	require.Equal(EnumKindFlags, e.Kind)
	require.Equal(int64(2), e.Members[1].Value)

	defs, err := c.Definitions()
	require.NoError(err)
	require.True(defs[0].Equal(schema.NewTupleDefinition("Widget",
		schema.Column{Name: "Parent_", Type: schema.ColumnTypeString},
		schema.Column{Name: "Color", Type: schema.ColumnTypeNumber},
		schema.Column{Name: "Style", Type: schema.ColumnTypeNumber},
		schema.Column{Name: "Label", Type: schema.ColumnTypeString})))
	require.Equal(0, defs[1].Len())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate table", `
tuples:
  - {name: A, columns: []}
  - {name: A, columns: []}`},
		{"duplicate column", `
tuples:
  - name: A
    columns:
      - {name: X, type: String}
      - {name: X, type: Number}`},
		{"unknown type", `
tuples:
  - name: A
    columns:
      - {name: X, type: Blob}`},
		{"undeclared enum", `
tuples:
  - name: A
    columns:
      - {name: X, type: Number, enum: Missing}`},
		{"flags on a string", `
enums:
  - {name: F, kind: flags, members: [{name: One, value: 1}]}
tuples:
  - name: A
    columns:
      - {name: X, type: String, flags: F}`},
		{"enum on a bool", `
enums:
  - {name: E, kind: enum, members: [{name: One, value: 1}]}
tuples:
  - name: A
    columns:
      - {name: X, type: Bool, enum: E}`},
		{"repeated enum value", `
enums:
  - {name: E, kind: enum, members: [{name: One, value: 1}, {name: Uno, value: 1}]}`},
		{"shadowed row method", `
tuples:
  - name: A
    columns:
      - {name: Definition, type: String}`},
		{"setter collision", `
tuples:
  - name: A
    columns:
      - {name: Name, type: String}
      - {name: SetName, type: String}`},
		{"flag bit collides with accessor", `
enums:
  - {name: F, kind: flags, members: [{name: Hidden, value: 1}]}
tuples:
  - name: A
    columns:
      - {name: Hidden, type: Bool}
      - {name: Attributes, type: Number, flags: F}`},
		{"Go name collision", `
tuples:
  - {name: _Table, columns: []}
  - {name: Table, columns: []}`},
		{"reserved column", `
tuples:
  - name: A
    columns:
      - {name: _Id, type: String}`},
		{"unknown field", `
tuples:
  - {name: A, colums: []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"Directory_":     "DirectoryRef",
		"Feature_Parent": "FeatureParent",
		"ComponentId":    "ComponentID",
		"AppId_":         "AppIDRef",
		"_Streams":       "Streams",
		"lang":           "Lang",
		"Valid":          "Valid",
	}
	for in, want := range tests {
		require.Equal(t, want, GoName(in), in)
	}

	require.Equal(t, "ValueSet", Column{Name: "Set", Go: "ValueSet"}.GoName())
	require.Equal(t, "styleNames", FlagNamesVar(Enum{Name: "Style"}))
}

func TestLoadBuiltInCatalog(t *testing.T) {
	require := require.New(t)

	c, err := Load("../tuples/catalog.yaml")
	require.NoError(err)
	require.NotEmpty(c.Tuples)

	_, err = Load("missing.yaml")
	require.Error(err)
}

package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/koba/wix-tuples/internal/schema"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// EnumKind tells a closed enumeration from a bitmask
type EnumKind string

const (
	EnumKindEnum  EnumKind = "enum"
	EnumKindFlags EnumKind = "flags"
)

// Member is one named value of an enumeration or one bit of a bitmask
type Member struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// Enum declares an enumeration or a bitmask shared by columns
type Enum struct {
	Name    string   `yaml:"name"`
	Kind    EnumKind `yaml:"kind"`
	Members []Member `yaml:"members"`
}

// Column declares one column of a table
type Column struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
	Enum     string `yaml:"enum"`
	Flags    string `yaml:"flags"`
	Go       string `yaml:"go"`
}

// Tuple declares one table
type Tuple struct {
	Name    string   `yaml:"name"`
	Go      string   `yaml:"go"`
	Columns []Column `yaml:"columns"`
}

// Catalog is the full list of built-in tables and the enumerations they use
type Catalog struct {
	Enums  []Enum  `yaml:"enums"`
	Tuples []Tuple `yaml:"tuples"`
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Enum returns the enumeration declared under name
func (c *Catalog) Enum(name string) (*Enum, bool) {
	for i := range c.Enums {
		if c.Enums[i].Name == name {
			return &c.Enums[i], true
		}
	}
	return nil, false
}

// Definitions builds the table definitions in catalog order
func (c *Catalog) Definitions() ([]*schema.TupleDefinition, error) {
	defs := make([]*schema.TupleDefinition, 0, len(c.Tuples))
	for _, t := range c.Tuples {
		columns := make([]schema.Column, 0, len(t.Columns))
		for _, col := range t.Columns {
			ct, err := col.ColumnType()
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidCatalog, t.Name, col.Name, err)
			}
			columns = append(columns, schema.Column{Name: col.Name, Type: ct})
		}
		defs = append(defs, schema.NewTupleDefinition(t.Name, columns...))
	}
	return defs, nil
}

// ColumnType parses the declared column type
func (c Column) ColumnType() (schema.ColumnType, error) {
	return schema.ParseColumnType(c.Type)
}

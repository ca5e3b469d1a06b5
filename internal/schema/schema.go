package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownColumnType = errors.New("unknown column type")
	ErrUnknownDefinition = errors.New("unknown tuple definition")
)

// ColumnType is the primitive kind stored in a column
type ColumnType int

const (
	ColumnTypeString ColumnType = iota
	ColumnTypeBool
	ColumnTypeNumber
	ColumnTypeLargeNumber
	ColumnTypePath
)

func (t ColumnType) String() string {
	switch t {
	case ColumnTypeString:
		return "String"
	case ColumnTypeBool:
		return "Bool"
	case ColumnTypeNumber:
		return "Number"
	case ColumnTypeLargeNumber:
		return "LargeNumber"
	case ColumnTypePath:
		return "Path"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// ParseColumnType parses the text form produced by String
func ParseColumnType(s string) (ColumnType, error) {
	switch s {
	case "String":
		return ColumnTypeString, nil
	case "Bool":
		return ColumnTypeBool, nil
	case "Number":
		return ColumnTypeNumber, nil
	case "LargeNumber":
		return ColumnTypeLargeNumber, nil
	case "Path":
		return ColumnTypePath, nil
	}
	return ColumnTypeString, fmt.Errorf("%w: %q", ErrUnknownColumnType, s)
}

// Storage returns the kind a relational store can tell apart.
// A path is stored as its string.
func (t ColumnType) Storage() ColumnType {
	if t == ColumnTypePath {
		return ColumnTypeString
	}
	return t
}

// MarshalText implements encoding.TextMarshaler
func (t ColumnType) MarshalText() ([]byte, error) {
	switch t {
	case ColumnTypeString, ColumnTypeBool, ColumnTypeNumber, ColumnTypeLargeNumber, ColumnTypePath:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownColumnType, int(t))
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Column represents a tuple column
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// TupleDefinition is the immutable schema of one table: its name and ordered columns
type TupleDefinition struct {
	name    string
	columns []Column
	index   map[string]int
}

// NewTupleDefinition defines a table. The column order given here is the
// positional order of every row bound to the definition.
func NewTupleDefinition(name string, columns ...Column) *TupleDefinition {
	def := &TupleDefinition{
		name:    name,
		columns: make([]Column, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(def.columns, columns)
	for i, col := range def.columns {
		def.index[col.Name] = i
	}
	return def
}

// Name returns the table name
func (d *TupleDefinition) Name() string { return d.name }

// Len returns the number of columns
func (d *TupleDefinition) Len() int { return len(d.columns) }

// Column returns the column at position i
func (d *TupleDefinition) Column(i int) Column { return d.columns[i] }

// Columns returns a copy of the ordered column list
func (d *TupleDefinition) Columns() []Column {
	columns := make([]Column, len(d.columns))
	copy(columns, d.columns)
	return columns
}

// ColumnIndex returns the position of the named column
func (d *TupleDefinition) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Equal reports whether both definitions declare the same name and columns in the same order
func (d *TupleDefinition) Equal(other *TupleDefinition) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.name != other.name || len(d.columns) != len(other.columns) {
		return false
	}
	for i := range d.columns {
		if d.columns[i] != other.columns[i] {
			return false
		}
	}
	return true
}

type definitionJSON struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// MarshalJSON encodes the definition as {"name", "columns"}
func (d *TupleDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(definitionJSON{Name: d.name, Columns: d.columns})
}

// UnmarshalJSON is the inverse of MarshalJSON
func (d *TupleDefinition) UnmarshalJSON(data []byte) error {
	var raw definitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = *NewTupleDefinition(raw.Name, raw.Columns...)
	return nil
}

// DefinitionSet maps table names to definitions
type DefinitionSet map[string]*TupleDefinition

// NewDefinitionSet indexes the given definitions by name
func NewDefinitionSet(defs ...*TupleDefinition) DefinitionSet {
	set := make(DefinitionSet, len(defs))
	for _, def := range defs {
		set[def.Name()] = def
	}
	return set
}

// ResolveDefinition returns the definition registered under name
func (s DefinitionSet) ResolveDefinition(name string) (*TupleDefinition, error) {
	if def, ok := s[name]; ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDefinition, name)
}

// Row represents a single relational row keyed by column name
type Row map[string]interface{}

// Bookkeeping columns added to every table stored relationally
const (
	IDColumn                = "_Id"
	AccessColumn            = "_Access"
	SourceLineNumbersColumn = "_SourceLineNumbers"
	SectionColumn           = "_Section"
)

// BookkeepingColumns lists the bookkeeping columns in storage order
var BookkeepingColumns = []string{IDColumn, AccessColumn, SourceLineNumbersColumn, SectionColumn}

// IsBookkeepingColumn reports whether name is one of the bookkeeping columns
func IsBookkeepingColumn(name string) bool {
	for _, col := range BookkeepingColumns {
		if col == name {
			return true
		}
	}
	return false
}

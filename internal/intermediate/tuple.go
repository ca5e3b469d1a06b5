package intermediate

import (
	"fmt"

	"github.com/koba/wix-tuples/internal/schema"
)

// Tuple is one row bound to a definition. It always holds exactly one field
// slot per definition column, and every slot holds a value of its column kind.
type Tuple struct {
	definition        *schema.TupleDefinition
	sourceLineNumbers *SourceLineNumber
	id                *Identifier
	fields            []Value
}

// NewTuple creates a row with all fields null. sln and id may be nil.
func NewTuple(def *schema.TupleDefinition, sln *SourceLineNumber, id *Identifier) *Tuple {
	t := &Tuple{
		definition:        def,
		sourceLineNumbers: sln,
		id:                id,
		fields:            make([]Value, def.Len()),
	}
	for i := range t.fields {
		t.fields[i] = Null(def.Column(i).Type)
	}
	return t
}

// Definition returns the table the row belongs to
func (t *Tuple) Definition() *schema.TupleDefinition { return t.definition }

// SourceLineNumbers returns the authored location, or nil
func (t *Tuple) SourceLineNumbers() *SourceLineNumber { return t.sourceLineNumbers }

// ID returns the row identifier, or nil for anonymous rows
func (t *Tuple) ID() *Identifier { return t.id }

func (t *Tuple) SetID(id *Identifier) { t.id = id }

// Fields returns a copy of the field slots
func (t *Tuple) Fields() []Value {
	fields := make([]Value, len(t.fields))
	copy(fields, t.fields)
	return fields
}

func (t *Tuple) checkIndex(i int) error {
	if i < 0 || i >= len(t.fields) {
		return fmt.Errorf("%w: %s has %d fields, got index %d", ErrFieldIndexOutOfRange, t.definition.Name(), len(t.fields), i)
	}
	return nil
}

// Field returns the slot at position i
func (t *Tuple) Field(i int) (Value, error) {
	if err := t.checkIndex(i); err != nil {
		return Value{}, err
	}
	return t.fields[i], nil
}

// Set writes v at position i. The value kind must match the column kind.
func (t *Tuple) Set(i int, v Value) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	col := t.definition.Column(i)
	if v.Kind() != col.Type {
		return fmt.Errorf("%w: column %s.%s is %s, got %s", ErrInvalidCast, t.definition.Name(), col.Name, col.Type, v.Kind())
	}
	t.fields[i] = v
	return nil
}

// SetNull clears the slot at position i
func (t *Tuple) SetNull(i int) {
	t.mustSet(i, Null(t.kindAt(i)))
}

// IsNull reports whether field i holds no value
func (t *Tuple) IsNull(i int) bool {
	return t.mustField(i).IsNull()
}

// Equal compares definitions, identifiers and field values; provenance is ignored
func (t *Tuple) Equal(other *Tuple) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.definition.Name() != other.definition.Name() || len(t.fields) != len(other.fields) {
		return false
	}
	if (t.id == nil) != (other.id == nil) || (t.id != nil && *t.id != *other.id) {
		return false
	}
	for i := range t.fields {
		if !t.fields[i].Equal(other.fields[i]) {
			return false
		}
	}
	return true
}

func (t *Tuple) kindAt(i int) schema.ColumnType {
	if err := t.checkIndex(i); err != nil {
		panic(err)
	}
	return t.definition.Column(i).Type
}

func (t *Tuple) mustField(i int) Value {
	v, err := t.Field(i)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Tuple) mustSet(i int, v Value) {
	if err := t.Set(i, v); err != nil {
		panic(err)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Typed accessors used by the generated wrappers. A kind mismatch or a bad
// index is a programming error and panics.

func (t *Tuple) AsString(i int) string { return must(t.mustField(i).AsString()) }

func (t *Tuple) AsNullableString(i int) *string { return must(t.mustField(i).AsNullableString()) }

func (t *Tuple) AsNumber(i int) int32 { return must(t.mustField(i).AsNumber()) }

func (t *Tuple) AsNullableNumber(i int) *int32 { return must(t.mustField(i).AsNullableNumber()) }

func (t *Tuple) AsLargeNumber(i int) int64 { return must(t.mustField(i).AsLargeNumber()) }

func (t *Tuple) AsNullableLargeNumber(i int) *int64 {
	return must(t.mustField(i).AsNullableLargeNumber())
}

func (t *Tuple) AsBool(i int) bool { return must(t.mustField(i).AsBool()) }

func (t *Tuple) AsNullableBool(i int) *bool { return must(t.mustField(i).AsNullableBool()) }

func (t *Tuple) AsPath(i int) PathValue { return must(t.mustField(i).AsPath()) }

func (t *Tuple) AsNullablePath(i int) *PathValue { return must(t.mustField(i).AsNullablePath()) }

func (t *Tuple) SetString(i int, v string) { t.mustSet(i, StringValue(v)) }

func (t *Tuple) SetNullableString(i int, v *string) {
	if v == nil {
		t.mustSet(i, Null(schema.ColumnTypeString))
		return
	}
	t.mustSet(i, StringValue(*v))
}

func (t *Tuple) SetNumber(i int, v int32) { t.mustSet(i, NumberValue(v)) }

func (t *Tuple) SetNullableNumber(i int, v *int32) {
	if v == nil {
		t.mustSet(i, Null(schema.ColumnTypeNumber))
		return
	}
	t.mustSet(i, NumberValue(*v))
}

func (t *Tuple) SetLargeNumber(i int, v int64) { t.mustSet(i, LargeNumberValue(v)) }

func (t *Tuple) SetNullableLargeNumber(i int, v *int64) {
	if v == nil {
		t.mustSet(i, Null(schema.ColumnTypeLargeNumber))
		return
	}
	t.mustSet(i, LargeNumberValue(*v))
}

func (t *Tuple) SetBool(i int, v bool) { t.mustSet(i, BoolValue(v)) }

func (t *Tuple) SetNullableBool(i int, v *bool) {
	if v == nil {
		t.mustSet(i, Null(schema.ColumnTypeBool))
		return
	}
	t.mustSet(i, BoolValue(*v))
}

func (t *Tuple) SetPath(i int, v PathValue) { t.mustSet(i, PathOf(v)) }

func (t *Tuple) SetNullablePath(i int, v *PathValue) {
	if v == nil {
		t.mustSet(i, Null(schema.ColumnTypePath))
		return
	}
	t.mustSet(i, PathOf(*v))
}

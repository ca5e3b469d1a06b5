package intermediate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/koba/wix-tuples/internal/schema"
)

// TupleToRow flattens a row for relational storage. Paths are stored as
// their path string.
func TupleToRow(t *Tuple, sectionID string) schema.Row {
	row := schema.Row{
		schema.IDColumn:                nil,
		schema.AccessColumn:            nil,
		schema.SourceLineNumbersColumn: nil,
		schema.SectionColumn:           sectionID,
	}
	if id := t.ID(); id != nil {
		row[schema.IDColumn] = id.ID
		row[schema.AccessColumn] = id.Access.String()
	}
	if sln := t.SourceLineNumbers(); sln != nil {
		row[schema.SourceLineNumbersColumn] = sln.String()
	}

	def := t.Definition()
	for i, v := range t.fields {
		var val interface{}
		if p, ok := v.Interface().(PathValue); ok {
			val = p.Path
		} else {
			val = v.Interface()
		}
		row[def.Column(i).Name] = val
	}
	return row
}

// RowToTuple rebuilds a row read back from relational storage and returns it
// with the id of the section it belongs to. Driver values are coerced to the
// column kinds; missing columns read as null.
func RowToTuple(def *schema.TupleDefinition, row schema.Row) (*Tuple, string, error) {
	var id *Identifier
	if raw, ok := textOf(row[schema.IDColumn]); ok && raw != "" {
		access := AccessPublic
		if rawAccess, ok := textOf(row[schema.AccessColumn]); ok {
			var err error
			if access, err = ParseAccessModifier(rawAccess); err != nil {
				return nil, "", err
			}
		}
		id = NewIdentifier(access, raw)
	}

	var sln *SourceLineNumber
	if raw, ok := textOf(row[schema.SourceLineNumbersColumn]); ok {
		var err error
		if sln, err = ParseSourceLineNumber(raw); err != nil {
			return nil, "", err
		}
	}

	sectionID, _ := textOf(row[schema.SectionColumn])

	t := NewTuple(def, sln, id)
	for i, col := range def.Columns() {
		v, err := coerce(row[col.Name], col.Type)
		if err != nil {
			return nil, "", fmt.Errorf("column %s.%s: %w", def.Name(), col.Name, err)
		}
		t.fields[i] = v
	}
	return t, sectionID, nil
}

func textOf(val interface{}) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

func integerOf(val interface{}, bits int) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidCast, v)
		}
		return int64(v), nil
	}
	if s, ok := textOf(val); ok {
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidCast, s)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalidCast, val)
}

func coerce(val interface{}, kind schema.ColumnType) (Value, error) {
	if val == nil {
		return Null(kind), nil
	}

	switch kind {
	case schema.ColumnTypeString:
		if s, ok := textOf(val); ok {
			return StringValue(s), nil
		}
	case schema.ColumnTypePath:
		if s, ok := textOf(val); ok {
			return PathOf(PathValue{Path: s}), nil
		}
	case schema.ColumnTypeNumber:
		n, err := integerOf(val, 32)
		if err != nil {
			return Value{}, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%w: %d overflows Number", ErrInvalidCast, n)
		}
		return NumberValue(int32(n)), nil
	case schema.ColumnTypeLargeNumber:
		n, err := integerOf(val, 64)
		if err != nil {
			return Value{}, err
		}
		return LargeNumberValue(n), nil
	case schema.ColumnTypeBool:
		switch v := val.(type) {
		case bool:
			return BoolValue(v), nil
		case int64:
			return BoolValue(v != 0), nil
		}
		if s, ok := textOf(val); ok {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q is not a Bool", ErrInvalidCast, s)
			}
			return BoolValue(b), nil
		}
	}
	return Value{}, fmt.Errorf("%w: %T read as %s", ErrInvalidCast, val, kind)
}

package intermediate

import (
	"fmt"

	"github.com/koba/wix-tuples/internal/schema"
)

// PathValue is the payload of a Path column
type PathValue struct {
	Path    string `json:"path"`
	BaseURI string `json:"baseUri,omitempty"`
	Embed   bool   `json:"embed,omitempty"`
}

// Value is one field slot: a column kind, a null flag and the payload of that kind
type Value struct {
	kind  schema.ColumnType
	valid bool
	str   string
	num   int64
	flag  bool
	path  PathValue
}

// StringValue wraps s as a String value
func StringValue(s string) Value {
	return Value{kind: schema.ColumnTypeString, valid: true, str: s}
}

// NumberValue wraps n as a Number value
func NumberValue(n int32) Value {
	return Value{kind: schema.ColumnTypeNumber, valid: true, num: int64(n)}
}

// LargeNumberValue wraps n as a LargeNumber value
func LargeNumberValue(n int64) Value {
	return Value{kind: schema.ColumnTypeLargeNumber, valid: true, num: n}
}

// BoolValue wraps b as a Bool value
func BoolValue(b bool) Value {
	return Value{kind: schema.ColumnTypeBool, valid: true, flag: b}
}

// PathOf wraps p as a Path value
func PathOf(p PathValue) Value {
	return Value{kind: schema.ColumnTypePath, valid: true, path: p}
}

// Null returns the absent value of the given kind
func Null(kind schema.ColumnType) Value {
	return Value{kind: kind}
}

// Kind returns the column type the value was built for
func (v Value) Kind() schema.ColumnType { return v.kind }

// IsNull reports whether the value is absent
func (v Value) IsNull() bool { return !v.valid }

func (v Value) castError(target schema.ColumnType) error {
	return fmt.Errorf("%w: %s value read as %s", ErrInvalidCast, v.kind, target)
}

// AsString reads a String or Path value; a path reads as its path string
// AsString reads a String value; a Path yields its path
func (v Value) AsString() (string, error) {
	switch v.kind {
	case schema.ColumnTypeString:
		return v.str, nil
	case schema.ColumnTypePath:
		return v.path.Path, nil
	}
	return "", v.castError(schema.ColumnTypeString)
}

// AsNullableString is AsString with nil for an absent value
func (v Value) AsNullableString() (*string, error) {
	s, err := v.AsString()
	if err != nil || !v.valid {
		return nil, err
	}
	return &s, nil
}

// AsNumber reads a Number value
func (v Value) AsNumber() (int32, error) {
	if v.kind != schema.ColumnTypeNumber {
		return 0, v.castError(schema.ColumnTypeNumber)
	}
	return int32(v.num), nil
}

func (v Value) AsNullableNumber() (*int32, error) {
	n, err := v.AsNumber()
	if err != nil || !v.valid {
		return nil, err
	}
	return &n, nil
}

// AsLargeNumber reads a LargeNumber value; a Number widens
func (v Value) AsLargeNumber() (int64, error) {
	if v.kind != schema.ColumnTypeLargeNumber && v.kind != schema.ColumnTypeNumber {
		return 0, v.castError(schema.ColumnTypeLargeNumber)
	}
	return v.num, nil
}

func (v Value) AsNullableLargeNumber() (*int64, error) {
	n, err := v.AsLargeNumber()
	if err != nil || !v.valid {
		return nil, err
	}
	return &n, nil
}

// AsBool reads a Bool value
func (v Value) AsBool() (bool, error) {
	if v.kind != schema.ColumnTypeBool {
		return false, v.castError(schema.ColumnTypeBool)
	}
	return v.flag, nil
}

func (v Value) AsNullableBool() (*bool, error) {
	b, err := v.AsBool()
	if err != nil || !v.valid {
		return nil, err
	}
	return &b, nil
}

// AsPath reads a Path value
func (v Value) AsPath() (PathValue, error) {
	if v.kind != schema.ColumnTypePath {
		return PathValue{}, v.castError(schema.ColumnTypePath)
	}
	return v.path, nil
}

func (v Value) AsNullablePath() (*PathValue, error) {
	p, err := v.AsPath()
	if err != nil || !v.valid {
		return nil, err
	}
	return &p, nil
}

// Interface returns nil or the native Go value: string, int32, int64, bool or PathValue
func (v Value) Interface() interface{} {
	if !v.valid {
		return nil
	}
	switch v.kind {
	case schema.ColumnTypeString:
		return v.str
	case schema.ColumnTypeNumber:
		return int32(v.num)
	case schema.ColumnTypeLargeNumber:
		return v.num
	case schema.ColumnTypeBool:
		return v.flag
	case schema.ColumnTypePath:
		return v.path
	}
	return nil
}

// Equal compares kind, nullness and payload
func (v Value) Equal(other Value) bool {
	return v == other
}

func (v Value) String() string {
	if !v.valid {
		return "<null>"
	}
	if v.kind == schema.ColumnTypePath {
		return v.path.Path
	}
	return fmt.Sprint(v.Interface())
}

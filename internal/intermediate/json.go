package intermediate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/koba/wix-tuples/internal/schema"
)

// FormatVersion is written to every saved intermediate
const FormatVersion = "4.0.0"

// DefinitionResolver finds the definition of a table by name
type DefinitionResolver interface {
	ResolveDefinition(name string) (*schema.TupleDefinition, error)
}

type tupleJSON struct {
	Type   string            `json:"type"`
	SLN    string            `json:"sln,omitempty"`
	ID     *Identifier       `json:"id,omitempty"`
	Fields []json.RawMessage `json:"fields"`
}

type sectionJSON struct {
	ID       string            `json:"id"`
	Type     SectionType       `json:"type"`
	Codepage int               `json:"codepage,omitempty"`
	Tuples   []json.RawMessage `json:"tuples"`
}

type intermediateJSON struct {
	ID       string        `json:"id"`
	Version  string        `json:"version"`
	Sections []sectionJSON `json:"sections"`
}

var jsonNull = []byte("null")

// EncodeTuple serializes a row with its table name, provenance and fields
func EncodeTuple(t *Tuple) ([]byte, error) {
	raw := tupleJSON{
		Type:   t.Definition().Name(),
		SLN:    t.SourceLineNumbers().String(),
		ID:     t.ID(),
		Fields: make([]json.RawMessage, len(t.fields)),
	}
	for i, v := range t.fields {
		data, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s field %d: %w", raw.Type, i, err)
		}
		raw.Fields[i] = data
	}
	return json.Marshal(raw)
}

func encodeValue(v Value) ([]byte, error) {
	if v.IsNull() {
		return jsonNull, nil
	}
	return json.Marshal(v.Interface())
}

// DecodeTuple parses a row produced by EncodeTuple. The field count and every
// field kind are checked against the resolved definition.
func DecodeTuple(data []byte, resolver DefinitionResolver) (*Tuple, error) {
	var raw tupleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuple: %w", err)
	}

	def, err := resolver.ResolveDefinition(raw.Type)
	if err != nil {
		return nil, err
	}
	if len(raw.Fields) != def.Len() {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrFieldCountMismatch, def.Name(), def.Len(), len(raw.Fields))
	}

	sln, err := ParseSourceLineNumber(raw.SLN)
	if err != nil {
		return nil, err
	}

	t := NewTuple(def, sln, raw.ID)
	for i, field := range raw.Fields {
		col := def.Column(i)
		v, err := decodeValue(field, col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s.%s: %w", def.Name(), col.Name, err)
		}
		t.fields[i] = v
	}
	return t, nil
}

func decodeValue(data []byte, kind schema.ColumnType) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return Null(kind), nil
	}

	switch kind {
	case schema.ColumnTypeString:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Value{}, fmt.Errorf("%w: %s is not a String", ErrInvalidCast, data)
		}
		return StringValue(s), nil
	case schema.ColumnTypeNumber:
		n, err := strconv.ParseInt(string(data), 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s is not a Number", ErrInvalidCast, data)
		}
		return NumberValue(int32(n)), nil
	case schema.ColumnTypeLargeNumber:
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s is not a LargeNumber", ErrInvalidCast, data)
		}
		return LargeNumberValue(n), nil
	case schema.ColumnTypeBool:
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return Value{}, fmt.Errorf("%w: %s is not a Bool", ErrInvalidCast, data)
		}
		return BoolValue(b), nil
	case schema.ColumnTypePath:
		var p PathValue
		if data[0] == '"' {
			if err := json.Unmarshal(data, &p.Path); err != nil {
				return Value{}, fmt.Errorf("%w: %s is not a Path", ErrInvalidCast, data)
			}
			return PathOf(p), nil
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return Value{}, fmt.Errorf("%w: %s is not a Path", ErrInvalidCast, data)
		}
		return PathOf(p), nil
	}
	return Value{}, fmt.Errorf("%w: column type %s", ErrInvalidCast, kind)
}

// Save writes the intermediate as indented JSON
func (im *Intermediate) Save(w io.Writer) error {
	raw := intermediateJSON{
		ID:       im.ID,
		Version:  FormatVersion,
		Sections: make([]sectionJSON, 0, len(im.Sections)),
	}
	for _, s := range im.Sections {
		section := sectionJSON{
			ID:       s.ID,
			Type:     s.Type,
			Codepage: s.Codepage,
			Tuples:   make([]json.RawMessage, 0, len(s.Tuples)),
		}
		for _, t := range s.Tuples {
			data, err := EncodeTuple(t)
			if err != nil {
				return err
			}
			section.Tuples = append(section.Tuples, data)
		}
		raw.Sections = append(raw.Sections, section)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("failed to write intermediate: %w", err)
	}
	return nil
}

// Load reads an intermediate written by Save
func Load(r io.Reader, resolver DefinitionResolver) (*Intermediate, error) {
	var raw intermediateJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to read intermediate: %w", err)
	}

	im := &Intermediate{ID: raw.ID}
	for _, rs := range raw.Sections {
		section := NewSection(rs.ID, rs.Type, rs.Codepage)
		for i, data := range rs.Tuples {
			t, err := DecodeTuple(data, resolver)
			if err != nil {
				return nil, fmt.Errorf("section %s, tuple %d: %w", rs.ID, i, err)
			}
			section.AddTuple(t)
		}
		im.AddSection(section)
	}
	return im, nil
}

// SaveFile writes the intermediate to path
func (im *Intermediate) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := im.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads an intermediate from path
func LoadFile(path string, resolver DefinitionResolver) (*Intermediate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, resolver)
}

package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// GoName turns a table or column name into an exported Go identifier.
// A trailing underscore marks a foreign key and becomes "Ref", other
// underscores are dropped and a trailing "Id" becomes "ID".
func GoName(name string) string {
	ref := strings.HasSuffix(name, "_")
	name = strings.ReplaceAll(strings.TrimSuffix(name, "_"), "_", "")
	if strings.HasSuffix(name, "Id") {
		name = strings.TrimSuffix(name, "Id") + "ID"
	}
	if ref {
		name += "Ref"
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// GoName returns the Go name of the table
func (t Tuple) GoName() string {
	if t.Go != "" {
		return t.Go
	}
	return GoName(t.Name)
}

// GoName returns the Go name of the column accessor
func (c Column) GoName() string {
	if c.Go != "" {
		return c.Go
	}
	return GoName(c.Name)
}

// Generated identifiers, shared with the code generator

func DefinitionVar(t Tuple) string { return t.GoName() + "Definition" }

func WrapperType(t Tuple) string { return t.GoName() + "Tuple" }

func Constructor(t Tuple) string { return "New" + t.GoName() + "Tuple" }

func Converter(t Tuple) string { return "As" + t.GoName() + "Tuple" }

func TypeConst(t Tuple) string { return "Type" + t.GoName() }

func FieldConst(t Tuple, c Column) string { return t.GoName() + "Field" + c.GoName() }

func Setter(c Column) string { return "Set" + c.GoName() }

func MemberConst(e Enum, m Member) string { return e.Name + m.Name }

func ParseFunc(e Enum) string { return "Parse" + e.Name }

func FromNumberFunc(e Enum) string { return e.Name + "FromNumber" }

func ValuesFunc(e Enum) string { return e.Name + "Values" }

func FlagNamesVar(e Enum) string {
	r, size := utf8.DecodeRuneInString(e.Name)
	return string(unicode.ToLower(r)) + e.Name[size:] + "Names"
}

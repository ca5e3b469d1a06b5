package codegen

import (
	"fmt"
	"strings"

	"github.com/koba/wix-tuples/internal/catalog"
)

type writer struct {
	strings.Builder
}

func (w *writer) line(format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}

func (g *Generator) renderTuple(t catalog.Tuple) string {
	var w writer
	w.WriteString(header)
	w.line("package %s", packageName)
	w.blank()
	w.line("import (")
	w.line("\t%q", intermediatePkg)
	w.line("\t%q", schemaPkg)
	w.line(")")
	w.blank()

	w.line("var %s = schema.NewTupleDefinition(", catalog.DefinitionVar(t))
	w.line("\t%q,", t.Name)
	for _, col := range t.Columns {
		w.line("\tschema.Column{Name: %q, Type: schema.ColumnType%s},", col.Name, col.Type)
	}
	w.line(")")
	w.blank()

	if len(t.Columns) > 0 {
		w.line("const (")
		for i, col := range t.Columns {
			if i == 0 {
				w.line("\t%s = iota", catalog.FieldConst(t, col))
			} else {
				w.line("\t%s", catalog.FieldConst(t, col))
			}
		}
		w.line(")")
		w.blank()
	}

	wrapper := catalog.WrapperType(t)
	w.line("// %s is a typed view of a %s row", wrapper, t.Name)
	w.line("type %s struct {", wrapper)
	w.line("\t*intermediate.Tuple")
	w.line("}")
	w.blank()
	w.line("func %s(sln *intermediate.SourceLineNumber, id *intermediate.Identifier) *%s {", catalog.Constructor(t), wrapper)
	w.line("\treturn &%s{Tuple: intermediate.NewTuple(%s, sln, id)}", wrapper, catalog.DefinitionVar(t))
	w.line("}")
	w.blank()
	w.line("// %s wraps a row read back from an intermediate; it fails for rows of other tables", catalog.Converter(t))
	w.line("func %s(t *intermediate.Tuple) (*%s, error) {", catalog.Converter(t), wrapper)
	w.line("\tif err := checkDefinition(t, %s); err != nil {", catalog.DefinitionVar(t))
	w.line("\t\treturn nil, err")
	w.line("\t}")
	w.line("\treturn &%s{Tuple: t}, nil", wrapper)
	w.line("}")

	for _, col := range t.Columns {
		switch {
		case col.Enum != "":
			e, _ := g.catalog.Enum(col.Enum)
			g.renderEnumAccessors(&w, t, col, *e)
		case col.Flags != "":
			e, _ := g.catalog.Enum(col.Flags)
			g.renderFlagAccessors(&w, t, col, *e)
		default:
			g.renderAccessors(&w, t, col)
		}
	}
	return w.String()
}

func helperSuffix(col catalog.Column) string {
	if col.Nullable {
		return "Nullable" + col.Type
	}
	return col.Type
}

func (g *Generator) renderAccessors(w *writer, t catalog.Tuple, col catalog.Column) {
	wrapper := catalog.WrapperType(t)
	field := catalog.FieldConst(t, col)
	typ := goType(col)
	if strings.HasPrefix(helperSuffix(col), "Nullable") {
		typ = "*" + typ
	}

	w.blank()
	w.line("func (t *%s) %s() %s {", wrapper, col.GoName(), typ)
	w.line("\treturn t.Tuple.As%s(%s)", helperSuffix(col), field)
	w.line("}")
	w.blank()
	w.line("func (t *%s) %s(v %s) {", wrapper, catalog.Setter(col), typ)
	w.line("\tt.Tuple.Set%s(%s, v)", helperSuffix(col), field)
	w.line("}")
}

func (g *Generator) renderEnumAccessors(w *writer, t catalog.Tuple, col catalog.Column, e catalog.Enum) {
	wrapper := catalog.WrapperType(t)
	field := catalog.FieldConst(t, col)
	number := col.Type == "Number"

	decode := func(raw string) string {
		if number {
			return fmt.Sprintf("%s(%s)", catalog.FromNumberFunc(e), raw)
		}
		return fmt.Sprintf("%s(%s)", catalog.ParseFunc(e), raw)
	}
	encode := func(v string) string {
		if number {
			return fmt.Sprintf("t.Tuple.SetNumber(%s, int32(%s))", field, v)
		}
		if strings.HasPrefix(v, "*") {
			v = "(" + v + ")"
		}
		return fmt.Sprintf("t.Tuple.SetString(%s, %s.String())", field, v)
	}

	w.blank()
	if !col.Nullable {
		raw := fmt.Sprintf("t.Tuple.AsString(%s)", field)
		if number {
			raw = fmt.Sprintf("t.Tuple.AsNumber(%s)", field)
		}
		w.line("func (t *%s) %s() (%s, error) {", wrapper, col.GoName(), e.Name)
		w.line("\tif t.Tuple.IsNull(%s) {", field)
		w.line("\t\treturn 0, nullEnumError(%s, %s)", catalog.DefinitionVar(t), field)
		w.line("\t}")
		w.line("\treturn %s", decode(raw))
		w.line("}")
		w.blank()
		w.line("func (t *%s) %s(v %s) {", wrapper, catalog.Setter(col), e.Name)
		w.line("\t%s", encode("v"))
		w.line("}")
		return
	}

	w.line("func (t *%s) %s() (*%s, error) {", wrapper, col.GoName(), e.Name)
	if number {
		w.line("\tn := t.Tuple.AsNullableNumber(%s)", field)
		w.line("\tif n == nil {")
		w.line("\t\treturn nil, nil")
		w.line("\t}")
		w.line("\tv, err := %s", decode("*n"))
	} else {
		w.line("\tif t.Tuple.IsNull(%s) {", field)
		w.line("\t\treturn nil, nil")
		w.line("\t}")
		w.line("\tv, err := %s", decode(fmt.Sprintf("t.Tuple.AsString(%s)", field)))
	}
	w.line("\tif err != nil {")
	w.line("\t\treturn nil, err")
	w.line("\t}")
	w.line("\treturn &v, nil")
	w.line("}")
	w.blank()
	w.line("func (t *%s) %s(v *%s) {", wrapper, catalog.Setter(col), e.Name)
	w.line("\tif v == nil {")
	w.line("\t\tt.Tuple.SetNull(%s)", field)
	w.line("\t\treturn")
	w.line("\t}")
	w.line("\t%s", encode("*v"))
	w.line("}")
}

func (g *Generator) renderFlagAccessors(w *writer, t catalog.Tuple, col catalog.Column, e catalog.Enum) {
	wrapper := catalog.WrapperType(t)
	field := catalog.FieldConst(t, col)

	w.blank()
	w.line("func (t *%s) %s() %s {", wrapper, col.GoName(), e.Name)
	w.line("\treturn %s(t.Tuple.AsNumber(%s))", e.Name, field)
	w.line("}")
	w.blank()
	w.line("func (t *%s) %s(v %s) {", wrapper, catalog.Setter(col), e.Name)
	w.line("\tt.Tuple.SetNumber(%s, int32(v))", field)
	w.line("}")
	for _, m := range e.Members {
		w.blank()
		w.line("func (t *%s) %s() bool {", wrapper, m.Name)
		w.line("\treturn t.%s().Has(%s)", col.GoName(), catalog.MemberConst(e, m))
		w.line("}")
	}
}

func (g *Generator) renderDefinitions() string {
	var w writer
	w.WriteString(header)
	w.line("package %s", packageName)
	w.blank()
	w.line("import (")
	w.line("\t\"fmt\"")
	w.blank()
	w.line("\t%q", intermediatePkg)
	w.line("\t%q", schemaPkg)
	w.line(")")
	w.blank()
	w.line("// TupleDefinitionType identifies a built-in table")
	w.line("type TupleDefinitionType int")
	w.blank()
	w.line("const (")
	for i, t := range g.catalog.Tuples {
		if i == 0 {
			w.line("\t%s TupleDefinitionType = iota", catalog.TypeConst(t))
		} else {
			w.line("\t%s", catalog.TypeConst(t))
		}
	}
	w.line("\tTypeMustBeFromAnExtension")
	w.line(")")
	w.blank()
	w.line("// String returns the table name")
	w.line("func (t TupleDefinitionType) String() string {")
	w.line("\tswitch t {")
	for _, t := range g.catalog.Tuples {
		w.line("\tcase %s:", catalog.TypeConst(t))
		w.line("\t\treturn %q", t.Name)
	}
	w.line("\tcase TypeMustBeFromAnExtension:")
	w.line("\t\treturn \"MustBeFromAnExtension\"")
	w.line("\t}")
	w.line("\treturn fmt.Sprintf(\"TupleDefinitionType(%%d)\", int(t))")
	w.line("}")
	w.blank()
	w.line("// ByType returns the definition of a built-in table")
	w.line("func ByType(t TupleDefinitionType) (*schema.TupleDefinition, error) {")
	w.line("\tswitch t {")
	for _, t := range g.catalog.Tuples {
		w.line("\tcase %s:", catalog.TypeConst(t))
		w.line("\t\treturn %s, nil", catalog.DefinitionVar(t))
	}
	w.line("\tcase TypeMustBeFromAnExtension:")
	w.line("\t\treturn nil, ErrExtensionTupleType")
	w.line("\t}")
	w.line("\treturn nil, fmt.Errorf(\"%%w: %%d\", ErrUnknownTupleType, int(t))")
	w.line("}")
	w.blank()
	w.line("// Wrap returns the typed wrapper of a built-in row")
	w.line("func Wrap(t *intermediate.Tuple) (interface{}, error) {")
	w.line("\ttt, ok := TryGetTupleType(t.Definition().Name())")
	w.line("\tif !ok {")
	w.line("\t\treturn nil, fmt.Errorf(\"%%w: %%s\", ErrUnknownTupleType, t.Definition().Name())")
	w.line("\t}")
	w.line("\tswitch tt {")
	for _, t := range g.catalog.Tuples {
		w.line("\tcase %s:", catalog.TypeConst(t))
		w.line("\t\treturn %s(t)", catalog.Converter(t))
	}
	w.line("\t}")
	w.line("\treturn nil, fmt.Errorf(\"%%w: %%s\", ErrUnknownTupleType, t.Definition().Name())")
	w.line("}")
	w.blank()
	w.line("var definitions = []*schema.TupleDefinition{")
	for _, t := range g.catalog.Tuples {
		w.line("\t%s,", catalog.DefinitionVar(t))
	}
	w.line("}")
	return w.String()
}

// constBlock writes typed constants with explicit values, aligned the way gofmt aligns them
func constBlock(w *writer, typ string, names, values []string) {
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	w.line("const (")
	for i, name := range names {
		w.line("\t%-*s %s = %s", width, name, typ, values[i])
	}
	w.line(")")
}

func (g *Generator) renderEnums() string {
	var w writer
	w.WriteString(header)
	w.line("package %s", packageName)
	w.blank()
	w.line("import \"fmt\"")

	for _, e := range g.catalog.Enums {
		if e.Kind != catalog.EnumKindEnum {
			continue
		}
		names := make([]string, len(e.Members))
		values := make([]string, len(e.Members))
		for i, m := range e.Members {
			names[i] = catalog.MemberConst(e, m)
			values[i] = fmt.Sprintf("%d", m.Value)
		}

		w.blank()
		w.line("type %s int32", e.Name)
		w.blank()
		constBlock(&w, e.Name, names, values)
		w.blank()
		w.line("func (e %s) String() string {", e.Name)
		w.line("\tswitch e {")
		for _, m := range e.Members {
			w.line("\tcase %s:", catalog.MemberConst(e, m))
			w.line("\t\treturn %q", m.Name)
		}
		w.line("\t}")
		w.line("\treturn fmt.Sprintf(\"%s(%%d)\", int32(e))", e.Name)
		w.line("}")
		w.blank()
		w.line("// %s returns the member with the given name", catalog.ParseFunc(e))
		w.line("func %s(s string) (%s, error) {", catalog.ParseFunc(e), e.Name)
		w.line("\tswitch s {")
		for _, m := range e.Members {
			w.line("\tcase %q:", m.Name)
			w.line("\t\treturn %s, nil", catalog.MemberConst(e, m))
		}
		w.line("\t}")
		w.line("\treturn 0, fmt.Errorf(\"%%w: %%q is not a %s\", ErrInvalidEnumValue, s)", e.Name)
		w.line("}")
		w.blank()
		w.line("// %s returns the member with the given value", catalog.FromNumberFunc(e))
		w.line("func %s(n int32) (%s, error) {", catalog.FromNumberFunc(e), e.Name)
		w.line("\tswitch e := %s(n); e {", e.Name)
		w.line("\tcase %s:", strings.Join(names, ", "))
		w.line("\t\treturn e, nil")
		w.line("\t}")
		w.line("\treturn 0, fmt.Errorf(\"%%w: %%d is not a %s\", ErrInvalidEnumValue, n)", e.Name)
		w.line("}")
		w.blank()
		w.line("func %s() []%s {", catalog.ValuesFunc(e), e.Name)
		w.line("\treturn []%s{", e.Name)
		for _, name := range names {
			w.line("\t\t%s,", name)
		}
		w.line("\t}")
		w.line("}")
	}
	return w.String()
}

func (g *Generator) renderFlags() string {
	var w writer
	w.WriteString(header)
	w.line("package %s", packageName)

	for _, e := range g.catalog.Enums {
		if e.Kind != catalog.EnumKindFlags {
			continue
		}
		names := make([]string, len(e.Members))
		values := make([]string, len(e.Members))
		for i, m := range e.Members {
			names[i] = catalog.MemberConst(e, m)
			values[i] = fmt.Sprintf("%#x", m.Value)
		}

		w.blank()
		w.line("type %s int32", e.Name)
		w.blank()
		constBlock(&w, e.Name, names, values)
		w.blank()
		w.line("var %s = []flagName{", catalog.FlagNamesVar(e))
		for i, m := range e.Members {
			w.line("\t{int32(%s), %q},", names[i], m.Name)
		}
		w.line("}")
		w.blank()
		w.line("func (f %s) Has(flag %s) bool {", e.Name, e.Name)
		w.line("\treturn f&flag == flag")
		w.line("}")
		w.blank()
		w.line("func (f %s) With(flag %s) %s {", e.Name, e.Name, e.Name)
		w.line("\treturn f | flag")
		w.line("}")
		w.blank()
		w.line("func (f %s) Without(flag %s) %s {", e.Name, e.Name, e.Name)
		w.line("\treturn f &^ flag")
		w.line("}")
		w.blank()
		w.line("func (f %s) String() string {", e.Name)
		w.line("\treturn formatFlags(int32(f), %s)", catalog.FlagNamesVar(e))
		w.line("}")
	}
	return w.String()
}

func (g *Generator) renderFieldsTest() string {
	var w writer
	w.WriteString(header)
	w.line("package %s", packageName)
	w.blank()
	w.line("import (")
	w.line("\t\"testing\"")
	w.blank()
	w.line("\t\"github.com/stretchr/testify/require\"")
	w.line(")")
	w.blank()
	w.line("func TestGeneratedFieldIndexes(t *testing.T) {")
	w.line("\trequire := require.New(t)")
	for _, t := range g.catalog.Tuples {
		def := catalog.DefinitionVar(t)
		w.blank()
		w.line("\trequire.Equal(%d, %s.Len())", len(t.Columns), def)
		for _, col := range t.Columns {
			w.line("\trequire.Equal(%q, %s.Column(%s).Name)", col.Name, def, catalog.FieldConst(t, col))
		}
	}
	w.line("}")
	return w.String()
}

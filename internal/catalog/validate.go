package catalog

import (
	"fmt"
	"go/token"

	"github.com/koba/wix-tuples/internal/schema"
)

// Methods promoted from the embedded row; a column accessor may not shadow them
var reservedAccessors = map[string]bool{
	"Tuple": true, "Definition": true, "SourceLineNumbers": true, "ID": true, "SetID": true,
	"Fields": true, "Field": true, "Set": true, "SetNull": true, "IsNull": true, "Equal": true,
	"AsString": true, "AsNumber": true, "AsNullableNumber": true, "AsLargeNumber": true,
	"AsNullableLargeNumber": true, "AsBool": true, "AsNullableBool": true, "AsPath": true,
	"AsNullableString": true, "AsNullablePath": true, "SetNullableString": true, "SetNullablePath": true,
	"SetString": true, "SetNumber": true, "SetNullableNumber": true, "SetLargeNumber": true,
	"SetNullableLargeNumber": true, "SetBool": true, "SetNullableBool": true, "SetPath": true,
}

// Package-level names written by hand next to the generated code
var reservedIdentifiers = map[string]bool{
	"TupleDefinitionType": true, "TypeMustBeFromAnExtension": true,
	"All": true, "Types": true, "ByType": true, "ByName": true, "TryGetTupleType": true,
	"NewResolver": true, "Resolver": true, "Wrap": true, "checkDefinition": true, "definitions": true,
	"flagName": true, "formatFlags": true, "nullEnumError": true,
	"ErrUnknownTupleType": true, "ErrExtensionTupleType": true, "ErrInvalidEnumValue": true,
	"ErrDefinitionMismatch": true, "ErrDuplicateDefinition": true,
}

type nameSet struct {
	scope string
	names map[string]string
}

func newNameSet(scope string) *nameSet {
	return &nameSet{scope: scope, names: make(map[string]string)}
}

func (s *nameSet) add(name, owner string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%w: %s: %q is not a Go identifier", ErrInvalidCatalog, owner, name)
	}
	if prev, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %s: %s %s is already used by %s", ErrInvalidCatalog, owner, s.scope, name, prev)
	}
	s.names[name] = owner
	return nil
}

// Validate checks the catalog for declarations that would not produce a
// consistent schema or compilable Go
func (c *Catalog) Validate() error {
	pkg := newNameSet("identifier")
	for name := range reservedIdentifiers {
		pkg.names[name] = "hand-written code"
	}

	if err := c.validateEnums(pkg); err != nil {
		return err
	}

	tables := make(map[string]bool, len(c.Tuples))
	for _, t := range c.Tuples {
		if t.Name == "" {
			return fmt.Errorf("%w: table without a name", ErrInvalidCatalog)
		}
		if tables[t.Name] {
			return fmt.Errorf("%w: duplicate table %s", ErrInvalidCatalog, t.Name)
		}
		tables[t.Name] = true

		for _, name := range []string{DefinitionVar(t), WrapperType(t), Constructor(t), Converter(t), TypeConst(t)} {
			if err := pkg.add(name, t.Name); err != nil {
				return err
			}
		}
		if err := c.validateColumns(t, pkg); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) validateEnums(pkg *nameSet) error {
	for _, e := range c.Enums {
		if e.Kind != EnumKindEnum && e.Kind != EnumKindFlags {
			return fmt.Errorf("%w: enum %s has unknown kind %q", ErrInvalidCatalog, e.Name, e.Kind)
		}
		if len(e.Members) == 0 {
			return fmt.Errorf("%w: enum %s has no members", ErrInvalidCatalog, e.Name)
		}

		names := []string{e.Name}
		if e.Kind == EnumKindEnum {
			names = append(names, ParseFunc(e), FromNumberFunc(e), ValuesFunc(e))
		} else {
			names = append(names, FlagNamesVar(e))
		}
		for _, name := range names {
			if err := pkg.add(name, "enum "+e.Name); err != nil {
				return err
			}
		}

		values := make(map[int64]string, len(e.Members))
		for _, m := range e.Members {
			if m.Value < -1<<31 || m.Value > 1<<31-1 {
				return fmt.Errorf("%w: %s.%s does not fit a Number", ErrInvalidCatalog, e.Name, m.Name)
			}
			if prev, ok := values[m.Value]; ok && e.Kind == EnumKindEnum {
				return fmt.Errorf("%w: %s.%s repeats the value of %s", ErrInvalidCatalog, e.Name, m.Name, prev)
			}
			values[m.Value] = m.Name
			if err := pkg.add(MemberConst(e, m), "enum "+e.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) validateColumns(t Tuple, pkg *nameSet) error {
	columns := make(map[string]bool, len(t.Columns))
	methods := newNameSet("method")
	for name := range reservedAccessors {
		methods.names[name] = "the embedded row"
	}

	for _, col := range t.Columns {
		owner := t.Name + "." + col.Name
		if columns[col.Name] {
			return fmt.Errorf("%w: duplicate column %s", ErrInvalidCatalog, owner)
		}
		columns[col.Name] = true

		ct, err := col.ColumnType()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, owner, err)
		}
		if schema.IsBookkeepingColumn(col.Name) {
			return fmt.Errorf("%w: %s uses a reserved column name", ErrInvalidCatalog, owner)
		}
		if col.Enum != "" && col.Flags != "" {
			return fmt.Errorf("%w: %s declares both enum and flags", ErrInvalidCatalog, owner)
		}

		if err := pkg.add(FieldConst(t, col), owner); err != nil {
			return err
		}
		for _, name := range []string{col.GoName(), Setter(col)} {
			if err := methods.add(name, owner); err != nil {
				return err
			}
		}

		switch {
		case col.Enum != "":
			e, ok := c.Enum(col.Enum)
			if !ok || e.Kind != EnumKindEnum {
				return fmt.Errorf("%w: %s references undeclared enum %s", ErrInvalidCatalog, owner, col.Enum)
			}
			if ct != schema.ColumnTypeNumber && ct != schema.ColumnTypeString {
				return fmt.Errorf("%w: %s is %s and cannot hold an enum", ErrInvalidCatalog, owner, ct)
			}
		case col.Flags != "":
			e, ok := c.Enum(col.Flags)
			if !ok || e.Kind != EnumKindFlags {
				return fmt.Errorf("%w: %s references undeclared flags %s", ErrInvalidCatalog, owner, col.Flags)
			}
			if ct != schema.ColumnTypeNumber {
				return fmt.Errorf("%w: %s is %s and cannot hold flags", ErrInvalidCatalog, owner, ct)
			}
			for _, m := range e.Members {
				if err := methods.add(m.Name, owner+" flag"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

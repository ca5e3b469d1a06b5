package tuples

import (
	"fmt"
	"strings"

	"github.com/koba/wix-tuples/internal/schema"
)

type flagName struct {
	bit  int32
	name string
}

// formatFlags lists the set bits by name, "|"-separated; unnamed bits are appended in hex
func formatFlags(v int32, names []flagName) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	rest := v
	for _, f := range names {
		if f.bit != 0 && v&f.bit == f.bit {
			parts = append(parts, f.name)
			rest &^= f.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// nullEnumError reports a null slot behind a non-nullable enum column
func nullEnumError(def *schema.TupleDefinition, field int) error {
	return fmt.Errorf("%w: %s.%s is null", ErrInvalidEnumValue, def.Name(), def.Column(field).Name)
}

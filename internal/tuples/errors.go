package tuples

import "errors"

var (
	ErrUnknownTupleType    = errors.New("unknown tuple definition type")
	ErrExtensionTupleType  = errors.New("tuple definition type must come from an extension")
	ErrInvalidEnumValue    = errors.New("invalid enum value")
	ErrDefinitionMismatch  = errors.New("tuple definition mismatch")
	ErrDuplicateDefinition = errors.New("duplicate tuple definition")
)

package intermediate

import "errors"

var ErrFieldIndexOutOfRange = errors.New("field index out of range")

var ErrInvalidCast = errors.New("invalid cast")

var ErrFieldCountMismatch = errors.New("field count does not match definition")

var ErrUnknownSectionType = errors.New("unknown section type")

var ErrInvalidSourceLineNumber = errors.New("invalid source line number")

var ErrInvalidAccessModifier = errors.New("invalid access modifier")

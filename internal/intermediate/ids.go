package intermediate

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

var identifierNamespace = uuid.MustParse("b63a1bd4-1a1b-4d80-9c3c-7b6c0f8e1f42")

// GenerateIdentifier derives a stable row id from the values that make the row unique.
// The same prefix and args always produce the same id.
func GenerateIdentifier(prefix string, args ...string) string {
	id := uuid.NewSHA1(identifierNamespace, []byte(strings.Join(args, "|")))
	return prefix + hex.EncodeToString(id[:])
}

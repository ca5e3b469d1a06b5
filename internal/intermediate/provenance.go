package intermediate

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceLineNumber tags a row with the place in the authored source it came from.
// Parent points at the including location, if any.
type SourceLineNumber struct {
	FileName   string
	LineNumber int
	Parent     *SourceLineNumber
}

// String encodes the chain as "file*line|parent*line"; a zero line number is omitted.
// Backslash, '|' and '*' inside a file name are escaped with a backslash.
func (s *SourceLineNumber) String() string {
	if s == nil {
		return ""
	}
	var sb strings.Builder
	for cur := s; cur != nil; cur = cur.Parent {
		if cur != s {
			sb.WriteByte('|')
		}
		sb.WriteString(slnEscaper.Replace(cur.FileName))
		if cur.LineNumber > 0 {
			sb.WriteByte('*')
			sb.WriteString(strconv.Itoa(cur.LineNumber))
		}
	}
	return sb.String()
}

var slnEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "*", `\*`)

// ParseSourceLineNumber decodes the String form. An empty string yields nil.
func ParseSourceLineNumber(s string) (*SourceLineNumber, error) {
	if s == "" {
		return nil, nil
	}

	var head, tail *SourceLineNumber
	add := func(name *strings.Builder, line string, hasLine bool) error {
		sln := &SourceLineNumber{FileName: name.String()}
		if hasLine {
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidSourceLineNumber, s)
			}
			sln.LineNumber = n
		}
		if sln.FileName == "" {
			return fmt.Errorf("%w: %q", ErrInvalidSourceLineNumber, s)
		}
		if head == nil {
			head = sln
		} else {
			tail.Parent = sln
		}
		tail = sln
		return nil
	}

	var name strings.Builder
	lineStart := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && lineStart < 0:
			if i+1 == len(s) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSourceLineNumber, s)
			}
			i++
			name.WriteByte(s[i])
		case c == '|':
			line := ""
			if lineStart >= 0 {
				line = s[lineStart:i]
			}
			if err := add(&name, line, lineStart >= 0); err != nil {
				return nil, err
			}
			name.Reset()
			lineStart = -1
		case c == '*' && lineStart < 0:
			lineStart = i + 1
		case lineStart < 0:
			name.WriteByte(c)
		}
	}
	line := ""
	if lineStart >= 0 {
		line = s[lineStart:]
	}
	if err := add(&name, line, lineStart >= 0); err != nil {
		return nil, err
	}
	return head, nil
}

// AccessModifier limits where an identifier may be referenced from
type AccessModifier int

const (
	AccessPublic AccessModifier = iota
	AccessInternal
	AccessProtected
	AccessPrivate
)

// String returns the lower-case keyword, e.g. "public"
func (a AccessModifier) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessInternal:
		return "internal"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	}
	return fmt.Sprintf("AccessModifier(%d)", int(a))
}

// ParseAccessModifier accepts the keywords produced by String
func ParseAccessModifier(s string) (AccessModifier, error) {
	switch s {
	case "public", "":
		return AccessPublic, nil
	case "internal":
		return AccessInternal, nil
	case "protected":
		return AccessProtected, nil
	case "private":
		return AccessPrivate, nil
	}
	return AccessPublic, fmt.Errorf("%w: %q", ErrInvalidAccessModifier, s)
}

// MarshalText implements encoding.TextMarshaler
func (a AccessModifier) MarshalText() ([]byte, error) {
	if a < AccessPublic || a > AccessPrivate {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAccessModifier, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AccessModifier) UnmarshalText(text []byte) error {
	parsed, err := ParseAccessModifier(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Identifier is the stable id of a row
type Identifier struct {
	Access AccessModifier `json:"access"`
	ID     string         `json:"id"`
}

// NewIdentifier returns an identifier with the given visibility
func NewIdentifier(access AccessModifier, id string) *Identifier {
	return &Identifier{Access: access, ID: id}
}

// String formats the identifier as "access:id"
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Access.String() + ":" + i.ID
}

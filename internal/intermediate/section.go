package intermediate

import (
	"fmt"

	"github.com/google/uuid"
)

// SectionType is the kind of authoring unit a section was compiled from
type SectionType int

const (
	SectionTypeUnknown SectionType = iota
	SectionTypeBundle
	SectionTypeFragment
	SectionTypeModule
	SectionTypeProduct
	SectionTypePatchCreation
	SectionTypePatch
)

func (s SectionType) String() string {
	switch s {
	case SectionTypeUnknown:
		return "unknown"
	case SectionTypeBundle:
		return "bundle"
	case SectionTypeFragment:
		return "fragment"
	case SectionTypeModule:
		return "module"
	case SectionTypeProduct:
		return "product"
	case SectionTypePatchCreation:
		return "patchCreation"
	case SectionTypePatch:
		return "patch"
	}
	return fmt.Sprintf("SectionType(%d)", int(s))
}

// ParseSectionType is the inverse of SectionType.String
func ParseSectionType(s string) (SectionType, error) {
	for t := SectionTypeUnknown; t <= SectionTypePatch; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return SectionTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownSectionType, s)
}

// MarshalText implements encoding.TextMarshaler
func (s SectionType) MarshalText() ([]byte, error) {
	if s < SectionTypeUnknown || s > SectionTypePatch {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSectionType, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SectionType) UnmarshalText(text []byte) error {
	parsed, err := ParseSectionType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Section groups the rows compiled from one authoring unit
type Section struct {
	ID       string
	Type     SectionType
	Codepage int
	Tuples   []*Tuple
}

// NewSection returns an empty section
func NewSection(id string, sectionType SectionType, codepage int) *Section {
	return &Section{ID: id, Type: sectionType, Codepage: codepage}
}

// AddTuple appends a row to the section
func (s *Section) AddTuple(t *Tuple) {
	s.Tuples = append(s.Tuples, t)
}

// TuplesOf returns the rows of the named table in section order
func (s *Section) TuplesOf(tableName string) []*Tuple {
	var tuples []*Tuple
	for _, t := range s.Tuples {
		if t.Definition().Name() == tableName {
			tuples = append(tuples, t)
		}
	}
	return tuples
}

// Intermediate is the unit persisted between compiler stages
type Intermediate struct {
	ID       string
	Sections []*Section
}

// New creates an empty intermediate with a random id
func New() *Intermediate {
	return &Intermediate{ID: uuid.NewString()}
}

// AddSection appends a section to the intermediate
func (im *Intermediate) AddSection(s *Section) {
	im.Sections = append(im.Sections, s)
}

// Section returns the section with the given id
func (im *Intermediate) Section(id string) (*Section, bool) {
	for _, s := range im.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// TuplesOf returns the rows of the named table across all sections
func (im *Intermediate) TuplesOf(tableName string) []*Tuple {
	var tuples []*Tuple
	for _, s := range im.Sections {
		tuples = append(tuples, s.TuplesOf(tableName)...)
	}
	return tuples
}

// TableNames returns the distinct table names in first-seen order
func (im *Intermediate) TableNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range im.Sections {
		for _, t := range s.Tuples {
			name := t.Definition().Name()
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

package diff

import (
	"fmt"
	"strings"

	"github.com/koba/wix-tuples/internal/intermediate"
)

// SectionTuple is a row together with the id of the section holding it
type SectionTuple struct {
	SectionID string
	Tuple     *intermediate.Tuple
}

// TupleDiff represents the row differences for a table
type TupleDiff struct {
	TableName      string
	TuplesAdded    []SectionTuple
	TuplesDeleted  []SectionTuple
	TuplesModified []TupleModification
}

// TupleModification represents a row whose identifier survived but whose values or section changed
type TupleModification struct {
	Old SectionTuple
	New SectionTuple
}

// tuplesOf returns the rows of the named table with their sections, in intermediate order
func tuplesOf(im *intermediate.Intermediate, tableName string) []SectionTuple {
	var result []SectionTuple
	if im == nil {
		return result
	}
	for _, section := range im.Sections {
		for _, t := range section.TuplesOf(tableName) {
			result = append(result, SectionTuple{SectionID: section.ID, Tuple: t})
		}
	}
	return result
}

// compareTuples matches rows by identifier; anonymous rows only match a row
// with identical content
func compareTuples(tableName string, oldTuples, newTuples []SectionTuple) *TupleDiff {
	diff := &TupleDiff{
		TableName:      tableName,
		TuplesAdded:    []SectionTuple{},
		TuplesDeleted:  []SectionTuple{},
		TuplesModified: []TupleModification{},
	}

	oldKeys, oldRows := indexTuples(oldTuples)
	newKeys, newRows := indexTuples(newTuples)

	// Find added and modified rows
	for _, key := range newKeys {
		newRow := newRows[key]
		if oldRow, exists := oldRows[key]; exists {
			if oldRow.SectionID != newRow.SectionID || !oldRow.Tuple.Equal(newRow.Tuple) {
				diff.TuplesModified = append(diff.TuplesModified, TupleModification{
					Old: oldRow,
					New: newRow,
				})
			}
		} else {
			diff.TuplesAdded = append(diff.TuplesAdded, newRow)
		}
	}

	// Find deleted rows
	for _, key := range oldKeys {
		if _, exists := newRows[key]; !exists {
			diff.TuplesDeleted = append(diff.TuplesDeleted, oldRows[key])
		}
	}

	// Return nil if no changes
	if len(diff.TuplesAdded) == 0 && len(diff.TuplesDeleted) == 0 && len(diff.TuplesModified) == 0 {
		return nil
	}

	return diff
}

// indexTuples keys every row and returns the keys in row order. Repeated keys
// get an occurrence suffix so that duplicates pair up in order.
func indexTuples(tuples []SectionTuple) ([]string, map[string]SectionTuple) {
	keys := make([]string, 0, len(tuples))
	rows := make(map[string]SectionTuple, len(tuples))
	seen := make(map[string]int)

	for _, st := range tuples {
		base := tupleKey(st)
		key := fmt.Sprintf("%s#%d", base, seen[base])
		seen[base]++

		keys = append(keys, key)
		rows[key] = st
	}
	return keys, rows
}

func tupleKey(st SectionTuple) string {
	if id := st.Tuple.ID(); id != nil {
		return "id:" + id.ID
	}

	var sb strings.Builder
	sb.WriteString("row:")
	sb.WriteString(st.SectionID)
	for _, v := range st.Tuple.Fields() {
		sb.WriteByte('\x1f')
		if v.IsNull() {
			sb.WriteString("\x00")
		} else {
			sb.WriteString(v.String())
		}
	}
	return sb.String()
}

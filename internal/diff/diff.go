package diff

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/koba/wix-tuples/internal/snapshot"
)

// DiffResult holds the complete comparison result
type DiffResult struct {
	DefinitionDiffs map[string]*DefinitionDiff
	TupleDiffs      map[string]*TupleDiff
}

// Empty reports whether no differences were found
func (r *DiffResult) Empty() bool {
	return len(r.DefinitionDiffs) == 0 && len(r.TupleDiffs) == 0
}

// Compare compares two snapshots and returns the differences
func Compare(snap1, snap2 *snapshot.Snapshot) *DiffResult {
	result := &DiffResult{
		DefinitionDiffs: make(map[string]*DefinitionDiff),
		TupleDiffs:      make(map[string]*TupleDiff),
	}

	// Find all unique table names
	tableNames := make(map[string]bool)
	for name := range snap1.Definitions {
		tableNames[name] = true
	}
	for name := range snap2.Definitions {
		tableNames[name] = true
	}
	for _, name := range snap1.Intermediate.TableNames() {
		tableNames[name] = true
	}
	for _, name := range snap2.Intermediate.TableNames() {
		tableNames[name] = true
	}

	// Compare each table
	for tableName := range tableNames {
		if definitionDiff := CompareDefinitions(snap1.Definitions[tableName], snap2.Definitions[tableName]); definitionDiff != nil {
			result.DefinitionDiffs[tableName] = definitionDiff
		}

		oldTuples := tuplesOf(snap1.Intermediate, tableName)
		newTuples := tuplesOf(snap2.Intermediate, tableName)
		if tupleDiff := compareTuples(tableName, oldTuples, newTuples); tupleDiff != nil {
			result.TupleDiffs[tableName] = tupleDiff
		}
	}

	return result
}

// Display writes the diff result in a human-readable format, tables in name order
func Display(w io.Writer, result *DiffResult) {
	if result.Empty() {
		fmt.Fprintln(w, "No differences found.")
		return
	}

	// Display definition differences
	if len(result.DefinitionDiffs) > 0 {
		fmt.Fprintln(w, "=== Definition Differences ===")
		fmt.Fprintln(w)
		for _, tableName := range sortedKeys(result.DefinitionDiffs) {
			displayDefinitionDiff(w, tableName, result.DefinitionDiffs[tableName])
		}
	}

	// Display tuple differences
	if len(result.TupleDiffs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== Tuple Differences ===")
		fmt.Fprintln(w)
		for _, tableName := range sortedKeys(result.TupleDiffs) {
			displayTupleDiff(w, tableName, result.TupleDiffs[tableName])
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func displayDefinitionDiff(w io.Writer, tableName string, diff *DefinitionDiff) {
	fmt.Fprintf(w, "Table: %s\n", tableName)

	switch diff.Action {
	case ActionAdd:
		fmt.Fprintf(w, "  Action: ADD (new table)\n")
		fmt.Fprintf(w, "  Columns: %d\n", diff.NewDefinition.Len())
	case ActionDrop:
		fmt.Fprintf(w, "  Action: DROP (removed table)\n")
	case ActionModify:
		fmt.Fprintf(w, "  Action: MODIFY\n")
		if len(diff.ColumnChanges) > 0 {
			fmt.Fprintf(w, "  Column changes:\n")
			for _, change := range diff.ColumnChanges {
				fmt.Fprintf(w, "    - %s: %s%s\n", change.ColumnName, change.Action, describeChange(change))
			}
		}
	}
	fmt.Fprintln(w)
}

func describeChange(change ColumnChange) string {
	switch change.Action {
	case ActionAdd:
		return fmt.Sprintf(" %s at %d", change.NewColumn.Type, change.NewPosition)
	case ActionDrop:
		return fmt.Sprintf(" %s at %d", change.OldColumn.Type, change.OldPosition)
	}

	desc := ""
	if change.TypeChanged() {
		desc += fmt.Sprintf(" %s -> %s", change.OldColumn.Type, change.NewColumn.Type)
	}
	if change.Moved() {
		desc += fmt.Sprintf(" position %d -> %d", change.OldPosition, change.NewPosition)
	}
	return desc
}

func displayTupleDiff(w io.Writer, tableName string, diff *TupleDiff) {
	fmt.Fprintf(w, "Table: %s\n", tableName)
	fmt.Fprintf(w, "  Tuples added: %d\n", len(diff.TuplesAdded))
	fmt.Fprintf(w, "  Tuples deleted: %d\n", len(diff.TuplesDeleted))
	fmt.Fprintf(w, "  Tuples modified: %d\n", len(diff.TuplesModified))
	fmt.Fprintln(w)
}

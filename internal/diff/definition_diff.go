package diff

import (
	"github.com/koba/wix-tuples/internal/schema"
)

// Action represents the type of change
type Action string

const (
	ActionAdd    Action = "ADD"
	ActionDrop   Action = "DROP"
	ActionModify Action = "MODIFY"
)

// DefinitionDiff represents the differences between two definitions of a table
type DefinitionDiff struct {
	TableName     string
	Action        Action
	OldDefinition *schema.TupleDefinition
	NewDefinition *schema.TupleDefinition
	ColumnChanges []ColumnChange
}

// ColumnChange represents a change to a column. Positions are -1 where the
// column does not exist.
type ColumnChange struct {
	ColumnName  string
	Action      Action
	OldColumn   *schema.Column
	NewColumn   *schema.Column
	OldPosition int
	NewPosition int
}

// TypeChanged reports whether a modified column changed its kind
func (c ColumnChange) TypeChanged() bool {
	return c.OldColumn != nil && c.NewColumn != nil && c.OldColumn.Type != c.NewColumn.Type
}

// Moved reports whether a modified column changed its position
func (c ColumnChange) Moved() bool {
	return c.Action == ActionModify && c.OldPosition != c.NewPosition
}

// CompareDefinitions compares two definitions of a table. A nil old definition
// means the table was added, a nil new one that it was dropped. It returns nil
// when both declare the same columns in the same order.
func CompareDefinitions(old, new *schema.TupleDefinition) *DefinitionDiff {
	return compareDefinitions(old, new, func(t schema.ColumnType) schema.ColumnType { return t })
}

// CompareStorage compares two definitions as a relational store sees them:
// column kinds that are stored alike compare equal.
func CompareStorage(old, new *schema.TupleDefinition) *DefinitionDiff {
	return compareDefinitions(old, new, schema.ColumnType.Storage)
}

func compareDefinitions(old, new *schema.TupleDefinition, kind func(schema.ColumnType) schema.ColumnType) *DefinitionDiff {
	switch {
	case old == nil && new == nil:
		return nil
	case old == nil:
		return &DefinitionDiff{TableName: new.Name(), Action: ActionAdd, NewDefinition: new}
	case new == nil:
		return &DefinitionDiff{TableName: old.Name(), Action: ActionDrop, OldDefinition: old}
	}

	diff := &DefinitionDiff{
		TableName:     new.Name(),
		Action:        ActionModify,
		OldDefinition: old,
		NewDefinition: new,
		ColumnChanges: []ColumnChange{},
	}

	// Find dropped columns
	for i, oldCol := range old.Columns() {
		if _, exists := new.ColumnIndex(oldCol.Name); !exists {
			col := oldCol
			diff.ColumnChanges = append(diff.ColumnChanges, ColumnChange{
				ColumnName:  col.Name,
				Action:      ActionDrop,
				OldColumn:   &col,
				OldPosition: i,
				NewPosition: -1,
			})
		}
	}

	// Find added and modified columns
	for i, newCol := range new.Columns() {
		col := newCol
		j, exists := old.ColumnIndex(newCol.Name)
		if !exists {
			diff.ColumnChanges = append(diff.ColumnChanges, ColumnChange{
				ColumnName:  col.Name,
				Action:      ActionAdd,
				NewColumn:   &col,
				OldPosition: -1,
				NewPosition: i,
			})
			continue
		}

		oldCol := old.Column(j)
		if kind(oldCol.Type) != kind(newCol.Type) || i != j {
			diff.ColumnChanges = append(diff.ColumnChanges, ColumnChange{
				ColumnName:  col.Name,
				Action:      ActionModify,
				OldColumn:   &oldCol,
				NewColumn:   &col,
				OldPosition: j,
				NewPosition: i,
			})
		}
	}

	// Return nil if no changes
	if len(diff.ColumnChanges) == 0 {
		return nil
	}

	return diff
}

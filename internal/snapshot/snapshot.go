package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/untillpro/goutils/logger"
	_ "modernc.org/sqlite"

	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
)

var ErrSnapshotNotFound = errors.New("snapshot file does not exist")

// Metadata keys
const (
	MetaCreatedAt      = "created_at"
	MetaIntermediateID = "intermediate_id"
	MetaFormatVersion  = "format_version"
	MetaTupleCount     = "tuple_count"
)

// Snapshot is an intermediate together with the definitions needed to read it
type Snapshot struct {
	Metadata     map[string]string
	Definitions  schema.DefinitionSet
	Intermediate *intermediate.Intermediate
}

// New builds an in-memory snapshot of im, holding defs and the definition
// of every table used in im
func New(im *intermediate.Intermediate, defs []*schema.TupleDefinition) *Snapshot {
	count := 0
	for _, section := range im.Sections {
		count += len(section.Tuples)
	}
	return &Snapshot{
		Metadata: map[string]string{
			MetaIntermediateID: im.ID,
			MetaFormatVersion:  intermediate.FormatVersion,
			MetaTupleCount:     strconv.Itoa(count),
		},
		Definitions:  schema.NewDefinitionSet(collectDefinitions(im, defs)...),
		Intermediate: im,
	}
}

// CreateSnapshot writes im to a SQLite file at outputPath, replacing any existing file.
// The definitions of every table in im are stored along with defs.
func CreateSnapshot(im *intermediate.Intermediate, defs []*schema.TupleDefinition, outputPath string) error {
	// Ensure output directory exists
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Remove existing snapshot file if it exists
	if _, err := os.Stat(outputPath); err == nil {
		if err := os.Remove(outputPath); err != nil {
			return fmt.Errorf("failed to remove existing snapshot: %w", err)
		}
	}

	// Create SQLite database
	snapshotDB, err := sql.Open("sqlite", outputPath)
	if err != nil {
		return fmt.Errorf("failed to create snapshot database: %w", err)
	}
	defer snapshotDB.Close()

	// Initialize schema
	if err := initializeSchema(snapshotDB); err != nil {
		return fmt.Errorf("failed to initialize snapshot schema: %w", err)
	}

	tx, err := snapshotDB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Store definitions
	stored := collectDefinitions(im, defs)
	for _, def := range stored {
		definitionJSON, err := json.Marshal(def)
		if err != nil {
			return fmt.Errorf("failed to marshal definition %s: %w", def.Name(), err)
		}
		if _, err := tx.Exec("INSERT INTO tuple_definitions (table_name, definition_json) VALUES (?, ?)", def.Name(), string(definitionJSON)); err != nil {
			return fmt.Errorf("failed to insert definition %s: %w", def.Name(), err)
		}
	}

	// Store sections and tuples
	count := 0
	for position, section := range im.Sections {
		n, err := snapshotSection(tx, position, section)
		if err != nil {
			return fmt.Errorf("failed to snapshot section %s: %w", section.ID, err)
		}
		count += n
	}

	// Store metadata
	metadata := map[string]string{
		MetaCreatedAt:      time.Now().Format(time.RFC3339),
		MetaIntermediateID: im.ID,
		MetaFormatVersion:  intermediate.FormatVersion,
		MetaTupleCount:     strconv.Itoa(count),
	}
	for key, value := range metadata {
		if _, err := tx.Exec("INSERT INTO metadata (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to insert metadata: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Verbose(fmt.Sprintf("snapshot %s: %d definitions, %d sections, %d tuples", outputPath, len(stored), len(im.Sections), count))
	return nil
}

// collectDefinitions returns defs followed by the definitions of tables used in im, each name once
func collectDefinitions(im *intermediate.Intermediate, defs []*schema.TupleDefinition) []*schema.TupleDefinition {
	seen := make(map[string]bool)
	var result []*schema.TupleDefinition
	add := func(def *schema.TupleDefinition) {
		if !seen[def.Name()] {
			seen[def.Name()] = true
			result = append(result, def)
		}
	}

	for _, def := range defs {
		add(def)
	}
	for _, section := range im.Sections {
		for _, t := range section.Tuples {
			add(t.Definition())
		}
	}
	return result
}

func snapshotSection(tx *sql.Tx, position int, section *intermediate.Section) (int, error) {
	_, err := tx.Exec(
		"INSERT INTO sections (position, section_id, section_type, codepage) VALUES (?, ?, ?, ?)",
		position, section.ID, section.Type.String(), section.Codepage,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert section: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO tuple_data (section_position, table_name, tuple_json) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, t := range section.Tuples {
		tupleJSON, err := intermediate.EncodeTuple(t)
		if err != nil {
			return 0, err
		}

		if _, err := stmt.Exec(position, t.Definition().Name(), string(tupleJSON)); err != nil {
			return 0, fmt.Errorf("failed to insert tuple: %w", err)
		}
	}

	return len(section.Tuples), nil
}

// LoadSnapshot loads a snapshot from a SQLite file. Tuples are decoded with
// the definitions stored in the file.
func LoadSnapshot(snapshotPath string) (*Snapshot, error) {
	// Check if file exists
	if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, snapshotPath)
	}

	// Open SQLite database
	db, err := sql.Open("sqlite", snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer db.Close()

	snapshot := &Snapshot{
		Metadata:    make(map[string]string),
		Definitions: make(schema.DefinitionSet),
	}

	// Load metadata
	if err := loadMetadata(db, snapshot); err != nil {
		return nil, err
	}

	// Load definitions
	if err := loadDefinitions(db, snapshot); err != nil {
		return nil, err
	}

	// Load sections and tuples
	im, err := loadIntermediate(db, snapshot.Definitions)
	if err != nil {
		return nil, err
	}
	im.ID = snapshot.Metadata[MetaIntermediateID]
	snapshot.Intermediate = im

	return snapshot, nil
}

func loadMetadata(db *sql.DB, snapshot *Snapshot) error {
	rows, err := db.Query("SELECT key, value FROM metadata")
	if err != nil {
		return fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan metadata: %w", err)
		}
		snapshot.Metadata[key] = value
	}
	return rows.Err()
}

func loadDefinitions(db *sql.DB, snapshot *Snapshot) error {
	rows, err := db.Query("SELECT definition_json FROM tuple_definitions")
	if err != nil {
		return fmt.Errorf("failed to query tuple definitions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var definitionJSON string
		if err := rows.Scan(&definitionJSON); err != nil {
			return fmt.Errorf("failed to scan tuple definition: %w", err)
		}

		def := &schema.TupleDefinition{}
		if err := json.Unmarshal([]byte(definitionJSON), def); err != nil {
			return fmt.Errorf("failed to unmarshal definition: %w", err)
		}
		snapshot.Definitions[def.Name()] = def
	}
	return rows.Err()
}

func loadIntermediate(db *sql.DB, resolver intermediate.DefinitionResolver) (*intermediate.Intermediate, error) {
	im := &intermediate.Intermediate{}

	sectionRows, err := db.Query("SELECT section_id, section_type, codepage FROM sections ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var id, rawType string
		var codepage int
		if err := sectionRows.Scan(&id, &rawType, &codepage); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sectionType, err := intermediate.ParseSectionType(rawType)
		if err != nil {
			return nil, err
		}
		im.AddSection(intermediate.NewSection(id, sectionType, codepage))
	}
	if err := sectionRows.Err(); err != nil {
		return nil, err
	}

	dataRows, err := db.Query("SELECT section_position, tuple_json FROM tuple_data ORDER BY section_position, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query tuple data: %w", err)
	}
	defer dataRows.Close()

	for dataRows.Next() {
		var position int
		var tupleJSON string
		if err := dataRows.Scan(&position, &tupleJSON); err != nil {
			return nil, fmt.Errorf("failed to scan tuple: %w", err)
		}
		if position < 0 || position >= len(im.Sections) {
			return nil, fmt.Errorf("tuple references missing section %d", position)
		}

		t, err := intermediate.DecodeTuple([]byte(tupleJSON), resolver)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tuple: %w", err)
		}
		im.Sections[position].AddTuple(t)
	}
	return im, dataRows.Err()
}

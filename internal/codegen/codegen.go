package codegen

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/koba/wix-tuples/internal/catalog"
)

const (
	header          = "// Code generated by tuplegen. DO NOT EDIT.\n\n"
	packageName     = "tuples"
	intermediatePkg = "github.com/koba/wix-tuples/internal/intermediate"
	schemaPkg       = "github.com/koba/wix-tuples/internal/schema"
)

// File is one rendered source file
type File struct {
	Name    string
	Content []byte
}

// Generator renders the tuples package from a catalog
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a new generator for a validated catalog
func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// Generate renders every file, formatted and sorted by name
func (g *Generator) Generate() ([]File, error) {
	sources := map[string]string{
		"definitions.go":     g.renderDefinitions(),
		"enums.go":           g.renderEnums(),
		"flags.go":           g.renderFlags(),
		"fields_gen_test.go": g.renderFieldsTest(),
	}
	for _, t := range g.catalog.Tuples {
		sources[FileName(t)] = g.renderTuple(t)
	}

	files := make([]File, 0, len(sources))
	for name, src := range sources {
		formatted, err := format.Source([]byte(src))
		if err != nil {
			return nil, fmt.Errorf("failed to format %s: %w", name, err)
		}
		files = append(files, File{Name: name, Content: formatted})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// WriteFiles renders the package into dir. Previously generated table files
// that no longer belong to the catalog are removed.
func (g *Generator) WriteFiles(dir string) error {
	files, err := g.Generate()
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Verbose("wrote", path)
	}

	stale, err := filepath.Glob(filepath.Join(dir, tableFilePrefix+"*.go"))
	if err != nil {
		return err
	}
	for _, path := range stale {
		if !keep[filepath.Base(path)] {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			logger.Info("removed stale", path)
		}
	}
	return nil
}

const tableFilePrefix = "tuple_"

// FileName returns the name of the file holding a table's generated code
func FileName(t catalog.Tuple) string {
	return tableFilePrefix + strings.ToLower(t.GoName()) + ".go"
}

func goType(col catalog.Column) string {
	switch col.Type {
	case "String":
		return "string"
	case "Number":
		return "int32"
	case "LargeNumber":
		return "int64"
	case "Bool":
		return "bool"
	case "Path":
		return "intermediate.PathValue"
	}
	return col.Type
}

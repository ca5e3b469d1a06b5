package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/koba/wix-tuples/internal/database"
	"github.com/koba/wix-tuples/internal/diff"
	"github.com/koba/wix-tuples/internal/generator"
	"github.com/koba/wix-tuples/internal/intermediate"
	"github.com/koba/wix-tuples/internal/schema"
	"github.com/koba/wix-tuples/internal/snapshot"
	"github.com/koba/wix-tuples/internal/tuples"
)

var (
	tables         []string
	limit          int
	outputDir      string
	dialectName    string
	extensionsPath string
	createTables   bool
	verbose        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tupledefs",
	Short: "Tuple definition catalog and intermediate tool",
	Long:  `A tool to inspect tuple definitions, snapshot and compare intermediates, and move them in and out of SQL databases.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLogLevel(logger.LogLevelVerbose)
		} else {
			logger.SetLogLevel(logger.LogLevelInfo)
		}
	},
	SilenceUsage: true,
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the built-in tables",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

var showCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Show the columns of a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Generate CREATE TABLE statements",
	Long:  `Generate CREATE TABLE statements for the built-in and extension tables.`,
	Args:  cobra.NoArgs,
	RunE:  runDDL,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <intermediate.json> [name]",
	Short: "Create an intermediate snapshot",
	Long:  `Store an intermediate and the definitions it uses in a self-describing SQLite snapshot.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSnapshot,
}

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare two intermediates",
	Long:  `Compare two intermediates or snapshots and display the differences.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <a> <b>",
	Short: "Generate migration SQL",
	Long:  `Generate DDL and DML statements to migrate a database holding a to b.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMigrate,
}

var pushCmd = &cobra.Command{
	Use:   "push <input>",
	Short: "Export an intermediate to a database",
	Long:  `Create the tables of an intermediate or snapshot and insert its tuples into the database named by the DB_* environment.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPush,
}

var pullCmd = &cobra.Command{
	Use:   "pull <output.json>",
	Short: "Import an intermediate from a database",
	Long:  `Read the tuple tables of the database named by the DB_* environment into an intermediate JSON file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check database tables against their definitions",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&extensionsPath, "extensions", "", "JSON file with extension tuple definitions")

	ddlCmd.Flags().StringVar(&dialectName, "dialect", "mysql", "SQL dialect: mysql, postgres or sqlite")
	migrateCmd.Flags().StringVar(&dialectName, "dialect", "mysql", "SQL dialect: mysql, postgres or sqlite")

	snapshotCmd.Flags().StringVar(&outputDir, "output-dir", "./snapshots", "Output directory for snapshots")

	pushCmd.Flags().BoolVar(&createTables, "create-tables", true, "Create the tables before inserting")

	pullCmd.Flags().StringSliceVar(&tables, "tables", nil, "Comma-separated list of tables to read (default: all tables)")
	pullCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows per table (default: unlimited)")

	verifyCmd.Flags().StringSliceVar(&tables, "tables", nil, "Comma-separated list of tables to verify (default: all known tables in the database)")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(ddlCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(verifyCmd)
}

// newResolver resolves built-in tables and the extensions named by --extensions
func newResolver() (*tuples.Resolver, error) {
	if extensionsPath == "" {
		return tuples.NewResolver()
	}

	data, err := os.ReadFile(extensionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extensions: %w", err)
	}

	var extensions []*schema.TupleDefinition
	if err := json.Unmarshal(data, &extensions); err != nil {
		return nil, fmt.Errorf("failed to parse extensions: %w", err)
	}
	return tuples.NewResolver(extensions...)
}

// loadInput reads a snapshot file (.db) or an intermediate JSON file
func loadInput(path string, resolver *tuples.Resolver) (*snapshot.Snapshot, error) {
	if strings.HasSuffix(path, ".db") {
		return snapshot.LoadSnapshot(path)
	}

	im, err := intermediate.LoadFile(path, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to load intermediate %s: %w", path, err)
	}
	return snapshot.New(im, resolver.Extensions()), nil
}

func connect() (database.Database, error) {
	// Load database configuration
	config, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Create database connection
	db, err := database.NewDatabase(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	// Connect to database
	if err := db.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runTables(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tTABLE\tCOLUMNS")
	for _, t := range tuples.Types() {
		def, err := tuples.ByType(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\n", int(t), def.Name(), def.Len())
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}
	def, err := resolver.ResolveDefinition(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Table: %s\n", def.Name())
	if t, ok := tuples.TryGetTupleType(def.Name()); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Type: %d\n", int(t))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Type: extension\n")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCOLUMN\tTYPE")
	for i, col := range def.Columns() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, col.Name, col.Type)
	}
	return w.Flush()
}

func runDDL(cmd *cobra.Command, args []string) error {
	dialect, err := database.ParseDialect(dialectName)
	if err != nil {
		return err
	}
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	statements, err := generator.CreateTables(append(tuples.All(), resolver.Extensions()...), dialect)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(statements, "\n\n"))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	resolver, err := newResolver()
	if err != nil {
		return err
	}
	im, err := intermediate.LoadFile(inputPath, resolver)
	if err != nil {
		return fmt.Errorf("failed to load intermediate: %w", err)
	}

	// Generate snapshot filename
	var filename string
	if len(args) > 1 {
		filename = args[1]
		if !strings.HasSuffix(filename, ".db") {
			filename += ".db"
		}
	} else {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		timestamp := time.Now().Format("2006-01-02-15-04-05")
		filename = fmt.Sprintf("%s-%s.db", base, timestamp)
	}

	outputPath := filepath.Join(outputDir, filename)

	// Create snapshot
	logger.Verbose(fmt.Sprintf("creating snapshot: %s", outputPath))
	if err := snapshot.CreateSnapshot(im, resolver.Extensions(), outputPath); err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot created successfully: %s\n", outputPath)
	return nil
}

func loadPair(args []string) (*snapshot.Snapshot, *snapshot.Snapshot, error) {
	resolver, err := newResolver()
	if err != nil {
		return nil, nil, err
	}

	// Load inputs
	logger.Verbose(fmt.Sprintf("loading: %s", args[0]))
	snap1, err := loadInput(args[0], resolver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	logger.Verbose(fmt.Sprintf("loading: %s", args[1]))
	snap2, err := loadInput(args[1], resolver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", args[1], err)
	}
	return snap1, snap2, nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	snap1, snap2, err := loadPair(args)
	if err != nil {
		return err
	}

	// Compare and display differences
	diff.Display(cmd.OutOrStdout(), diff.Compare(snap1, snap2))
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dialect, err := database.ParseDialect(dialectName)
	if err != nil {
		return err
	}
	snap1, snap2, err := loadPair(args)
	if err != nil {
		return err
	}

	// Generate migration SQL
	sql, err := generator.GenerateSQL(diff.Compare(snap1, snap2), dialect)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "-- Migration SQL from %s to %s\n", filepath.Base(args[0]), filepath.Base(args[1]))
	fmt.Fprintf(out, "-- Generated at: %s\n\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(out, sql)
	return nil
}

func runPush(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}
	snap, err := loadInput(args[0], resolver)
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	var statements []string
	if createTables {
		names := maps.Keys(snap.Definitions)
		slices.Sort(names)
		defs := make([]*schema.TupleDefinition, len(names))
		for i, name := range names {
			defs[i] = snap.Definitions[name]
		}
		if statements, err = generator.CreateTables(defs, db.Dialect()); err != nil {
			return err
		}
	}

	inserts, err := generator.InsertTuples(snap.Intermediate, db.Dialect())
	if err != nil {
		return err
	}
	statements = append(statements, inserts...)

	if err := db.Exec(statements); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}

	logger.Info(fmt.Sprintf("pushed %d tuples to %s", len(inserts), db.Dialect()))
	return nil
}

func runPull(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	im, err := database.Pull(db, resolver, tables, limit)
	if err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}

	if err := im.SaveFile(args[0]); err != nil {
		return fmt.Errorf("failed to save intermediate: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Intermediate saved: %s\n", args[0])
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	names := tables
	if len(names) == 0 {
		if names, err = db.GetAllTables(); err != nil {
			return err
		}
	}

	var defs []*schema.TupleDefinition
	for _, name := range names {
		def, err := resolver.ResolveDefinition(name)
		if err != nil {
			if len(tables) > 0 {
				return err
			}
			logger.Verbose(fmt.Sprintf("skipping table %s: no tuple definition", name))
			continue
		}
		defs = append(defs, def)
	}

	diffs, err := database.Verify(db, defs)
	if err != nil {
		return err
	}

	result := &diff.DiffResult{DefinitionDiffs: make(map[string]*diff.DefinitionDiff)}
	for _, d := range diffs {
		result.DefinitionDiffs[d.TableName] = d
	}
	diff.Display(cmd.OutOrStdout(), result)

	if len(diffs) > 0 {
		return fmt.Errorf("%d of %d tables differ from their definitions", len(diffs), len(defs))
	}
	logger.Info(fmt.Sprintf("verified %d tables", len(defs)))
	return nil
}

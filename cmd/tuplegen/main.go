package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/koba/wix-tuples/internal/catalog"
	"github.com/koba/wix-tuples/internal/codegen"
)

var (
	catalogPath string
	outDir      string
	verbose     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuplegen",
	Short: "Generate tuple definitions from a catalog",
	Long:  `Render table definitions, typed row wrappers, enumerations and bitmasks from a YAML catalog.`,
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLogLevel(logger.LogLevelVerbose)
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "Catalog file")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every written file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load and validate catalog
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	// Render files
	if err := codegen.NewGenerator(c).WriteFiles(outDir); err != nil {
		return fmt.Errorf("failed to generate: %w", err)
	}

	logger.Info(fmt.Sprintf("generated %d tables and %d enumerations into %s", len(c.Tuples), len(c.Enums), outDir))
	return nil
}

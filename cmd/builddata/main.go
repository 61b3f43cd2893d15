// Command builddata turns the approved-resources spreadsheet export into
// the catalog data file served by gentlelibrary.
package main

import (
	"fmt"
	"os"

	"github.com/dalemusser/gentlelibrary/internal/app/system/csvutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Flags
	verbose  bool
	inPath   string
	outPath  string
	maxRows  int
	maxBytes int64

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "builddata",
	Short: "Generate the catalog data file from the approved-resources CSV",
	Long: `builddata reads the spreadsheet export of submitted resources, keeps the
approved rows, normalizes every field, and writes the ordered catalog as JSON.

The output depends only on the input: the same export always produces the
same file, byte for byte.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions{
			In:     inPath,
			Out:    outPath,
			Limits: csvutil.Options{MaxBytes: maxBytes, MaxRows: maxRows},
		}
		return buildData(opts, logger, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inPath, "in", "i", "data/approved.csv", "spreadsheet export to read")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "data/resources.json", "catalog data file to write")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", csvutil.MaxRows, "reject exports with more data rows than this (0 = no limit)")
	rootCmd.Flags().Int64Var(&maxBytes, "max-bytes", csvutil.MaxInputSize, "reject exports larger than this many bytes (0 = no limit)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every skipped row")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

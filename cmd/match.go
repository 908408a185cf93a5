package cmd

import (
	"fmt"
	"os"

	"fabric-index/core/config"
	"fabric-index/core/logger"
	"fabric-index/feature/fabric"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the match command
	mainPath  string
	indexPath string
	outPath   string
)

// matchCmd runs the reconciliation pipeline against local files.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Reconcile a main sheet against a fabric name index",
	Long: `Reconcile a main spreadsheet against a fabric name index and write the
annotated result sheet.

For every main row the values of the two key columns (default A and D) are
normalized and concatenated into a composite key. Keys found in the index
resolve to the indexed value, written into the output column (default E) and
highlighted yellow in the artifact; misses fall back to the composite key.

Examples:
  # Reconcile and write result.xlsx
  fabric-index match --main main.xlsx --index fabric_index.xlsx --out result.xlsx`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&mainPath, "main", "", "Path to the main sheet (.xlsx)")
	matchCmd.Flags().StringVar(&indexPath, "index", "", "Path to the fabric name index sheet (.xlsx)")
	matchCmd.Flags().StringVar(&outPath, "out", "result.xlsx", "Path for the annotated output sheet")
	_ = matchCmd.MarkFlagRequired("main")
	_ = matchCmd.MarkFlagRequired("index")

	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting fabric reconciliation",
		zap.String("main", mainPath),
		zap.String("index", indexPath),
	)

	mainFile, err := os.Open(mainPath)
	if err != nil {
		return fmt.Errorf("failed to open main sheet: %w", err)
	}
	defer mainFile.Close()

	indexFile, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("failed to open index sheet: %w", err)
	}
	defer indexFile.Close()

	svc := fabric.NewService(cfg.Match, l)
	result, err := svc.Run(mainFile, indexFile)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := svc.Export(out, result); err != nil {
		return fmt.Errorf("failed to export artifact: %w", err)
	}

	l.Info("Annotated sheet written",
		zap.String("out", outPath),
		zap.Int("rows", result.Summary.Total),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("unmatched", result.Summary.Unmatched),
	)
	return nil
}

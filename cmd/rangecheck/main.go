// Package main provides the CLI entry point for rangecheck-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/report"
)

var (
	outputPath string
	headerRows int
	headerCols int
	alignMode  string
	idRow      int
	reportPath string
)

func main() {
	// Best-effort: load .env from the current directory so flag
	// defaults can come from the environment. Flags still win.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rangecheck [input.xlsx|input.xls]",
		Short: "Check sensed values against min/max bound sheets",
		Long: `rangecheck-go reads a workbook holding sensed values plus parallel
min/max bound sheets, classifies every sensed cell as low, ok, or high,
and writes an annotated Result sheet with color-coded cells.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: processed<timestamp>.xlsx)")
	rootCmd.Flags().IntVar(&headerRows, "header-rows", envInt("RANGECHECK_HEADER_ROWS", 3), "Header rows assumed above the first data row")
	rootCmd.Flags().IntVar(&headerCols, "header-cols", envInt("RANGECHECK_HEADER_COLS", 2), "Header columns assumed before the first data column")
	rootCmd.Flags().StringVar(&alignMode, "align", envStr("RANGECHECK_ALIGN", "offset"), "Alignment strategy: offset, identifier")
	rootCmd.Flags().IntVar(&idRow, "id-row", envInt("RANGECHECK_ID_ROW", 1), "Header row holding sensor identifiers (identifier strategy)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Also write a PDF summary report to this path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	var strategy rangecheck.Strategy
	switch alignMode {
	case "offset":
		strategy = rangecheck.StrategyOffset
	case "identifier":
		strategy = rangecheck.StrategyIdentifier
	default:
		return fmt.Errorf("invalid alignment strategy: %s (must be offset or identifier)", alignMode)
	}

	opts := rangecheck.Options{
		HeaderRows:    headerRows,
		HeaderCols:    headerCols,
		Strategy:      strategy,
		IdentifierRow: idRow,
	}

	outPath := outputPath
	if outPath == "" {
		outPath = fmt.Sprintf("processed%s.xlsx", time.Now().Format("20060102150405"))
	}

	outcome, err := rangecheck.Process(inputPath, outPath, opts)
	if err != nil {
		return err
	}

	for _, diag := range outcome.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s: %s\n", diag.Severity, diag.Message)
	}

	if reportPath != "" {
		summary := report.Summarize(inputPath, outcome.Result)
		if err := report.Generate(summary, reportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("wrote %s\n", reportPath)
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// envInt reads an integer environment default, falling back when the
// variable is unset or malformed.
func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// envStr reads a string environment default.
func envStr(key, fallback string) string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	return raw
}

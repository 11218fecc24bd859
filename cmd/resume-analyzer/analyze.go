package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume document",
	Long:  "Analyze a resume text or HTML file: extract skills and keywords, detect sections, and compute ATS, readability, formatting, and overall scores.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume file (.txt, .html)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ReadDocument(analyzeInputFile, cfg.MaxTextLength)
	if err != nil {
		return err
	}

	result := analysis.Analyze(tax, text)

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

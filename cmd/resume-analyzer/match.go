package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a resume",
	Long:  "Analyze a resume file, score it against every job in a JSON file, and print the matches ranked by compatibility.",
	RunE:  runMatch,
}

var (
	matchInputFile  string
	matchJobsFile   string
	matchOutputFile string
	matchLimit      int
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchInputFile, "in", "i", "", "Path to resume file (.txt, .html)")
	matchCmd.Flags().StringVarP(&matchJobsFile, "jobs", "j", "", "Path to JSON file with an array of job records")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 0, "Maximum matches to return (default: config match_limit)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = matchCmd.MarkFlagRequired("in")
	_ = matchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ReadDocument(matchInputFile, cfg.MaxTextLength)
	if err != nil {
		return err
	}

	jobsData, err := os.ReadFile(matchJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []types.JobRecord
	if err := json.Unmarshal(jobsData, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}

	limit := matchLimit
	if limit <= 0 {
		limit = cfg.MatchLimit
	}

	result := analysis.Analyze(tax, text)
	ranked, err := matching.RankJobs(cmd.Context(), result, jobs, limit)
	if err != nil {
		return err
	}

	if matchVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatches(ranked)
	}

	jsonBytes, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

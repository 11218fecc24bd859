// Package main provides the entry point for the resume analyzer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "resume-analyzer",
	Short: "Resume scoring and job matching engine",
	Long:  "Resume Analyzer scores resume text against a skill taxonomy, producing ATS, readability, and formatting scores plus ranked matches against structured job postings.",
}

var (
	configPath   string
	taxonomyPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "Path to alternate taxonomy JSON file")
}

// loadConfig merges the optional config file with defaults
func loadConfig() (config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if taxonomyPath != "" {
		cfg.Taxonomy = taxonomyPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.ApplyDefaults(), nil
}

// loadTaxonomy returns the configured taxonomy, falling back to the
// compiled-in default.
func loadTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.Taxonomy == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(cfg.Taxonomy)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes resume analysis and job matching endpoints.",
	RunE:  runServe,
}

var (
	servePort    int
	serveJSONLog bool
	serveDebug   bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config port or 8080)")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Log in JSON format")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	log, err := logger.New(serveJSONLog || cfg.JSONLog, serveDebug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:          port,
		MatchLimit:    cfg.MatchLimit,
		MaxTextLength: cfg.MaxTextLength,
		Taxonomy:      tax,
		Logger:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

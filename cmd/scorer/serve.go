package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coltonk1/trackify-jobs/internal/config"
	"github.com/coltonk1/trackify-jobs/internal/logger"
	"github.com/coltonk1/trackify-jobs/internal/server"
	"github.com/coltonk1/trackify-jobs/internal/server/ratelimit"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume scoring endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	a, err := buildApp(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := server.New(server.Config{
		Port:           cfg.Port,
		JWTSecret:      cfg.JWTSecret,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RateLimit:      ratelimit.LoadConfig(),
	}, a.scorer, log)

	log.Info().Int("port", cfg.Port).Str("preset", cfg.Preset).Msg("starting server")
	if err := srv.Start(); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

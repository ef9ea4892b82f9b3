package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yt-insights/ytca/internal/analytics"
	"github.com/yt-insights/ytca/internal/api"
	"github.com/yt-insights/ytca/internal/config"
	"github.com/yt-insights/ytca/internal/logging"
	"github.com/yt-insights/ytca/internal/models"
)

var cfg *config.Config

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	rootCmd := newRootCmd()
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.Options{
			Level:        cfg.LogLevel,
			File:         cfg.LogFile,
			MaxSizeMB:    cfg.LogMaxSizeMB,
			MaxBackups:   cfg.LogMaxBackups,
			MaxAgeInDays: cfg.LogMaxAgeInDays,
		})
		if envErr != nil {
			log.Debug().Msg(".env file not found, using process environment")
		}
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ytca",
		Short:         "YouTube channel analytics",
		Long:          "ytca pulls a channel's recent uploads and reports what separates its best videos from its worst.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   "analyze <channelID>",
		Short: "Analyze one channel and print the report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxResults <= 0 {
				maxResults = cfg.DefaultMaxResults
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()

			source, err := api.NewYouTubeSource(ctx, cfg.YouTubeAPIKey)
			if err != nil {
				return err
			}

			report, err := analytics.NewEngine(source).Analyze(ctx, args[0], maxResults)
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", args[0], err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 0, "number of recent uploads to analyze (default from DEFAULT_MAX_RESULTS, max 200)")
	return cmd
}

func runServe(ctx context.Context) error {
	source, err := api.NewYouTubeSource(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize YouTube API: %w", err)
	}

	var runs api.RunLog
	if cfg.RunLogEnabled() {
		db, err := models.NewDatabase(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()
		runs = db
	} else {
		log.Info().Msg("DB_PATH not set, run log disabled")
	}

	server := api.NewServer(cfg,
		analytics.NewEngine(source),
		api.NewYouTubeClient(cfg.YouTubeAPIKey),
		runs,
	)
	return server.Start(cfg.Port)
}

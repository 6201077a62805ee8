package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"doppler-mosaic/workspace/internal/config"
	"doppler-mosaic/workspace/internal/workspace"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func main() {
	cfg := config.DefaultConfig()

	provisionCmd := flag.NewFlagSet("provision", flag.ExitOnError)
	provisionCmd.StringVar(&cfg.Subreddit, "subreddit", config.GetEnvString(config.EnvSubreddit, ""),
		"Subreddit whose workspace to provision (env: MOSAIC_SUBREDDIT)")
	provisionCmd.IntVar(&cfg.Dimensions, "dimensions", config.GetEnvInt(config.EnvDimensions, config.DefaultDimensions),
		"Feature vector width, sets the number of conv_N columns (env: MOSAIC_DIMENSIONS)")

	var logLevelStr string
	provisionCmd.StringVar(&logLevelStr, "log-level", config.GetEnvString(config.EnvLogLevel, config.DefaultLogLevel),
		"Log level: debug, info, warn, error (env: MOSAIC_LOG_LEVEL)")

	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	showCmd.StringVar(&cfg.Subreddit, "subreddit", config.GetEnvString(config.EnvSubreddit, ""),
		"Subreddit whose workspace to describe (env: MOSAIC_SUBREDDIT)")
	showCmd.IntVar(&cfg.Dimensions, "dimensions", config.GetEnvInt(config.EnvDimensions, config.DefaultDimensions),
		"Feature vector width, sets the number of conv_N columns (env: MOSAIC_DIMENSIONS)")

	var showLogLevelStr string
	showCmd.StringVar(&showLogLevelStr, "log-level", config.GetEnvString(config.EnvLogLevel, config.DefaultLogLevel),
		"Log level: debug, info, warn, error (env: MOSAIC_LOG_LEVEL)")

	if len(os.Args) < 2 {
		fmt.Println("Usage: workspace [command] [options]")
		fmt.Println("Commands: provision, show")
		fmt.Println("\nFor command-specific options, use: workspace [command] -h")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "provision":
		provisionCmd.Parse(os.Args[2:])

		// Handle log level parsing separately since it needs conversion
		if level, err := zerolog.ParseLevel(logLevelStr); err == nil {
			cfg.LogLevel = level
		}

		zerolog.SetGlobalLevel(cfg.LogLevel)

		if err := runProvision(cfg); err != nil {
			log.Error().Err(err).Msg("Provisioning failed")
			os.Exit(1)
		}

	case "show":
		showCmd.Parse(os.Args[2:])

		// Handle log level parsing separately
		if level, err := zerolog.ParseLevel(showLogLevelStr); err == nil {
			cfg.LogLevel = level
		}

		zerolog.SetGlobalLevel(cfg.LogLevel)

		if err := runShow(cfg); err != nil {
			log.Error().Err(err).Msg("Describe failed")
			os.Exit(1)
		}

	case "-h", "--help", "help":
		fmt.Println("Usage: workspace [command] [options]")
		fmt.Println("Commands: provision, show")
		fmt.Println("\nFor command-specific options, use: workspace [command] -h")
		os.Exit(0)

	default:
		log.Error().Str("command", os.Args[1]).Msg("Unknown command")
		fmt.Println("Available commands: provision, show")
		fmt.Println("\nFor command-specific options, use: workspace [command] -h")
		os.Exit(1)
	}
}

// runProvision resolves the workspace for the configured subreddit and
// creates its directories.
func runProvision(cfg *config.Config) error {
	ws, err := workspace.Provision(cfg)
	if err != nil {
		return err
	}

	for _, dir := range ws.Layout.Dirs() {
		log.Debug().Str("dir", dir).Msg("Directory ready")
	}

	log.Info().
		Str("media_index", ws.Layout.MediaIndexFile).
		Str("features", ws.Layout.FeaturesFile).
		Str("knn_index", ws.Layout.KNNFile).
		Str("animation", ws.Layout.AnimationFile).
		Msg("Pipeline file locations")

	return nil
}

// runShow resolves the workspace without side effects and prints it as
// JSON for downstream tooling.
func runShow(cfg *config.Config) error {
	ws, err := workspace.Describe(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ws); err != nil {
		return fmt.Errorf("failed to encode workspace: %w", err)
	}

	log.Debug().
		Int("columns", len(ws.Columns)).
		Msg("Workspace described")

	return nil
}

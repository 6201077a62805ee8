// Package workspace resolves and provisions the on-disk workspace the
// mosaic pipeline runs in. Resolution happens once at startup; the result
// is read-only for the lifetime of the process.
package workspace

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"doppler-mosaic/workspace/internal/config"
	"doppler-mosaic/workspace/internal/features"
	"doppler-mosaic/workspace/internal/layout"
	"doppler-mosaic/workspace/internal/media"
)

// Workspace bundles everything the pipeline needs to locate its inputs and
// outputs: the resolved layout, the feature column labels, and the
// null-hash sentinels.
type Workspace struct {
	Layout     layout.Layout `json:"layout"`
	Columns    []string      `json:"columns"`
	NullHashes []string      `json:"null_hashes"`
}

// Describe resolves the workspace without touching the filesystem.
func Describe(cfg *config.Config) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := layout.Resolve(cfg.Subreddit)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve layout for %q: %w", cfg.Subreddit, err)
	}

	return &Workspace{
		Layout:     l,
		Columns:    features.ColumnNames(cfg.Dimensions),
		NullHashes: media.NullHashes,
	}, nil
}

// Provision resolves the workspace and ensures its directories exist.
// Re-running with the same configuration is idempotent: directories that
// already exist are left alone and the same workspace is returned. Any
// failure aborts immediately; this runs once at startup and nothing
// downstream can proceed without it.
func Provision(cfg *config.Config) (*Workspace, error) {
	ws, err := Describe(cfg)
	if err != nil {
		return nil, err
	}

	if err := ws.Layout.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("failed to provision workspace for %q: %w", cfg.Subreddit, err)
	}

	log.Info().
		Str("subreddit", cfg.Subreddit).
		Str("working_dir", ws.Layout.WorkingDir).
		Str("output_dir", ws.Layout.OutputDir).
		Int("dimensions", cfg.Dimensions).
		Msg("Workspace provisioned")

	return ws, nil
}

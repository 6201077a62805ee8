package config

// Constants defining default values for application configuration
const (
	// Width of the feature vectors produced by the extraction stage
	// (resnet50 logits).
	DefaultDimensions = 2048

	DefaultLogLevel = "debug"
)

// Environment variable names recognized by the CLI.
const (
	EnvSubreddit  = "MOSAIC_SUBREDDIT"
	EnvDimensions = "MOSAIC_DIMENSIONS"
	EnvLogLevel   = "MOSAIC_LOG_LEVEL"
)

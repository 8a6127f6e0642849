package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Everything comes from environment
// variables with sensible defaults, with an optional .env file as fallback.
type Config struct {
	// InputDir is the directory the file browser starts in.
	InputDir string

	// OutputDir is where JSON snapshots are written.
	OutputDir string

	// LogFile receives structured logs so the TUI surface stays clean.
	LogFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// loadConfig reads configuration from the environment, loading a .env file
// first if one is present.
func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		InputDir:  envOr("TFIPNORM_INPUT_DIR", "input"),
		OutputDir: envOr("TFIPNORM_OUTPUT_DIR", "output"),
		LogFile:   envOr("TFIPNORM_LOG_FILE", "tfipnorm.log"),
		LogLevel:  envOr("TFIPNORM_LOG_LEVEL", "info"),
	}
}

// ensureDirs creates the input and output directories if they are absent.
func (c Config) ensureDirs() error {
	if err := os.MkdirAll(c.InputDir, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(c.OutputDir, 0o755)
}

// envOr returns the environment value for key, or def when unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

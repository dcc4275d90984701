// Package config provides configuration management for promptbook.
// It handles loading configuration from environment variables and .env files,
// and builds the ordered list of places the prompt document is looked up.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DocumentName is the file name looked up in the default locations.
const DocumentName = "prompts.md"

// Config holds the application configuration settings.
type Config struct {
	FilePath    string `mapstructure:"promptbook_file"`  // Prompt document, checked before any other location
	SearchPaths string `mapstructure:"promptbook_paths"` // Extra candidate documents, OS path-list separated
	NoColor     string `mapstructure:"no_color"`         // Any non-empty value disables colored output (no-color.org)
}

// GetEnvVars loads configuration from environment variables and .env files.
// It first attempts to load from a .env file if present, then reads from environment variables.
// Returns a populated Config struct or exits on configuration errors.
func GetEnvVars() Config {
	if _, err := os.Stat(".env"); err == nil {
		// Initialize Viper from .env file
		viper.SetConfigFile(".env")

		// Read the .env file
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading .env file: %s\n", err)
			os.Exit(1)
		}
	}

	// Enable reading environment variables
	viper.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so every key
	// gets a default.
	viper.SetDefault("promptbook_file", "")
	viper.SetDefault("promptbook_paths", "")
	viper.SetDefault("no_color", "")

	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshalling Viper conf: %s\n", err)
		os.Exit(1)
	}

	return conf
}

// ColorDisabled reports whether NO_COLOR is set.
func (c Config) ColorDisabled() bool {
	return c.NoColor != ""
}

// CandidatePaths returns the prompt document locations in lookup order:
// FilePath, each entry of SearchPaths, then the default locations. An
// explicit path (usually the --file flag) is the only candidate when set.
func (c Config) CandidatePaths(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	paths := []string{c.FilePath}
	paths = append(paths, filepath.SplitList(c.SearchPaths)...)
	return append(paths, DefaultPaths()...)
}

// DefaultPaths returns the built-in document locations: the working
// directory first, then per-user locations.
func DefaultPaths() []string {
	paths := []string{"PROMPTS.md", DocumentName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "promptbook", DocumentName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".promptbook", DocumentName))
	}
	return paths
}

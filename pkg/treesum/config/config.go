// Package config loads treesum configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Config represents the application configuration.
type Config struct {
	// Algorithm is the digest algorithm name (sha256 or blake3).
	Algorithm string `mapstructure:"algorithm"`

	// Extension is the manifest file extension used by create mode.
	Extension string `mapstructure:"extension"`

	// Workers bounds concurrent hashing; 0 means one per CPU.
	Workers int `mapstructure:"workers"`

	// Exclude contains glob patterns for paths to skip.
	Exclude []string `mapstructure:"exclude"`

	// Format is the report output format (text, json, yaml).
	Format string `mapstructure:"format"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Setup configures a viper instance with treesum's config file locations,
// environment binding, and defaults. It is the single construction path:
// both Load and the CLI's global viper go through it. When cfgFile is
// non-empty it names the exact config file to use; otherwise the search
// order is:
//   - $XDG_CONFIG_HOME/treesum/config.yaml
//   - $HOME/.config/treesum/config.yaml
//
// Environment variables are prefixed with TREESUM_ (e.g., TREESUM_ALGORITHM,
// TREESUM_LOGGING_LEVEL).
func Setup(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "treesum"))
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "treesum"))
		}
	}

	v.SetEnvPrefix("TREESUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
}

// Load builds a Config from the default file locations and environment.
// A missing config file is not an error; a malformed one is.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is Load with an explicit config file path.
func LoadFile(cfgFile string) (*Config, error) {
	return load(cfgFile)
}

func load(cfgFile string) (*Config, error) {
	v := viper.New()
	Setup(v, cfgFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults registers every configuration default on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", DefaultAlgorithm)
	v.SetDefault("extension", DefaultExtension)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("exclude", DefaultExclusions)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("logging.level", DefaultLogLevel)
}

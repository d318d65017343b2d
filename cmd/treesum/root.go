package main

import (
	"context"

	"github.com/jamesainslie/treesum/pkg/treesum/config"
	"github.com/jamesainslie/treesum/pkg/treesum/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "treesum",
		Short: "Compute and verify content digests for a directory tree",
		Long: `Treesum records a content digest for every regular file under a
directory into a plain-text manifest, and later verifies the tree against
that manifest, classifying each file as valid, mismatched, missing, or extra.

Examples:
  treesum create ~/photos                 # Write photos.treesum in the CWD
  treesum create -o backup.sum ~/photos   # Choose the manifest path
  treesum verify ~/photos -m photos.treesum
  treesum verify ~/photos -m photos.treesum -f json`,
		PersistentPreRunE: setupLogging,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/treesum/config.yaml)")
	rootCmd.PersistentFlags().StringP("algo", "a", "", "digest algorithm (sha256, blake3)")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "hashing workers (0=one per CPU)")
	rootCmd.PersistentFlags().StringSliceP("exclude", "e", nil, "exclude patterns (can be specified multiple times)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress per-file and summary output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("algorithm", rootCmd.PersistentFlags().Lookup("algo"))
	_ = viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables. The setup
// is shared with config.Load so the CLI and library see identical keys.
func initConfig() {
	config.Setup(viper.GetViper(), cfgFile)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// setupLogging configures log verbosity before any command runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	level := viper.GetString("logging.level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return logging.Init(level)
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

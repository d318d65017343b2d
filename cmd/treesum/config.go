package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/jamesainslie/treesum/pkg/treesum/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage treesum configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/treesum/config.yaml (if set)
  2. ~/.config/treesum/config.yaml

Environment variables can override config file settings using the TREESUM_ prefix:
  TREESUM_ALGORITHM=blake3
  TREESUM_WORKERS=8
  TREESUM_LOGGING_LEVEL=debug`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("algorithm:      %s\n", cfg.Algorithm)
	fmt.Printf("extension:      %s\n", cfg.Extension)
	fmt.Printf("workers:        %d\n", cfg.Workers)
	fmt.Printf("exclude:        %v\n", cfg.Exclude)
	fmt.Printf("format:         %s\n", cfg.Format)
	fmt.Printf("logging.level:  %s\n", cfg.Logging.Level)
	return nil
}

// runConfigPath prints where the config file is (or would be) read from.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		fmt.Println(cfgFile)
		return nil
	}
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}
	path := filepath.Join(xdg.ConfigHome, "treesum", "config.yaml")
	if strings.TrimSpace(xdg.ConfigHome) == "" {
		path = filepath.Join("~", ".config", "treesum", "config.yaml")
	}
	fmt.Printf("%s (not created yet)\n", path)
	return nil
}

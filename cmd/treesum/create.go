package main

import (
	"fmt"
	"os"

	"github.com/jamesainslie/treesum/pkg/treesum/hasher"
	"github.com/jamesainslie/treesum/pkg/treesum/output"
	"github.com/jamesainslie/treesum/pkg/treesum/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var createCmd = &cobra.Command{
	Use:   "create <directory>",
	Short: "Record a digest for every file under a directory",
	Long: `Create walks the target directory, hashes every regular file, and
writes a manifest with one "path:digest" line per file. Paths are
relative to the target directory. The manifest is written to the
current working directory as <directory-basename>.<extension> unless
--output names a different path.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringP("output", "o", "", "manifest path (default: <dir>.<extension> in the CWD)")
	rootCmd.AddCommand(createCmd)
}

// runCreate builds a manifest and persists it.
func runCreate(cmd *cobra.Command, args []string) error {
	root := args[0]

	algo, err := hasher.ParseAlgorithm(viper.GetString("algorithm"))
	if err != nil {
		return err
	}

	m, stats, err := snapshot.Build(cmd.Context(), snapshot.Options{
		Root:      root,
		Algorithm: algo,
		Workers:   viper.GetInt("workers"),
		Exclude:   viper.GetStringSlice("exclude"),
	})
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = snapshot.OutputName(root, viper.GetString("extension"))
	}
	if err := os.WriteFile(outPath, m.Serialize(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if getQuiet() {
		return nil
	}
	return render(&output.Result{
		Root:         root,
		ManifestPath: outPath,
		Algorithm:    algo.String(),
		Files:        stats.Files,
		Bytes:        stats.Bytes,
		Elapsed:      stats.Elapsed,
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/jamesainslie/treesum/pkg/treesum/hasher"
	"github.com/jamesainslie/treesum/pkg/treesum/manifest"
	"github.com/jamesainslie/treesum/pkg/treesum/output"
	"github.com/jamesainslie/treesum/pkg/treesum/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <directory>",
	Short: "Check a directory against a previously created manifest",
	Long: `Verify loads a manifest, re-hashes the directory's files, and reports
every difference: mismatched digests, files listed in the manifest but
gone from disk, and files on disk the manifest does not mention.

Differences are report content, not errors: the exit code is 0 whenever
verification ran to completion. A malformed manifest, a bad invocation,
or an unreadable file exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringP("manifest", "m", "", "manifest file to verify against (required)")
	_ = verifyCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(verifyCmd)
}

// runVerify loads the manifest, runs verification, and renders the report.
func runVerify(cmd *cobra.Command, args []string) error {
	root := args[0]

	manifestPath, _ := cmd.Flags().GetString("manifest")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return err
	}

	algo, err := hasher.ParseAlgorithm(viper.GetString("algorithm"))
	if err != nil {
		return err
	}

	opts := verify.Options{
		Root:      root,
		Manifest:  m,
		Algorithm: algo,
		Workers:   viper.GetInt("workers"),
		Exclude:   viper.GetStringSlice("exclude"),
	}
	// Stream one line per manifest entry for the default text output.
	if viper.GetString("format") == "text" && !getQuiet() {
		opts.OnResult = func(path string, status verify.Status) {
			fmt.Printf("%s: %s\n", path, status)
		}
	}

	report, err := verify.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if getQuiet() {
		return nil
	}
	return render(&output.Result{
		Root:         root,
		ManifestPath: manifestPath,
		Algorithm:    algo.String(),
		Elapsed:      report.Elapsed,
		Report:       report,
	})
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gtdb-cli tool: a client for the
// GTDB (Genome Taxonomy Database) public REST API. Each API family is a
// subcommand — search, genome, taxon — and each supports single-term and
// batch-file input with table, CSV, or JSON output.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for gtdb-cli.
var rootCmd = &cobra.Command{
	Use:   "gtdb-cli",
	Short: "Search and parse GTDB data",
	Long: `gtdb-cli queries the Genome Taxonomy Database public API without
hand-crafted HTTP requests or raw JSON post-processing.

Subcommands map to API families: search looks up genomes by taxonomy,
genome fetches per-accession views (card, metadata, taxon history), and
taxon lists descendants or searches taxon names. Every subcommand accepts
a single term or a batch file (-f) with one term per line; a failing term
never aborts the rest of the batch.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gtdb-cli.yaml or ~/.config/gtdb-cli/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "batch file with one term per line")
	rootCmd.PersistentFlags().BoolP("insecure", "k", false, "skip TLS certificate verification")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file path (.csv or .json); default is a table on stdout")
	rootCmd.PersistentFlags().String("format", "", "output file format: csv or json (default: inferred from -o extension)")
	rootCmd.PersistentFlags().Bool("strict", false, "exit non-zero if any term fails")
	rootCmd.PersistentFlags().Int("concurrency", 0, "max in-flight requests in batch mode (default from config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gtdb-cli")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gtdb-cli"))
		}
	}

	viper.SetEnvPrefix("GTDB_CLI")
	viper.AutomaticEnv()

	defaults := types.DefaultClientConfig()
	viper.SetDefault("base_url", defaults.BaseURL)
	viper.SetDefault("timeout", defaults.Timeout)
	viper.SetDefault("user_agent", "gtdb-cli/"+version)
	viper.SetDefault("max_retries", defaults.MaxRetries)
	viper.SetDefault("retry_delay", defaults.RetryDelay)
	viper.SetDefault("concurrency", defaults.Concurrency)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig resolves the effective client configuration from config
// file, environment, and flags.
func clientConfig(cmd *cobra.Command) types.ClientConfig {
	cfg := types.ClientConfig{
		BaseURL:     viper.GetString("base_url"),
		Timeout:     viper.GetDuration("timeout"),
		UserAgent:   viper.GetString("user_agent"),
		MaxRetries:  viper.GetInt("max_retries"),
		RetryDelay:  viper.GetDuration("retry_delay"),
		Concurrency: viper.GetInt("concurrency"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if n, _ := cmd.Flags().GetInt("concurrency"); n > 0 {
		cfg.Concurrency = n
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

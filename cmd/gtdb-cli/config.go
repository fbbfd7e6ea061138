// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gtdb-cli configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Init writes gtdb-cli.yaml with the built-in defaults to the current
directory, or to the path given with --config. It refuses to overwrite an
existing file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configFileModel mirrors ClientConfig with durations rendered as strings
// so the generated file reads as "30s" rather than nanoseconds.
type configFileModel struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	UserAgent   string `yaml:"user_agent"`
	MaxRetries  int    `yaml:"max_retries"`
	RetryDelay  string `yaml:"retry_delay"`
	Concurrency int    `yaml:"concurrency"`
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "gtdb-cli.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	defaults := types.DefaultClientConfig()
	model := configFileModel{
		BaseURL:     defaults.BaseURL,
		Timeout:     defaults.Timeout.String(),
		UserAgent:   "gtdb-cli/" + version,
		MaxRetries:  defaults.MaxRetries,
		RetryDelay:  defaults.RetryDelay.String(),
		Concurrency: defaults.Concurrency,
	}

	data, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Wrote", path)
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

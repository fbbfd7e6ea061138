// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gtdb-cli/internal/batch"
	"github.com/pdiddy/gtdb-cli/internal/gtdb"
	"github.com/pdiddy/gtdb-cli/internal/output"
	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// collectTerms resolves the input terms from the positional argument or
// the batch file. An unreadable batch file is fatal before any network
// activity.
func collectTerms(cmd *cobra.Command, args []string) ([]string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: both a term and --file given", gtdb.ErrInvalidFlags)
		}
		terms, err := batch.ReadTermFile(file)
		if err != nil {
			return nil, err
		}
		if len(terms) == 0 {
			return nil, fmt.Errorf("%w: %s contains no terms", gtdb.ErrEmptyTerm, file)
		}
		return terms, nil
	}

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return nil, fmt.Errorf("%w: provide a term or --file", gtdb.ErrEmptyTerm)
	}
	return []string{strings.TrimSpace(args[0])}, nil
}

// runQueries drives the pipeline for a subcommand: expand terms into
// queries, validate them, then fetch and decode over the bounded worker
// pool. An interrupt stops new requests and flushes what completed.
func runQueries(cmd *cobra.Command, base types.Query, args []string) (types.ResultSet, error) {
	terms, err := collectTerms(cmd, args)
	if err != nil {
		return nil, err
	}

	queries := batch.Expand(base, terms)
	for _, q := range queries {
		if err := gtdb.ValidateQuery(q); err != nil {
			return nil, err
		}
	}

	cfg := clientConfig(cmd)
	insecure, _ := cmd.Flags().GetBool("insecure")
	fetcher := gtdb.NewFetcher(cfg)

	worker := func(ctx context.Context, q types.Query) (types.Record, error) {
		body, err := fetcher.Fetch(ctx, gtdb.RequestURL(cfg.BaseURL, q), insecure)
		if err != nil {
			return nil, err
		}
		return gtdb.Decode(q, body)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return batch.Run(ctx, queries, worker, cfg.Concurrency), nil
}

// writeResults renders the result set to the selected output target and
// applies strict-mode exit semantics.
func writeResults(cmd *cobra.Command, rs types.ResultSet, kind types.RecordKind) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		output.RenderTable(rs, kind, os.Stdout)
		return strictErr(cmd, rs)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		if strings.EqualFold(filepath.Ext(path), ".json") {
			format = "json"
		} else {
			format = "csv"
		}
	}

	switch format {
	case "csv":
		if err := output.WriteCSVFile(rs, kind, path, os.Stderr); err != nil {
			return err
		}
	case "json":
		if err := output.WriteJSONFile(rs, path); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unsupported format %q: use csv or json", gtdb.ErrInvalidFlags, format)
	}

	fmt.Fprintln(os.Stderr, "Wrote", path)
	return strictErr(cmd, rs)
}

func strictErr(cmd *cobra.Command, rs types.ResultSet) error {
	strict, _ := cmd.Flags().GetBool("strict")
	if strict {
		if failed := rs.Failed(); failed > 0 {
			return fmt.Errorf("%d of %d term(s) failed", failed, len(rs))
		}
	}
	return nil
}

// matchMode resolves the --exact/--partial pair into a MatchMode.
func matchMode(cmd *cobra.Command) (types.MatchMode, error) {
	exact, _ := cmd.Flags().GetBool("exact")
	partial, _ := cmd.Flags().GetBool("partial")
	if exact && partial {
		return types.MatchPartial, fmt.Errorf("%w: --exact and --partial are mutually exclusive", gtdb.ErrInvalidFlags)
	}
	if exact {
		return types.MatchExact, nil
	}
	return types.MatchPartial, nil
}

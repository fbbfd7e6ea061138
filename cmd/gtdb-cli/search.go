// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gtdb-cli/internal/gtdb"
	"github.com/pdiddy/gtdb-cli/internal/output"
	"github.com/pdiddy/gtdb-cli/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search GTDB genomes by taxonomy name",
	Long: `Search queries the GTDB search endpoint for genomes matching a taxonomy
name. Matching is contains-based by default; -w/--exact requires a full
name match. Rank prefixes (d__, p__, ..., s__) are case-sensitive and
never normalized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	match, err := matchMode(cmd)
	if err != nil {
		return err
	}

	field, _ := cmd.Flags().GetString("field")
	repsOnly, _ := cmd.Flags().GetBool("rep")
	typeOnly, _ := cmd.Flags().GetBool("type")
	countOnly, _ := cmd.Flags().GetBool("count")
	idOnly, _ := cmd.Flags().GetBool("id")
	if countOnly && idOnly {
		return fmt.Errorf("%w: --count and --id are mutually exclusive", gtdb.ErrInvalidFlags)
	}

	base := types.Query{
		Endpoint:         types.EndpointSearch,
		Match:            match,
		Field:            types.SearchFieldFrom(field),
		RepsOnly:         repsOnly,
		TypeMaterialOnly: typeOnly,
	}

	rs, err := runQueries(cmd, base, args)
	if err != nil {
		return err
	}

	// --count and --id are stdout-only renderings.
	if path, _ := cmd.Flags().GetString("output"); path == "" {
		if countOnly {
			output.RenderCounts(rs, os.Stdout)
			return strictErr(cmd, rs)
		}
		if idOnly {
			output.RenderGenomeIDs(rs, os.Stdout, os.Stderr)
			return strictErr(cmd, rs)
		}
	}

	return writeResults(cmd, rs, base.RecordKind())
}

func init() {
	searchCmd.Flags().BoolP("exact", "w", false, "match the whole taxonomy name")
	searchCmd.Flags().Bool("partial", false, "match any name containing the term (default)")
	searchCmd.Flags().String("field", "all", "search field: all, gtdb, ncbi, org, acc")
	searchCmd.Flags().Bool("rep", false, "GTDB species representative genomes only")
	searchCmd.Flags().Bool("type", false, "NCBI type material genomes only")
	searchCmd.Flags().Bool("count", false, "print only the number of hits per term")
	searchCmd.Flags().Bool("id", false, "print only genome IDs, one per line")

	rootCmd.AddCommand(searchCmd)
}

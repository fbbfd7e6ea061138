// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gtdb-cli/internal/gtdb"
	"github.com/pdiddy/gtdb-cli/pkg/types"
)

var genomeCmd = &cobra.Command{
	Use:   "genome [accession]",
	Short: "Fetch genome information by accession",
	Long: `Genome fetches a per-accession view from the GTDB genome endpoint:
the card view by default, the reduced metadata view with --metadata, or
the taxonomic history across releases with --history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenome,
}

func runGenome(cmd *cobra.Command, args []string) error {
	metadata, _ := cmd.Flags().GetBool("metadata")
	history, _ := cmd.Flags().GetBool("history")
	if metadata && history {
		return fmt.Errorf("%w: --metadata and --history are mutually exclusive", gtdb.ErrInvalidFlags)
	}

	// The mutually exclusive flags collapse into a single mode here and
	// are never re-checked downstream.
	mode := types.GenomeCardView
	switch {
	case metadata:
		mode = types.GenomeMetadataView
	case history:
		mode = types.GenomeHistoryView
	}

	base := types.Query{Endpoint: types.EndpointGenome, Genome: mode}

	rs, err := runQueries(cmd, base, args)
	if err != nil {
		return err
	}
	return writeResults(cmd, rs, base.RecordKind())
}

func init() {
	genomeCmd.Flags().Bool("metadata", false, "fetch the reduced metadata view")
	genomeCmd.Flags().Bool("history", false, "fetch the taxonomic history across releases")

	rootCmd.AddCommand(genomeCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

var taxonCmd = &cobra.Command{
	Use:   "taxon [name]",
	Short: "List taxon descendants or search taxon names",
	Long: `Taxon lists the direct descendants of a taxon by default. With
-s/--search it searches taxon names in the current GTDB release instead,
and --all-releases widens the search to every release. Names keep their
rank prefix (for example g__Escherichia) and are never normalized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaxon,
}

func runTaxon(cmd *cobra.Command, args []string) error {
	match, err := matchMode(cmd)
	if err != nil {
		return err
	}

	search, _ := cmd.Flags().GetBool("search")
	allReleases, _ := cmd.Flags().GetBool("all-releases")

	mode := types.TaxonDescendantsView
	if search || allReleases {
		mode = types.TaxonSearchView
		if allReleases {
			mode = types.TaxonSearchAllReleasesView
		}
	}

	base := types.Query{
		Endpoint: types.EndpointTaxon,
		Match:    match,
		Taxon:    mode,
	}

	rs, err := runQueries(cmd, base, args)
	if err != nil {
		return err
	}
	return writeResults(cmd, rs, base.RecordKind())
}

func init() {
	taxonCmd.Flags().BoolP("search", "s", false, "search taxon names instead of listing descendants")
	taxonCmd.Flags().Bool("all-releases", false, "search taxon names across all GTDB releases (implies --search)")
	taxonCmd.Flags().BoolP("exact", "w", false, "match the whole taxon name (search mode)")
	taxonCmd.Flags().Bool("partial", false, "match any name containing the term (default, search mode)")

	rootCmd.AddCommand(taxonCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import "github.com/pdiddy/gtdb-cli/pkg/types"

// ComputeChanges derives per-release classification change notes from a
// taxonomic history. Events arrive newest release first; the map keys each
// release that changed something relative to the release before it.
func ComputeChanges(events []types.HistoryEvent) map[string][]string {
	changes := make(map[string][]string)

	// Walk oldest to newest, comparing consecutive releases.
	for i := len(events) - 1; i > 0; i-- {
		older, newer := events[i], events[i-1]

		var notes []string
		compareRank(older.Domain, newer.Domain, "Domain", &notes)
		compareRank(older.Phylum, newer.Phylum, "Phylum", &notes)
		compareRank(older.Class, newer.Class, "Class", &notes)
		compareRank(older.Order, newer.Order, "Order", &notes)
		compareRank(older.Family, newer.Family, "Family", &notes)
		compareRank(older.Genus, newer.Genus, "Genus", &notes)
		compareRank(older.Species, newer.Species, "Species", &notes)

		if len(notes) > 0 {
			changes[newer.Release] = notes
		}
	}
	return changes
}

func compareRank(prev, cur, rank string, notes *[]string) {
	switch {
	case prev != "" && cur != "" && prev != cur:
		*notes = append(*notes, rank+": "+prev+" -> "+cur)
	case prev != "" && cur == "":
		*notes = append(*notes, rank+" removed (was "+prev+")")
	case prev == "" && cur != "":
		*notes = append(*notes, rank+" added: "+cur)
	}
}

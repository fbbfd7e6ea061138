// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// RenderTable writes a human-readable rendering of the result set to w.
// Failed terms appear as visible error rows, never silently dropped.
func RenderTable(rs types.ResultSet, kind types.RecordKind, w io.Writer) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}

	switch kind {
	case types.KindGenomeCard:
		renderGenomeCards(rs, w)
	case types.KindGenomeMetadata:
		renderGenomeMetadata(rs, w)
	case types.KindGenomeHistory:
		renderHistory(rs, w)
	case types.KindTaxonDescendants:
		renderDescendants(rs, w)
	case types.KindTaxonMatches:
		renderMatches(rs, w)
	default:
		renderSearch(rs, w)
	}

	if failed := rs.Failed(); failed > 0 {
		fmt.Fprintf(w, "\n%d of %d term(s) failed\n", failed, len(rs))
	}
}

// RenderCounts writes one "term<TAB>count" line per term (--count).
func RenderCounts(rs types.ResultSet, w io.Writer) {
	for _, r := range rs {
		if !r.OK() {
			fmt.Fprintf(w, "%s\tERROR: %v\n", r.Term, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\n", r.Term, countRows(r.Record))
	}
}

// RenderGenomeIDs writes one genome ID per search hit (--id). Errors go to
// errw so the ID stream stays pipeable.
func RenderGenomeIDs(rs types.ResultSet, w, errw io.Writer) {
	for _, r := range rs {
		if !r.OK() {
			fmt.Fprintf(errw, "error: %s: %v\n", r.Term, r.Err)
			continue
		}
		if sr, ok := r.Record.(*types.SearchResult); ok {
			for _, hit := range sr.Rows {
				fmt.Fprintln(w, hit.Gid)
			}
		}
	}
}

func countRows(rec types.Record) int {
	switch v := rec.(type) {
	case *types.SearchResult:
		return len(v.Rows)
	case *types.TaxonDescendants:
		return len(v.Descendants)
	case *types.TaxonMatches:
		return len(v.Matches)
	case *types.GenomeHistory:
		return len(v.Events)
	default:
		return 1
	}
}

func errorRow(w io.Writer, term string, err error) {
	fmt.Fprintf(w, "%-30s  ERROR: %v\n", truncate(term, 30), err)
}

func renderSearch(rs types.ResultSet, w io.Writer) {
	fmt.Fprintf(w, "%-30s  %-18s  %-55s  %-3s\n", "Term", "Accession", "GTDB Taxonomy", "Rep")
	fmt.Fprintln(w, strings.Repeat("-", 112))
	hits := 0
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		sr := r.Record.(*types.SearchResult)
		if len(sr.Rows) == 0 {
			fmt.Fprintf(w, "%-30s  no matches\n", truncate(r.Term, 30))
			continue
		}
		for _, hit := range sr.Rows {
			rep := ""
			if hit.IsGTDBSpeciesRep {
				rep = "yes"
			}
			fmt.Fprintf(w, "%-30s  %-18s  %-55s  %-3s\n",
				truncate(r.Term, 30), hit.Accession, truncate(hit.GTDBTaxonomy, 55), rep)
			hits++
		}
	}
	fmt.Fprintf(w, "\n%d hit(s)\n", hits)
}

func renderGenomeCards(rs types.ResultSet, w io.Writer) {
	fmt.Fprintf(w, "%-18s  %-30s  %-12s  %-6s  %-8s  %s\n",
		"Accession", "Name", "Size (bp)", "GC%", "Contigs", "Completeness")
	fmt.Fprintln(w, strings.Repeat("-", 92))
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		card := r.Record.(*types.GenomeCard)
		fmt.Fprintf(w, "%-18s  %-30s  %-12s  %-6s  %-8s  %s\n",
			card.Genome.Accession,
			truncate(card.Genome.Name, 30),
			fmtInt64Ptr(card.MetadataNucleotide.GenomeSize),
			fmtFloat64Ptr(card.MetadataNucleotide.GCPercentage),
			fmtInt64Ptr(card.MetadataNucleotide.ContigCount),
			card.MetadataGene.CheckMCompleteness)
	}
}

func renderGenomeMetadata(rs types.ResultSet, w io.Writer) {
	fmt.Fprintf(w, "%-18s  %s\n", "Accession", "NCBI Surveillance")
	fmt.Fprintln(w, strings.Repeat("-", 38))
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		meta := r.Record.(*types.GenomeMetadata)
		fmt.Fprintf(w, "%-18s  %s\n", meta.Accession, fmtBoolPtr(meta.IsNCBISurveillance))
	}
}

// renderHistory prints a per-genome classification timeline, newest to
// oldest, annotating releases whose classification changed.
func renderHistory(rs types.ResultSet, w io.Writer) {
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		hist := r.Record.(*types.GenomeHistory)
		fmt.Fprintf(w, "Genome %s classification timeline (newest to oldest)\n\n", r.Term)
		for i, ev := range hist.Events {
			initial := i == len(hist.Events)-1
			notes, changed := hist.Changes[ev.Release]
			if !initial && !changed {
				continue
			}
			fmt.Fprintf(w, "  %s\n", ev.Release)
			printRank(w, "Domain", ev.Domain)
			printRank(w, "Phylum", ev.Phylum)
			printRank(w, "Class", ev.Class)
			printRank(w, "Order", ev.Order)
			printRank(w, "Family", ev.Family)
			printRank(w, "Genus", ev.Genus)
			printRank(w, "Species", ev.Species)
			if changed {
				for _, note := range notes {
					fmt.Fprintf(w, "    changed: %s\n", note)
				}
			} else {
				fmt.Fprintln(w, "    initial classification")
			}
			fmt.Fprintln(w)
		}
	}
}

func printRank(w io.Writer, rank, value string) {
	if value != "" {
		fmt.Fprintf(w, "    %-8s %s\n", rank+":", value)
	}
}

func renderDescendants(rs types.ResultSet, w io.Writer) {
	fmt.Fprintf(w, "%-30s  %-40s  %-10s  %s\n", "Term", "Descendant", "Genomes", "Type Material")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		td := r.Record.(*types.TaxonDescendants)
		if len(td.Descendants) == 0 {
			fmt.Fprintf(w, "%-30s  no descendants\n", truncate(r.Term, 30))
			continue
		}
		// Stable display order regardless of API ordering.
		descendants := append([]types.TaxonDescendant(nil), td.Descendants...)
		sort.SliceStable(descendants, func(i, j int) bool {
			return descendants[i].Taxon < descendants[j].Taxon
		})
		for _, d := range descendants {
			fmt.Fprintf(w, "%-30s  %-40s  %-10s  %s\n",
				truncate(r.Term, 30), truncate(d.Taxon, 40),
				fmtFloat64Ptr(d.Total), d.TypeMaterial)
		}
	}
}

func renderMatches(rs types.ResultSet, w io.Writer) {
	fmt.Fprintf(w, "%-30s  %s\n", "Term", "Match")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	total := 0
	for _, r := range rs {
		if !r.OK() {
			errorRow(w, r.Term, r.Err)
			continue
		}
		tm := r.Record.(*types.TaxonMatches)
		if len(tm.Matches) == 0 {
			fmt.Fprintf(w, "%-30s  no matches\n", truncate(r.Term, 30))
			continue
		}
		for _, m := range tm.Matches {
			fmt.Fprintf(w, "%-30s  %s\n", truncate(r.Term, 30), m)
			total++
		}
	}
	fmt.Fprintf(w, "\n%d match(es)\n", total)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

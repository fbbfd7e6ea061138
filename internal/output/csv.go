// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// csvHeader returns the fixed column set for a record kind. Column order is
// stable across runs; the header row is always written, even with zero
// successful rows.
func csvHeader(kind types.RecordKind) []string {
	switch kind {
	case types.KindGenomeCard:
		return []string{"accession", "name", "genome_size", "gc_percentage",
			"contig_count", "n50_contigs", "checkm_completeness",
			"checkm_contamination", "protein_count", "ncbi_taxonomy"}
	case types.KindGenomeMetadata:
		return []string{"accession", "is_ncbi_surveillance"}
	case types.KindGenomeHistory:
		return []string{"accession", "release", "domain", "phylum", "class",
			"order", "family", "genus", "species", "changes"}
	case types.KindTaxonDescendants:
		return []string{"term", "taxon", "total", "n_desc_children",
			"is_genome", "is_rep", "type_material", "ncbi_tax_id"}
	case types.KindTaxonMatches:
		return []string{"term", "match"}
	default:
		return []string{"term", "gid", "accession", "ncbi_org_name",
			"ncbi_taxonomy", "gtdb_taxonomy", "is_gtdb_species_rep",
			"is_ncbi_type_material"}
	}
}

// csvRows flattens one successful term into CSV data rows. Multi-row
// records (search hits, descendants, matches, history events) produce one
// row per element.
func csvRows(term string, rec types.Record) [][]string {
	switch v := rec.(type) {
	case *types.SearchResult:
		rows := make([][]string, 0, len(v.Rows))
		for _, hit := range v.Rows {
			rows = append(rows, []string{term, hit.Gid, hit.Accession,
				hit.NCBIOrgName, hit.NCBITaxonomy, hit.GTDBTaxonomy,
				strconv.FormatBool(hit.IsGTDBSpeciesRep),
				strconv.FormatBool(hit.IsNCBITypeMaterial)})
		}
		return rows
	case *types.GenomeCard:
		return [][]string{{v.Genome.Accession, v.Genome.Name,
			fmtInt64Ptr(v.MetadataNucleotide.GenomeSize),
			fmtFloat64Ptr(v.MetadataNucleotide.GCPercentage),
			fmtInt64Ptr(v.MetadataNucleotide.ContigCount),
			fmtInt64Ptr(v.MetadataNucleotide.N50Contigs),
			v.MetadataGene.CheckMCompleteness,
			v.MetadataGene.CheckMContamination,
			v.MetadataGene.ProteinCount,
			v.MetadataTaxonomy.NCBITaxonomy}}
	case *types.GenomeMetadata:
		return [][]string{{v.Accession, fmtBoolPtr(v.IsNCBISurveillance)}}
	case *types.GenomeHistory:
		rows := make([][]string, 0, len(v.Events))
		for i, ev := range v.Events {
			notes := ""
			if n, ok := v.Changes[ev.Release]; ok {
				notes = joinNotes(n)
			} else if i == len(v.Events)-1 {
				notes = "initial classification"
			}
			rows = append(rows, []string{term, ev.Release, ev.Domain,
				ev.Phylum, ev.Class, ev.Order, ev.Family, ev.Genus,
				ev.Species, notes})
		}
		return rows
	case *types.TaxonDescendants:
		rows := make([][]string, 0, len(v.Descendants))
		for _, d := range v.Descendants {
			rows = append(rows, []string{term, d.Taxon, fmtFloat64Ptr(d.Total),
				d.NDescChildren, fmtBoolPtr(d.IsGenome), fmtBoolPtr(d.IsRep),
				d.TypeMaterial, fmtInt64Ptr(d.NCBITaxID)})
		}
		return rows
	case *types.TaxonMatches:
		rows := make([][]string, 0, len(v.Matches))
		for _, m := range v.Matches {
			rows = append(rows, []string{term, m})
		}
		return rows
	default:
		return nil
	}
}

// WriteCSVFile renders the successful terms to a CSV file at path. Failed
// terms are omitted from data rows and summarized on errw instead; data
// rows stay schema-clean. The file is staged and only renamed into place
// once every row serialized.
func WriteCSVFile(rs types.ResultSet, kind types.RecordKind, path string, errw io.Writer) error {
	err := writeFileStaged(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader(kind)); err != nil {
			return err
		}
		for _, r := range rs {
			if !r.OK() {
				continue
			}
			for _, row := range csvRows(r.Term, r.Record) {
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return err
	}

	if failed := rs.Failed(); failed > 0 {
		fmt.Fprintf(errw, "warning: %d of %d term(s) failed and were omitted from %s (use a JSON target for per-term errors)\n",
			failed, len(rs), path)
	}
	return nil
}

func joinNotes(notes []string) string {
	out := ""
	for i, n := range notes {
		if i > 0 {
			out += "; "
		}
		out += n
	}
	return out
}

func fmtInt64Ptr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func fmtFloat64Ptr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtBoolPtr(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RecordKind tags the Record variants. The kind also selects the CSV column
// schema in the output layer.
type RecordKind string

const (
	KindSearch           RecordKind = "search"
	KindGenomeCard       RecordKind = "genome_card"
	KindGenomeMetadata   RecordKind = "genome_metadata"
	KindGenomeHistory    RecordKind = "genome_history"
	KindTaxonDescendants RecordKind = "taxon_descendants"
	KindTaxonMatches     RecordKind = "taxon_matches"
)

// Record is the tagged union of per-endpoint query outcomes. Exactly one
// variant is produced per query, selected by Query.RecordKind.
type Record interface {
	Kind() RecordKind
}

// SearchHit is one genome row returned by the search endpoint. Field names
// mirror the remote contract; unrecognized response fields are ignored.
type SearchHit struct {
	Gid                string `json:"gid"`
	Accession          string `json:"accession"`
	NCBIOrgName        string `json:"ncbiOrgName"`
	NCBITaxonomy       string `json:"ncbiTaxonomy"`
	GTDBTaxonomy       string `json:"gtdbTaxonomy"`
	IsGTDBSpeciesRep   bool   `json:"isGtdbSpeciesRep"`
	IsNCBITypeMaterial bool   `json:"isNcbiTypeMaterial"`
}

// SearchResult holds the hits for one search term. Zero rows is a valid
// outcome, distinct from a malformed response.
type SearchResult struct {
	Rows      []SearchHit `json:"rows"`
	TotalRows int         `json:"totalRows"`
}

func (*SearchResult) Kind() RecordKind { return KindSearch }

// GenomeSummary identifies a genome on the card view.
type GenomeSummary struct {
	Accession string `json:"accession"`
	Name      string `json:"name"`
}

// NucleotideMetadata holds assembly statistics. Optional values stay nil
// when the API omits them; numbers pass through untransformed.
type NucleotideMetadata struct {
	TRNAAACount    *int64   `json:"trna_aa_count,omitempty"`
	ContigCount    *int64   `json:"contig_count,omitempty"`
	N50Contigs     *int64   `json:"n50_contigs,omitempty"`
	LongestContig  *int64   `json:"longest_contig,omitempty"`
	ScaffoldCount  *int64   `json:"scaffold_count,omitempty"`
	N50Scaffolds   *int64   `json:"n50_scaffolds,omitempty"`
	GenomeSize     *int64   `json:"genome_size,omitempty"`
	GCPercentage   *float64 `json:"gc_percentage,omitempty"`
	AmbiguousBases *int64   `json:"ambiguous_bases,omitempty"`
}

// GeneMetadata holds gene-calling and quality statistics. The API serves
// these as strings; they are passed through as provided.
type GeneMetadata struct {
	CheckMCompleteness        string `json:"checkm_completeness,omitempty"`
	CheckMContamination       string `json:"checkm_contamination,omitempty"`
	CheckMStrainHeterogeneity string `json:"checkm_strain_heterogeneity,omitempty"`
	ProteinCount              string `json:"protein_count,omitempty"`
	CodingDensity             string `json:"coding_density,omitempty"`
	SSUCount                  string `json:"ssu_count,omitempty"`
}

// TaxonomyMetadata holds GTDB and NCBI taxonomy assignments.
type TaxonomyMetadata struct {
	NCBITaxonomy             string `json:"ncbi_taxonomy,omitempty"`
	NCBITaxonomyUnfiltered   string `json:"ncbi_taxonomy_unfiltered,omitempty"`
	GTDBRepresentative       bool   `json:"gtdb_representative"`
	GTDBGenomeRepresentative string `json:"gtdb_genome_representative,omitempty"`
	NCBITypeMaterial         string `json:"ncbi_type_material_designation,omitempty"`
	GTDBDomain               string `json:"gtdbDomain,omitempty"`
	GTDBPhylum               string `json:"gtdbPhylum,omitempty"`
	GTDBClass                string `json:"gtdbClass,omitempty"`
	GTDBOrder                string `json:"gtdbOrder,omitempty"`
	GTDBFamily               string `json:"gtdbFamily,omitempty"`
	GTDBGenus                string `json:"gtdbGenus,omitempty"`
	GTDBSpecies              string `json:"gtdbSpecies,omitempty"`
}

// GenomeCard is the default genome view.
type GenomeCard struct {
	Genome             GenomeSummary      `json:"genome"`
	MetadataNucleotide NucleotideMetadata `json:"metadata_nucleotide"`
	MetadataGene       GeneMetadata       `json:"metadata_gene"`
	MetadataTaxonomy   TaxonomyMetadata   `json:"metadata_taxonomy"`
}

func (*GenomeCard) Kind() RecordKind { return KindGenomeCard }

// GenomeMetadata is the reduced metadata view (--metadata).
type GenomeMetadata struct {
	Accession          string `json:"accession"`
	IsNCBISurveillance *bool  `json:"isNcbiSurveillance,omitempty"`
}

func (*GenomeMetadata) Kind() RecordKind { return KindGenomeMetadata }

// HistoryEvent is one release entry in a genome's taxonomic history.
// The API returns single-letter rank keys.
type HistoryEvent struct {
	Release string `json:"release"`
	Domain  string `json:"d"`
	Phylum  string `json:"p"`
	Class   string `json:"c"`
	Order   string `json:"o"`
	Family  string `json:"f"`
	Genus   string `json:"g"`
	Species string `json:"s"`
}

// GenomeHistory is the taxon-history view (--history). Events keep the
// API order (newest release first). Changes maps a release to the
// classification changes introduced relative to the previous release.
type GenomeHistory struct {
	Events  []HistoryEvent      `json:"events"`
	Changes map[string][]string `json:"changes,omitempty"`
}

func (*GenomeHistory) Kind() RecordKind { return KindGenomeHistory }

// TaxonDescendant is one direct descendant of a taxon.
type TaxonDescendant struct {
	Taxon         string   `json:"taxon"`
	Total         *float64 `json:"total,omitempty"`
	NDescChildren string   `json:"nDescChildren,omitempty"`
	IsGenome      *bool    `json:"isGenome,omitempty"`
	IsRep         *bool    `json:"isRep,omitempty"`
	TypeMaterial  string   `json:"typeMaterial,omitempty"`
	BergeysURL    string   `json:"bergeysUrl,omitempty"`
	SeqcodeURL    string   `json:"seqcodeUrl,omitempty"`
	LPSNURL       string   `json:"lpsnUrl,omitempty"`
	NCBITaxID     *int64   `json:"ncbiTaxId,omitempty"`
}

// TaxonDescendants is the default taxon view.
type TaxonDescendants struct {
	Descendants []TaxonDescendant `json:"descendants"`
}

func (*TaxonDescendants) Kind() RecordKind { return KindTaxonDescendants }

// TaxonMatches is the taxon search view (--search). Matches keep the
// API order.
type TaxonMatches struct {
	Matches []string `json:"matches"`
}

func (*TaxonMatches) Kind() RecordKind { return KindTaxonMatches }

// TermResult pairs an input term with its outcome: exactly one of Record
// and Err is set.
type TermResult struct {
	Term   string
	Record Record
	Err    error
}

// OK reports whether the term succeeded.
func (r TermResult) OK() bool { return r.Err == nil }

// ResultSet holds one TermResult per input term, in input order.
type ResultSet []TermResult

// Failed returns the number of failed terms.
func (rs ResultSet) Failed() int {
	n := 0
	for _, r := range rs {
		if !r.OK() {
			n++
		}
	}
	return n
}

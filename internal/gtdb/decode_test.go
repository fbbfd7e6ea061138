// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

var (
	searchQuery        = types.Query{Endpoint: types.EndpointSearch, Term: "g__Escherichia"}
	cardQuery          = types.Query{Endpoint: types.EndpointGenome, Term: "GCA_001512625.1"}
	metadataQuery      = types.Query{Endpoint: types.EndpointGenome, Term: "GCA_001512625.1", Genome: types.GenomeMetadataView}
	historyQuery       = types.Query{Endpoint: types.EndpointGenome, Term: "GCA_001512625.1", Genome: types.GenomeHistoryView}
	descendantsQuery   = types.Query{Endpoint: types.EndpointTaxon, Term: "g__Escherichia"}
	taxonSearchQuery   = types.Query{Endpoint: types.EndpointTaxon, Term: "Escherichia", Taxon: types.TaxonSearchView}
)

const sampleSearchJSON = `{
  "rows": [
    {
      "gid": "GCA_001512625.1",
      "accession": "GCA_001512625.1",
      "ncbiOrgName": "Escherichia coli",
      "ncbiTaxonomy": "d__Bacteria; ...; s__Escherichia coli",
      "gtdbTaxonomy": "d__Bacteria; ...; s__Escherichia coli",
      "isGtdbSpeciesRep": true,
      "isNcbiTypeMaterial": false
    },
    {
      "gid": "GCA_003018455.1",
      "accession": "GCA_003018455.1",
      "ncbiOrgName": "Escherichia marmotae",
      "ncbiTaxonomy": "d__Bacteria; ...; s__Escherichia marmotae",
      "gtdbTaxonomy": "d__Bacteria; ...; s__Escherichia marmotae",
      "isGtdbSpeciesRep": false,
      "isNcbiTypeMaterial": true
    }
  ],
  "totalRows": 2
}`

func TestDecodeSearch(t *testing.T) {
	rec, err := Decode(searchQuery, []byte(sampleSearchJSON))
	require.NoError(t, err)

	sr, ok := rec.(*types.SearchResult)
	require.True(t, ok)
	require.Len(t, sr.Rows, 2)
	assert.Equal(t, 2, sr.TotalRows)
	assert.Equal(t, "GCA_001512625.1", sr.Rows[0].Accession)
	assert.True(t, sr.Rows[0].IsGTDBSpeciesRep)
	assert.Equal(t, "Escherichia marmotae", sr.Rows[1].NCBIOrgName)
	assert.True(t, sr.Rows[1].IsNCBITypeMaterial)
}

func TestDecodeSearch_ZeroHitsIsValid(t *testing.T) {
	rec, err := Decode(searchQuery, []byte(`{"rows": [], "totalRows": 0}`))
	require.NoError(t, err)

	sr := rec.(*types.SearchResult)
	assert.Empty(t, sr.Rows)
	assert.Equal(t, 0, sr.TotalRows)
}

func TestDecodeSearch_IgnoresUnknownFields(t *testing.T) {
	body := `{"rows": [{"accession": "GCA_1.1", "someFutureField": 42}], "totalRows": 1}`
	rec, err := Decode(searchQuery, []byte(body))
	require.NoError(t, err)
	assert.Len(t, rec.(*types.SearchResult).Rows, 1)
}

func TestDecode_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		query    types.Query
		body     string
		wantKind DecodeErrorKind
	}{
		{"truncated JSON", searchQuery, `{"rows": [`, DecodeMalformedJSON},
		{"not JSON at all", searchQuery, `<html>busy</html>`, DecodeMalformedJSON},
		{"rows has wrong type", searchQuery, `{"rows": "nope", "totalRows": 0}`, DecodeSchemaMismatch},
		{"rows absent", searchQuery, `{"totalRows": 0}`, DecodeMissingField},
		{"hit without accession", searchQuery, `{"rows": [{"gid": "x"}], "totalRows": 1}`, DecodeMissingField},
		{"card is an array", cardQuery, `[]`, DecodeSchemaMismatch},
		{"card without genome", cardQuery, `{"metadata_nucleotide": {}}`, DecodeMissingField},
		{"metadata without accession", metadataQuery, `{"isNcbiSurveillance": false}`, DecodeMissingField},
		{"history is an object", historyQuery, `{"release": "R220"}`, DecodeSchemaMismatch},
		{"history event without release", historyQuery, `[{"d": "d__Bacteria"}]`, DecodeMissingField},
		{"descendant without taxon", descendantsQuery, `[{"total": 3}]`, DecodeMissingField},
		{"matches absent", taxonSearchQuery, `{"totalRows": 0}`, DecodeMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.query, []byte(tt.body))
			require.Error(t, err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantKind, de.Kind)
		})
	}
}

func TestDecodeGenomeCard(t *testing.T) {
	body := `{
	  "genome": {"accession": "GCA_001512625.1", "name": "Escherichia coli strain X"},
	  "metadata_nucleotide": {"genome_size": 4993714, "gc_percentage": 50.5, "contig_count": 129},
	  "metadata_gene": {"checkm_completeness": "99.2", "protein_count": "4811"},
	  "metadata_taxonomy": {"ncbi_taxonomy": "d__Bacteria; ...; s__Escherichia coli", "gtdb_representative": true}
	}`
	rec, err := Decode(cardQuery, []byte(body))
	require.NoError(t, err)

	card := rec.(*types.GenomeCard)
	assert.Equal(t, "GCA_001512625.1", card.Genome.Accession)
	require.NotNil(t, card.MetadataNucleotide.GenomeSize)
	assert.Equal(t, int64(4993714), *card.MetadataNucleotide.GenomeSize)
	require.NotNil(t, card.MetadataNucleotide.GCPercentage)
	assert.InDelta(t, 50.5, *card.MetadataNucleotide.GCPercentage, 0.001)
	assert.Equal(t, "99.2", card.MetadataGene.CheckMCompleteness)
	assert.True(t, card.MetadataTaxonomy.GTDBRepresentative)
}

func TestDecodeGenomeCard_CamelCaseTaxonomyKey(t *testing.T) {
	// The taxonomy block has shipped under both key spellings.
	body := `{
	  "genome": {"accession": "GCA_001512625.1"},
	  "metadataTaxonomy": {"ncbi_taxonomy": "d__Bacteria"}
	}`
	rec, err := Decode(cardQuery, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "d__Bacteria", rec.(*types.GenomeCard).MetadataTaxonomy.NCBITaxonomy)
}

func TestDecodeGenomeCard_OmittedStatsStayNil(t *testing.T) {
	rec, err := Decode(cardQuery, []byte(`{"genome": {"accession": "GCA_1.1"}}`))
	require.NoError(t, err)

	card := rec.(*types.GenomeCard)
	assert.Nil(t, card.MetadataNucleotide.GenomeSize)
	assert.Nil(t, card.MetadataNucleotide.GCPercentage)
}

func TestDecodeGenomeMetadata(t *testing.T) {
	rec, err := Decode(metadataQuery, []byte(`{"accession": "GCA_001512625.1", "isNcbiSurveillance": false}`))
	require.NoError(t, err)

	meta := rec.(*types.GenomeMetadata)
	assert.Equal(t, "GCA_001512625.1", meta.Accession)
	require.NotNil(t, meta.IsNCBISurveillance)
	assert.False(t, *meta.IsNCBISurveillance)

	// The surveillance flag is optional.
	rec, err = Decode(metadataQuery, []byte(`{"accession": "GCA_001512625.1"}`))
	require.NoError(t, err)
	assert.Nil(t, rec.(*types.GenomeMetadata).IsNCBISurveillance)
}

const sampleHistoryJSON = `[
  {"release": "R220", "d": "d__Bacteria", "p": "p__Pseudomonadota", "c": "c__Gammaproteobacteria",
   "o": "o__Enterobacterales", "f": "f__Enterobacteriaceae", "g": "g__Escherichia", "s": "s__Escherichia coli"},
  {"release": "R207", "d": "d__Bacteria", "p": "p__Proteobacteria", "c": "c__Gammaproteobacteria",
   "o": "o__Enterobacterales", "f": "f__Enterobacteriaceae", "g": "g__Escherichia", "s": "s__Escherichia coli"},
  {"release": "R95", "d": "d__Bacteria", "p": "p__Proteobacteria", "c": "c__Gammaproteobacteria",
   "o": "o__Enterobacterales", "f": "f__Enterobacteriaceae", "g": "g__Escherichia", "s": "s__Escherichia flexneri"}
]`

func TestDecodeGenomeHistory(t *testing.T) {
	rec, err := Decode(historyQuery, []byte(sampleHistoryJSON))
	require.NoError(t, err)

	hist := rec.(*types.GenomeHistory)
	require.Len(t, hist.Events, 3)

	// API order (newest first) is preserved.
	assert.Equal(t, "R220", hist.Events[0].Release)
	assert.Equal(t, "R95", hist.Events[2].Release)

	// Changes are keyed by the release that introduced them.
	require.Contains(t, hist.Changes, "R207")
	assert.Contains(t, hist.Changes["R207"], "Species: s__Escherichia flexneri -> s__Escherichia coli")
	require.Contains(t, hist.Changes, "R220")
	assert.Contains(t, hist.Changes["R220"], "Phylum: p__Proteobacteria -> p__Pseudomonadota")
	assert.NotContains(t, hist.Changes, "R95")
}

func TestDecodeTaxonDescendants(t *testing.T) {
	body := `[
	  {"taxon": "s__Escherichia coli", "total": 38772, "isGenome": false, "isRep": false, "typeMaterial": "type strain of species", "ncbiTaxId": 562},
	  {"taxon": "s__Escherichia albertii", "total": 533}
	]`
	rec, err := Decode(descendantsQuery, []byte(body))
	require.NoError(t, err)

	td := rec.(*types.TaxonDescendants)
	require.Len(t, td.Descendants, 2)
	assert.Equal(t, "s__Escherichia coli", td.Descendants[0].Taxon)
	require.NotNil(t, td.Descendants[0].Total)
	assert.InDelta(t, 38772, *td.Descendants[0].Total, 0.001)
	require.NotNil(t, td.Descendants[0].NCBITaxID)
	assert.Equal(t, int64(562), *td.Descendants[0].NCBITaxID)
	assert.Nil(t, td.Descendants[1].IsGenome)
}

func TestDecodeTaxonMatches(t *testing.T) {
	rec, err := Decode(taxonSearchQuery, []byte(`{"matches": ["g__Escherichia", "s__Escherichia coli"]}`))
	require.NoError(t, err)

	tm := rec.(*types.TaxonMatches)
	assert.Equal(t, []string{"g__Escherichia", "s__Escherichia coli"}, tm.Matches)

	rec, err = Decode(taxonSearchQuery, []byte(`{"matches": []}`))
	require.NoError(t, err)
	assert.Empty(t, rec.(*types.TaxonMatches).Matches)
}

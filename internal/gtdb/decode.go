// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import (
	"encoding/json"
	"errors"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// Decode maps a 2xx response body onto the Record variant selected by the
// query flags. It never branches on the JSON shape beyond what populating
// that variant requires: a syntax error is DecodeMalformedJSON, a type
// mismatch against the target variant is DecodeSchemaMismatch, and an
// absent required field is DecodeMissingField. Unrecognized fields are
// ignored so newer API releases keep decoding.
func Decode(q types.Query, body []byte) (types.Record, error) {
	switch q.RecordKind() {
	case types.KindGenomeCard:
		return decodeGenomeCard(body)
	case types.KindGenomeMetadata:
		return decodeGenomeMetadata(body)
	case types.KindGenomeHistory:
		return decodeGenomeHistory(body)
	case types.KindTaxonDescendants:
		return decodeTaxonDescendants(body)
	case types.KindTaxonMatches:
		return decodeTaxonMatches(body)
	default:
		return decodeSearch(body)
	}
}

// unmarshal classifies encoding/json failures into the decode taxonomy.
func unmarshal(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &DecodeError{Kind: DecodeSchemaMismatch, Err: err}
		}
		return &DecodeError{Kind: DecodeMalformedJSON, Err: err}
	}
	return nil
}

func decodeSearch(body []byte) (types.Record, error) {
	var wire struct {
		Rows      *[]types.SearchHit `json:"rows"`
		TotalRows int                `json:"totalRows"`
	}
	if err := unmarshal(body, &wire); err != nil {
		return nil, err
	}
	if wire.Rows == nil {
		return nil, missingField("rows")
	}
	for _, hit := range *wire.Rows {
		if hit.Accession == "" {
			return nil, missingField("rows[].accession")
		}
	}
	return &types.SearchResult{Rows: *wire.Rows, TotalRows: wire.TotalRows}, nil
}

func decodeGenomeCard(body []byte) (types.Record, error) {
	// The card payload has shipped the taxonomy block under both snake and
	// camel case across API releases; accept either.
	var wire struct {
		Genome                *types.GenomeSummary     `json:"genome"`
		MetadataNucleotide    types.NucleotideMetadata `json:"metadata_nucleotide"`
		MetadataGene          types.GeneMetadata       `json:"metadata_gene"`
		MetadataTaxonomy      *types.TaxonomyMetadata  `json:"metadata_taxonomy"`
		MetadataTaxonomyCamel *types.TaxonomyMetadata  `json:"metadataTaxonomy"`
	}
	if err := unmarshal(body, &wire); err != nil {
		return nil, err
	}
	if wire.Genome == nil {
		return nil, missingField("genome")
	}
	if wire.Genome.Accession == "" {
		return nil, missingField("genome.accession")
	}

	card := &types.GenomeCard{
		Genome:             *wire.Genome,
		MetadataNucleotide: wire.MetadataNucleotide,
		MetadataGene:       wire.MetadataGene,
	}
	switch {
	case wire.MetadataTaxonomy != nil:
		card.MetadataTaxonomy = *wire.MetadataTaxonomy
	case wire.MetadataTaxonomyCamel != nil:
		card.MetadataTaxonomy = *wire.MetadataTaxonomyCamel
	}
	return card, nil
}

func decodeGenomeMetadata(body []byte) (types.Record, error) {
	var wire struct {
		Accession          *string `json:"accession"`
		IsNCBISurveillance *bool   `json:"isNcbiSurveillance"`
	}
	if err := unmarshal(body, &wire); err != nil {
		return nil, err
	}
	if wire.Accession == nil || *wire.Accession == "" {
		return nil, missingField("accession")
	}
	return &types.GenomeMetadata{
		Accession:          *wire.Accession,
		IsNCBISurveillance: wire.IsNCBISurveillance,
	}, nil
}

func decodeGenomeHistory(body []byte) (types.Record, error) {
	var events []types.HistoryEvent
	if err := unmarshal(body, &events); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if ev.Release == "" {
			return nil, missingField("release")
		}
	}
	return &types.GenomeHistory{Events: events, Changes: ComputeChanges(events)}, nil
}

func decodeTaxonDescendants(body []byte) (types.Record, error) {
	var descendants []types.TaxonDescendant
	if err := unmarshal(body, &descendants); err != nil {
		return nil, err
	}
	for _, d := range descendants {
		if d.Taxon == "" {
			return nil, missingField("taxon")
		}
	}
	return &types.TaxonDescendants{Descendants: descendants}, nil
}

func decodeTaxonMatches(body []byte) (types.Record, error) {
	var wire struct {
		Matches *[]string `json:"matches"`
	}
	if err := unmarshal(body, &wire); err != nil {
		return nil, err
	}
	if wire.Matches == nil {
		return nil, missingField("matches")
	}
	return &types.TaxonMatches{Matches: *wire.Matches}, nil
}

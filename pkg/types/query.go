// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the gtdb-cli pipeline:
// the normalized Query, the typed Record variants decoded from API
// responses, the per-term ResultSet, and client configuration.
package types

// Endpoint identifies which logical GTDB API family a query targets.
type Endpoint int

const (
	EndpointSearch Endpoint = iota
	EndpointGenome
	EndpointTaxon
)

// String returns the subcommand name for the endpoint.
func (e Endpoint) String() string {
	switch e {
	case EndpointGenome:
		return "genome"
	case EndpointTaxon:
		return "taxon"
	default:
		return "search"
	}
}

// MatchMode selects between substring and exact-name matching.
// GTDB taxonomy terms are case-sensitive (rank prefixes like g__ and s__
// are semantically significant), so terms are never case-normalized.
type MatchMode int

const (
	MatchPartial MatchMode = iota
	MatchExact
)

// GenomeMode selects the genome endpoint view. The three views are mutually
// exclusive by construction: the CLI maps --metadata/--history flags to a
// single mode value at the boundary.
type GenomeMode int

const (
	GenomeCardView GenomeMode = iota
	GenomeMetadataView
	GenomeHistoryView
)

// TaxonMode selects the taxon endpoint view.
type TaxonMode int

const (
	TaxonDescendantsView TaxonMode = iota
	TaxonSearchView
	TaxonSearchAllReleasesView
)

// SearchField is the remote searchField parameter value.
type SearchField string

const (
	FieldAll     SearchField = "all"
	FieldGTDBTax SearchField = "gtdb_tax"
	FieldNCBITax SearchField = "ncbi_tax"
	FieldNCBIOrg SearchField = "ncbi_org"
	FieldNCBIID  SearchField = "ncbi_id"
)

// SearchFieldFrom maps the user-facing --field value to the remote
// parameter value. Unknown values fall back to searching all fields.
func SearchFieldFrom(s string) SearchField {
	switch s {
	case "acc":
		return FieldNCBIID
	case "org":
		return FieldNCBIOrg
	case "gtdb":
		return FieldGTDBTax
	case "ncbi":
		return FieldNCBITax
	default:
		return FieldAll
	}
}

// Query is the normalized description of one API lookup. Endpoint selects
// the API family; Term is the user-supplied taxonomy name or accession,
// trimmed and non-empty. Genome and Taxon modes are only meaningful for
// their respective endpoints; the remaining fields are search filters.
type Query struct {
	Endpoint Endpoint
	Term     string
	Match    MatchMode
	Genome   GenomeMode
	Taxon    TaxonMode

	// Search endpoint filters.
	Field            SearchField
	RepsOnly         bool
	TypeMaterialOnly bool
}

// RecordKind returns the Record variant this query decodes to. The variant
// is determined solely by the query flags, never by inspecting the response.
func (q Query) RecordKind() RecordKind {
	switch q.Endpoint {
	case EndpointGenome:
		switch q.Genome {
		case GenomeMetadataView:
			return KindGenomeMetadata
		case GenomeHistoryView:
			return KindGenomeHistory
		default:
			return KindGenomeCard
		}
	case EndpointTaxon:
		if q.Taxon == TaxonDescendantsView {
			return KindTaxonDescendants
		}
		return KindTaxonMatches
	default:
		return KindSearch
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gtdb implements the query pipeline against the GTDB REST API:
// building endpoint requests, fetching over HTTPS, and decoding responses
// into the typed Record variants.
package gtdb

import (
	"net/url"
	"strconv"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

const (
	// searchPageSize matches the remote cap used by the search endpoint.
	searchPageSize = 1000

	// taxonSearchLimit bounds taxon name search results.
	taxonSearchLimit = 1000
)

// BuildRequest maps a query onto an endpoint path and query parameters.
// It performs no I/O and is a pure function of its input. Terms are
// URL-escaped but never case-normalized: GTDB rank prefixes (g__, s__, ...)
// are case-sensitive. Exact and Partial match modes always produce distinct
// parameters.
func BuildRequest(q types.Query) (string, url.Values) {
	switch q.Endpoint {
	case types.EndpointGenome:
		return "/genome/" + url.PathEscape(q.Term) + "/" + genomeView(q.Genome), nil

	case types.EndpointTaxon:
		switch q.Taxon {
		case types.TaxonSearchView, types.TaxonSearchAllReleasesView:
			path := "/taxon/search/" + url.PathEscape(q.Term)
			if q.Taxon == types.TaxonSearchAllReleasesView {
				path += "/all-releases"
			}
			params := url.Values{}
			params.Set("limit", strconv.Itoa(taxonSearchLimit))
			if q.Match == types.MatchExact {
				params.Set("exact", "true")
			}
			return path, params
		default:
			return "/taxon/" + url.PathEscape(q.Term), nil
		}

	default:
		params := url.Values{}
		params.Set("search", q.Term)
		params.Set("page", "1")
		params.Set("itemsPerPage", strconv.Itoa(searchPageSize))
		field := q.Field
		if field == "" {
			field = types.FieldAll
		}
		params.Set("searchField", string(field))
		// The search parameter is contains-based; exact mode narrows it
		// with the exact-name filter.
		if q.Match == types.MatchExact {
			params.Set("filterText", q.Term)
		}
		if q.RepsOnly {
			params.Set("gtdbSpeciesRepOnly", "true")
		}
		if q.TypeMaterialOnly {
			params.Set("ncbiTypeMaterialOnly", "true")
		}
		return "/search/gtdb", params
	}
}

// RequestURL joins the base host with the built path and parameters.
func RequestURL(baseURL string, q types.Query) string {
	path, params := BuildRequest(q)
	u := baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func genomeView(m types.GenomeMode) string {
	switch m {
	case types.GenomeMetadataView:
		return "metadata"
	case types.GenomeHistoryView:
		return "taxon-history"
	default:
		return "card"
	}
}

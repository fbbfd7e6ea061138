// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// Usage errors: fatal before any network activity.
var (
	ErrEmptyTerm    = errors.New("empty query term")
	ErrInvalidFlags = errors.New("invalid flag combination")
)

// TransportErrorKind classifies transport failures.
type TransportErrorKind int

const (
	TransportConnectionFailed TransportErrorKind = iota
	TransportTimeout
	TransportHTTP
)

// TransportError reports a failed fetch. For TransportHTTP, StatusCode and
// Body carry the non-2xx response; the decoder never sees such a body.
type TransportError struct {
	Kind       TransportErrorKind
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case TransportTimeout:
		return fmt.Sprintf("request timed out: %s", e.URL)
	case TransportHTTP:
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	default:
		return fmt.Sprintf("connection failed: %s: %v", e.URL, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeErrorKind classifies decoding failures.
type DecodeErrorKind int

const (
	DecodeMalformedJSON DecodeErrorKind = iota
	DecodeSchemaMismatch
	DecodeMissingField
)

// DecodeError reports a response body that could not be mapped onto the
// Record variant selected by the query flags.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeSchemaMismatch:
		return fmt.Sprintf("unexpected response shape: %v", e.Err)
	case DecodeMissingField:
		return fmt.Sprintf("response missing required field %q", e.Field)
	default:
		return fmt.Sprintf("malformed JSON response: %v", e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

func missingField(name string) *DecodeError {
	return &DecodeError{Kind: DecodeMissingField, Field: name}
}

// ValidateQuery checks the invariants the request builder relies on:
// a trimmed, non-empty term and modes consistent with the endpoint.
func ValidateQuery(q types.Query) error {
	if strings.TrimSpace(q.Term) == "" {
		return ErrEmptyTerm
	}
	if q.Endpoint != types.EndpointGenome && q.Genome != types.GenomeCardView {
		return fmt.Errorf("%w: genome view requested for %s endpoint", ErrInvalidFlags, q.Endpoint)
	}
	if q.Endpoint != types.EndpointTaxon && q.Taxon != types.TaxonDescendantsView {
		return fmt.Errorf("%w: taxon view requested for %s endpoint", ErrInvalidFlags, q.Endpoint)
	}
	return nil
}

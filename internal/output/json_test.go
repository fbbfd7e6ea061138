// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

func TestWriteJSON(t *testing.T) {
	rs := types.ResultSet{
		{Term: "g__Escherichia", Record: &types.TaxonMatches{Matches: []string{"g__Escherichia"}}},
		{Term: "g__Broken", Err: errors.New("HTTP 500 from https://example.org")},
		{Term: "g__Salmonella", Record: &types.TaxonMatches{Matches: []string{"g__Salmonella"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(rs, &buf))

	var entries []struct {
		Term  string          `json:"term"`
		OK    bool            `json:"ok"`
		Data  json.RawMessage `json:"data"`
		Error *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 3)

	// Input order survives, failures included.
	assert.Equal(t, "g__Escherichia", entries[0].Term)
	assert.True(t, entries[0].OK)
	assert.Nil(t, entries[0].Error)
	assert.JSONEq(t, `{"matches": ["g__Escherichia"]}`, string(entries[0].Data))

	assert.Equal(t, "g__Broken", entries[1].Term)
	assert.False(t, entries[1].OK)
	require.NotNil(t, entries[1].Error)
	assert.Contains(t, *entries[1].Error, "HTTP 500")
	assert.Equal(t, "null", string(entries[1].Data))

	assert.Equal(t, "g__Salmonella", entries[2].Term)
}

func TestWriteJSON_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(types.ResultSet{}, &buf))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteJSONFile(t *testing.T) {
	rs := types.ResultSet{
		{Term: "GCA_1.1", Record: &types.GenomeMetadata{Accession: "GCA_1.1"}},
	}
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSONFile(rs, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "GCA_1.1", entries[0]["term"])
}

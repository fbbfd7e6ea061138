// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

// jsonEntry is the per-term envelope of the JSON output target.
type jsonEntry struct {
	Term  string       `json:"term"`
	OK    bool         `json:"ok"`
	Data  types.Record `json:"data"`
	Error *string      `json:"error"`
}

func jsonEntries(rs types.ResultSet) []jsonEntry {
	entries := make([]jsonEntry, len(rs))
	for i, r := range rs {
		entry := jsonEntry{Term: r.Term, OK: r.OK(), Data: r.Record}
		if r.Err != nil {
			msg := r.Err.Error()
			entry.Error = &msg
		}
		entries[i] = entry
	}
	return entries
}

// WriteJSON renders the full result set, error entries included, in input
// order to w.
func WriteJSON(rs types.ResultSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonEntries(rs))
}

// WriteJSONFile renders the full result set to a staged file at path.
func WriteJSONFile(rs types.ResultSet, path string) error {
	return writeFileStaged(path, func(w io.Writer) error {
		return WriteJSON(rs, w)
	})
}

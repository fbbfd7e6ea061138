// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gtdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gtdb-cli/pkg/types"
)

func TestComputeChanges(t *testing.T) {
	tests := []struct {
		name   string
		events []types.HistoryEvent
		want   map[string][]string
	}{
		{
			name:   "no events",
			events: nil,
			want:   map[string][]string{},
		},
		{
			name: "single release has nothing to compare",
			events: []types.HistoryEvent{
				{Release: "R220", Domain: "d__Bacteria", Species: "s__Escherichia coli"},
			},
			want: map[string][]string{},
		},
		{
			name: "identical releases produce no notes",
			events: []types.HistoryEvent{
				{Release: "R220", Genus: "g__Escherichia", Species: "s__Escherichia coli"},
				{Release: "R207", Genus: "g__Escherichia", Species: "s__Escherichia coli"},
			},
			want: map[string][]string{},
		},
		{
			name: "rename keyed by the newer release",
			events: []types.HistoryEvent{
				{Release: "R220", Phylum: "p__Pseudomonadota"},
				{Release: "R207", Phylum: "p__Proteobacteria"},
			},
			want: map[string][]string{
				"R220": {"Phylum: p__Proteobacteria -> p__Pseudomonadota"},
			},
		},
		{
			name: "rank added and removed",
			events: []types.HistoryEvent{
				{Release: "R220", Genus: "g__Escherichia"},
				{Release: "R207", Species: "s__Escherichia coli"},
			},
			want: map[string][]string{
				"R220": {
					"Genus added: g__Escherichia",
					"Species removed (was s__Escherichia coli)",
				},
			},
		},
		{
			name: "changes accumulate per release pair",
			events: []types.HistoryEvent{
				{Release: "R220", Phylum: "p__Pseudomonadota", Species: "s__Escherichia coli"},
				{Release: "R207", Phylum: "p__Proteobacteria", Species: "s__Escherichia coli"},
				{Release: "R95", Phylum: "p__Proteobacteria", Species: "s__Escherichia flexneri"},
			},
			want: map[string][]string{
				"R207": {"Species: s__Escherichia flexneri -> s__Escherichia coli"},
				"R220": {"Phylum: p__Proteobacteria -> p__Pseudomonadota"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeChanges(tt.events)
			require.Len(t, got, len(tt.want))
			for release, notes := range tt.want {
				assert.Equal(t, notes, got[release], "release %s", release)
			}
		})
	}
}

func TestComputeChanges_NoteOrderFollowsRankOrder(t *testing.T) {
	events := []types.HistoryEvent{
		{Release: "R220", Domain: "d__Bacteria", Phylum: "p__B", Species: "s__b"},
		{Release: "R207", Domain: "d__Bacteria", Phylum: "p__A", Species: "s__a"},
	}
	got := ComputeChanges(events)
	require.Contains(t, got, "R220")
	assert.Equal(t, []string{
		"Phylum: p__A -> p__B",
		"Species: s__a -> s__b",
	}, got["R220"])
}

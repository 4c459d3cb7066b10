package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "weeding and top dressing", Normalize("  Weeding   and\tTop Dressing "))
	assert.Equal(t, "", Normalize("   "))
}

func TestMatches(t *testing.T) {
	tbl := Default()
	tests := []struct {
		activity string
		task     string
		want     bool
	}{
		// exact, normalization included
		{"Weeding and Top Dressing", "Weeding and Top Dressing", true},
		{"  WEEDING ", "weeding", true},
		// alias table
		{"carring compost", "Carrying Compost", true},
		{"manure transportation", "carrying compost", true},
		{"tranporting compost to block 4", "carrying compost", true}, // starts-with variant
		// activity extends task
		{"Sowing media preparation", "Sowing", true},
		{"spraying aphids", "spraying", true},
		// task compounds several activities
		{"Spraying", "Spraying/Drenching", true},
		{"drenching", "spraying/drenching", true},
		// word-level boundary, never substring
		{"Harvesting fine beans", "Harvest", false},
		{"weedin", "weeding", false},
		{"", "weeding", false},
		{"weeding", "", false},
		{"scouting", "top dressing", false},
	}
	for _, tc := range tests {
		t.Run(tc.activity+"_vs_"+tc.task, func(t *testing.T) {
			assert.Equal(t, tc.want, tbl.Matches(tc.activity, tc.task))
		})
	}
}

func TestMatchesInjectedTable(t *testing.T) {
	tbl := &Table{Version: "test", Aliases: map[string][]string{
		"mulching": {"laying mulch"},
	}}
	assert.True(t, tbl.Matches("Laying Mulch", "Mulching"))
	// the default table's aliases are not visible through a substitute table
	assert.False(t, tbl.Matches("manure transportation", "carrying compost"))
}

func TestParseTable(t *testing.T) {
	tbl, err := ParseTable([]byte(`
version: "2026-01"
aliases:
  " Carrying  Compost ":
    - "Carring Compost"
`))
	require.NoError(t, err)
	assert.Equal(t, "2026-01", tbl.Version)
	assert.Equal(t, []string{"carring compost"}, tbl.Aliases["carrying compost"])

	_, err = ParseTable([]byte(`aliases: {}`))
	assert.Error(t, err, "version is required")

	_, err = ParseTable([]byte("version: x\naliases:\n  weeding:\n    - \"  \"\n"))
	assert.Error(t, err, "blank variants are rejected")
}

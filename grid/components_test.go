package grid

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents_TwoRegions splits a 4×4 board with a wall column.
//
//	. X . .
//	. X . .
//	. X X X
//	. X . .
//
// Expected: regions of sizes 2, 4 and 4.
func TestComponents_TwoRegions(t *testing.T) {
	g, err := New([]string{
		".X..",
		".X..",
		".XXX",
		".X..",
	}, Point{}, Point{Row: 3, Col: 0})
	require.NoError(t, err)

	comps := g.Components()
	sizes := make([]int, 0, len(comps))
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4, 4}, sizes)

	assert.True(t, g.Connected(Point{}, Point{Row: 3, Col: 0}))
	assert.False(t, g.Connected(Point{}, Point{Row: 0, Col: 2}))
	assert.False(t, g.Connected(Point{}, Point{Row: 0, Col: 1}), "walls are never connected")
}

// TestShortestSteps covers the reachable, trivial and unreachable cases.
func TestShortestSteps(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		end   Point
		steps int
		err   error
	}{
		{"OpenRoom", []string{"...", "...", "..."}, Point{Row: 2, Col: 2}, 4, nil},
		{"Detour", []string{".X.", ".X.", "..."}, Point{Row: 0, Col: 2}, 6, nil},
		{"SameCell", []string{".."}, Point{}, 0, nil},
		{"Walled", []string{".X.", "XX.", "..."}, Point{Row: 2, Col: 2}, 0, ErrNoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := tc.rows
			if len(rows) == 1 {
				rows = []string{"..", ".."}
			}
			g, err := New(rows, Point{}, tc.end)
			require.NoError(t, err)

			steps, err := g.ShortestSteps()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.steps, steps)
		})
	}
}

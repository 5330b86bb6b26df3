// SPDX-License-Identifier: MIT
// Package: mazebot/generate
//
// shapes.go — fixed-shape boards used as scenarios.

package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazebot/grid"
)

const (
	minOpen     = 1
	minCorridor = 2
	minRing     = 5
	minPerfect  = 1
)

// Open returns an n×n board without walls, start (0,0), end (n-1,n-1).
func Open(n int) (*grid.Grid, error) {
	if n < minOpen {
		return nil, fmt.Errorf("Open: n=%d (must be ≥ %d): %w", n, minOpen, ErrTooSmall)
	}
	rows := make([]string, n)
	for r := range rows {
		rows[r] = strings.Repeat(".", n)
	}
	return grid.New(rows, grid.Point{}, grid.Point{Row: n - 1, Col: n - 1})
}

// Corridor returns an n×n board whose only open cells form row 0. Start is
// the west end, end is the east end.
func Corridor(n int) (*grid.Grid, error) {
	if n < minCorridor {
		return nil, fmt.Errorf("Corridor: n=%d (must be ≥ %d): %w", n, minCorridor, ErrTooSmall)
	}
	rows := make([]string, n)
	rows[0] = strings.Repeat(".", n)
	for r := 1; r < n; r++ {
		rows[r] = strings.Repeat("X", n)
	}
	return grid.New(rows, grid.Point{}, grid.Point{Col: n - 1})
}

// Ring returns an open n×n board whose centre cell is the start, sealed by
// the eight surrounding walls. The end is the top-left corner.
func Ring(n int) (*grid.Grid, error) {
	if n < minRing {
		return nil, fmt.Errorf("Ring: n=%d (must be ≥ %d): %w", n, minRing, ErrTooSmall)
	}
	mid := n / 2
	rows := make([]string, n)
	for r := range rows {
		row := []byte(strings.Repeat(".", n))
		if r >= mid-1 && r <= mid+1 {
			for c := mid - 1; c <= mid+1; c++ {
				if r != mid || c != mid {
					row[c] = grid.WallCode
				}
			}
		}
		rows[r] = string(row)
	}
	return grid.New(rows, grid.Point{Row: mid, Col: mid}, grid.Point{})
}

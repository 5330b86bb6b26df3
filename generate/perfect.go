// SPDX-License-Identifier: MIT
// Package: mazebot/generate
//
// perfect.go — randomized Kruskal maze carving.
//
// Canonical model:
//   • Rooms sit on odd coordinates (2i+1, 2j+1) of a (2k+1)-sided board.
//   • Every pair of orthogonally adjacent rooms shares one wall cell.
//   • Walls are visited in a shuffled order; a wall is knocked out when it
//     separates two disjoint sets (union-find), which yields a spanning tree.
//   • With WithLoops(p), each wall Kruskal kept is knocked out with
//     probability p afterwards.
//
// Complexity:
//   • Time:  O(k² · α(k²)).
//   • Space: O(k²) for the union-find arrays and the wall list.

package generate

import (
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
)

// wall is the shared cell between two lattice rooms a and b.
type wall struct {
	a, b     int
	row, col int
}

// Perfect returns a (2k+1)×(2k+1) maze. Start is the top-left room (1,1), end
// the bottom-right room (2k-1,2k-1). Requires WithSeed or WithRand.
func Perfect(k int, opts ...Option) (*grid.Grid, error) {
	if k < minPerfect {
		return nil, fmt.Errorf("Perfect: k=%d (must be ≥ %d): %w", k, minPerfect, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Perfect: %w", ErrNeedRand)
	}

	n := 2*k + 1
	board := make([][]byte, n)
	for r := range board {
		board[r] = make([]byte, n)
		for c := range board[r] {
			board[r][c] = grid.WallCode
		}
	}
	room := func(i, j int) int { return i*k + j }
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			board[2*i+1][2*j+1] = '.'
		}
	}

	// Collect walls between right and bottom neighbours, row-major.
	walls := make([]wall, 0, 2*k*(k-1))
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if j+1 < k {
				walls = append(walls, wall{a: room(i, j), b: room(i, j+1), row: 2*i + 1, col: 2*j + 2})
			}
			if i+1 < k {
				walls = append(walls, wall{a: room(i, j), b: room(i+1, j), row: 2*i + 2, col: 2*j + 1})
			}
		}
	}
	cfg.rng.Shuffle(len(walls), func(x, y int) { walls[x], walls[y] = walls[y], walls[x] })

	// Union-find with path compression and union by rank.
	parent := make([]int, k*k)
	rank := make([]int, k*k)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		return true
	}

	var kept []wall
	for _, w := range walls {
		if union(w.a, w.b) {
			board[w.row][w.col] = '.'
		} else {
			kept = append(kept, w)
		}
	}
	if cfg.loops > 0 {
		for _, w := range kept {
			if cfg.rng.Float64() < cfg.loops {
				board[w.row][w.col] = '.'
			}
		}
	}

	rows := make([]string, n)
	for r := range board {
		rows[r] = string(board[r])
	}

	return grid.New(rows, grid.Point{Row: 1, Col: 1}, grid.Point{Row: n - 2, Col: n - 2})
}

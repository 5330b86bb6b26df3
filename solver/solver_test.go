package solver_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/route"
	"github.com/katalvlaran/mazebot/search"
	"github.com/katalvlaran/mazebot/solver"
)

// Scenario A: fully open 3×3 room.
func TestSolve_OpenRoom(t *testing.T) {
	g, err := generate.Open(3)
	require.NoError(t, err)

	sol, err := solver.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "SSENNESS", sol.Directions)
	assert.Equal(t, 8, sol.Steps)
	assert.Equal(t, 9, sol.Nodes)
	assert.Equal(t, 12, sol.Edges)
	assert.Equal(t, search.ModeDepth, sol.Mode)

	sol, err = solver.Solve(context.Background(), g, solver.WithMode(search.ModeShortest))
	require.NoError(t, err)
	assert.Equal(t, "EESS", sol.Directions)
	assert.Equal(t, 4, sol.Steps)
}

// Scenario B: a single corridor compacts to two nodes.
func TestSolve_Corridor(t *testing.T) {
	g, err := generate.Corridor(6)
	require.NoError(t, err)

	sol, err := solver.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "EEEEE", sol.Directions)
	assert.Equal(t, 2, sol.Nodes)
	assert.Equal(t, 1, sol.Edges)
}

// Scenario C: start walled in.
func TestSolve_Disconnected(t *testing.T) {
	g, err := generate.Ring(7)
	require.NoError(t, err)

	for _, m := range []search.Mode{search.ModeDepth, search.ModeBreadth, search.ModeShortest} {
		sol, err := solver.Solve(context.Background(), g, solver.WithMode(m))
		assert.Nil(t, sol)
		assert.ErrorIs(t, err, solver.ErrDisconnected)
		assert.ErrorIs(t, err, search.ErrExhausted)
		assert.Equal(t, "disconnected", solver.Classify(err))
	}
}

// Scenario D: start == end needs no search.
func TestSolve_StartIsEnd(t *testing.T) {
	p := grid.Point{Row: 1, Col: 1}
	g, err := grid.New([]string{"X.X", "...", "X.X"}, p, p)
	require.NoError(t, err)

	sol, err := solver.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "", sol.Directions)
	assert.Zero(t, sol.Steps)
	assert.Zero(t, sol.Nodes)
}

func TestSolve_Malformed(t *testing.T) {
	_, err := solver.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, solver.ErrMalformedInput)
	assert.Equal(t, "malformed", solver.Classify(err))

	_, gerr := grid.New([]string{"..", "."}, grid.Point{}, grid.Point{})
	require.Error(t, gerr)
	assert.Equal(t, "malformed", solver.Classify(gerr))

	wrapped := solver.Malformed(gerr)
	assert.ErrorIs(t, wrapped, solver.ErrMalformedInput)
	assert.ErrorIs(t, wrapped, grid.ErrNonSquare)
	assert.Same(t, wrapped, solver.Malformed(wrapped))
	assert.NoError(t, solver.Malformed(nil))
}

func TestSolve_Cancelled(t *testing.T) {
	g, err := generate.Perfect(10, generate.WithSeed(3))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solver.Solve(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, solver.ErrInvariant)
	assert.Equal(t, "canceled", solver.Classify(err))
}

func TestSolve_BadMode(t *testing.T) {
	g, err := generate.Open(2)
	require.NoError(t, err)
	_, err = solver.Solve(context.Background(), g, solver.WithMode(search.Mode(9)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Equal(t, "other", solver.Classify(err))
}

// TestSolve_Generated: answers replay to the end in every mode, with or
// without verification, and the shortest mode matches the BFS oracle.
func TestSolve_Generated(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := generate.Perfect(int(4+seed%7), generate.WithSeed(seed), generate.WithLoops(0.25))
		require.NoError(t, err)
		oracle, err := g.ShortestSteps()
		require.NoError(t, err)

		for _, m := range []search.Mode{search.ModeDepth, search.ModeBreadth, search.ModeShortest} {
			for _, verify := range []bool{true, false} {
				name := fmt.Sprintf("seed=%d/%s/verify=%t", seed, m, verify)
				sol, err := solver.Solve(context.Background(), g, solver.WithMode(m), solver.WithVerify(verify))
				require.NoError(t, err, name)
				end, err := route.Replay(g, sol.Directions)
				require.NoError(t, err, name)
				assert.Equal(t, g.End(), end, name)
				if m == search.ModeShortest {
					assert.Equal(t, oracle, sol.Steps, name)
				}
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g, err := generate.Perfect(15, generate.WithSeed(11), generate.WithLoops(0.1))
	require.NoError(t, err)
	a, err := solver.Solve(context.Background(), g)
	require.NoError(t, err)
	b, err := solver.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, a.Directions, b.Directions)
}

func TestSolve_LogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &buf))
	g, err := generate.Corridor(4)
	require.NoError(t, err)

	_, err = solver.Solve(ctx, g)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="maze solved"`)
	assert.Contains(t, buf.String(), "steps=3")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "", solver.Classify(nil))
	assert.Equal(t, "invariant", solver.Classify(fmt.Errorf("%w: x", solver.ErrInvariant)))
	assert.Equal(t, "other", solver.Classify(errors.New("boom")))
}

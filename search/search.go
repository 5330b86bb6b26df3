package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazebot/graph"
)

// walker encapsulates mutable search state.
type walker struct {
	graph      *graph.Graph
	opts       Options
	ctx        context.Context
	frontier   Frontier
	expanded   []bool
	discovered []bool
	res        *Result
}

// Search walks g from g.Start() towards g.End() using the frontier selected
// by WithMode (ModeDepth by default).
//
// On success the returned Result has Found == true and a predecessor chain
// from End back to Start. If the frontier empties first, Search returns the
// partial Result together with ErrExhausted. Other failures: ErrGraphNil,
// ErrOptionViolation, ErrInvariant, context errors and wrapped OnExpand
// errors.
func Search(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Valid(g.Start()) || !g.Valid(g.End()) {
		return nil, fmt.Errorf("%w: graph has no start or end node", ErrInvariant)
	}

	n := g.Len()
	w := &walker{
		graph:      g,
		opts:       o,
		ctx:        o.Ctx,
		frontier:   newFrontier(o.Mode),
		expanded:   make([]bool, n),
		discovered: make([]bool, n),
		res: &Result{
			Mode:  o.Mode,
			Start: g.Start(),
			End:   g.End(),
			Pred:  make([]graph.NodeID, n),
			Dist:  make([]int, n),
			Order: make([]graph.NodeID, 0, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Pred[i] = graph.NoNode
		w.res.Dist[i] = -1
	}

	// Seed the frontier with the start node (no predecessor)
	w.res.Dist[g.Start()] = 0
	w.discovered[g.Start()] = true
	w.frontier.Push(g.Start(), 0)

	return w.res, w.loop()
}

// loop pops frontier entries until the end node is popped, the frontier
// empties, or an error occurs.
func (w *walker) loop() error {
	for w.frontier.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.frontier.Pop()
		if !w.graph.Valid(cur) {
			return fmt.Errorf("%w: frontier produced handle %d", ErrInvariant, cur)
		}
		// ModeDepth re-expands popped duplicates.
		if w.opts.Mode != ModeDepth && w.expanded[cur] {
			continue
		}
		if cur == w.res.End {
			w.res.Order = append(w.res.Order, cur)
			w.res.Found = true
			return nil
		}
		if err := w.opts.OnExpand(cur); err != nil {
			return fmt.Errorf("search: OnExpand error at node %d: %w", cur, err)
		}
		w.expand(cur)
	}

	return ErrExhausted
}

// expand examines the neighbours of cur in graph.Directions order, records
// accepted ones and pushes them, then marks cur expanded.
func (w *walker) expand(cur graph.NodeID) {
	for _, d := range graph.Directions {
		nbr := w.graph.Neighbor(cur, d)
		if nbr == graph.NoNode || w.expanded[nbr] {
			continue
		}
		cost := w.res.Dist[cur] + w.graph.Steps(cur, nbr)
		if !w.accept(nbr, cost) {
			continue
		}
		w.res.Pred[nbr] = cur
		w.res.Dist[nbr] = cost
		w.discovered[nbr] = true
		w.frontier.Push(nbr, cost)
	}
	w.expanded[cur] = true
	w.res.Order = append(w.res.Order, cur)
}

// accept decides whether reaching nbr at cost replaces what is recorded.
//
//	ModeDepth:    always (latest pusher wins).
//	ModeBreadth:  only on first discovery.
//	ModeShortest: only when strictly cheaper.
func (w *walker) accept(nbr graph.NodeID, cost int) bool {
	switch w.opts.Mode {
	case ModeBreadth:
		return !w.discovered[nbr]
	case ModeShortest:
		return w.res.Dist[nbr] < 0 || cost < w.res.Dist[nbr]
	default:
		return true
	}
}

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazebot/graph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrExhausted is returned when the frontier empties without reaching
	// the end node: start and end are disconnected in the compacted graph.
	ErrExhausted = errors.New("search: frontier exhausted before reaching end")

	// ErrInvariant is returned when the search meets an invalid node handle.
	ErrInvariant = errors.New("search: invariant violation")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode for an unrecognised name.
	ErrUnknownMode = errors.New("search: unknown mode")

	// ErrUnreached is returned by Result.PathTo for a node never reached.
	ErrUnreached = errors.New("search: node not reached")
)

// Mode selects the frontier discipline.
type Mode int

const (
	// ModeDepth uses a LIFO stack: reproducible, not necessarily shortest.
	ModeDepth Mode = iota
	// ModeBreadth uses a FIFO queue: fewest decision points.
	ModeBreadth
	// ModeShortest uses a min-heap on walked cells: fewest steps.
	ModeShortest
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeDepth:
		return "depth"
	case ModeBreadth:
		return "breadth"
	case ModeShortest:
		return "shortest"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a name to a Mode. Accepted names (case-insensitive):
// "", "depth", "legacy", "dfs"; "breadth", "bfs"; "shortest", "dijkstra".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "depth", "legacy", "dfs":
		return ModeDepth, nil
	case "breadth", "bfs":
		return ModeBreadth, nil
	case "shortest", "dijkstra":
		return ModeShortest, nil
	}
	return ModeDepth, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Mode selects the frontier discipline. Default ModeDepth.
	Mode Mode

	// OnExpand is called before a node's neighbours are examined.
	// Returning an error aborts the search and propagates that error.
	OnExpand func(id graph.NodeID) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, ModeDepth and a
// no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Mode:     ModeDepth,
		OnExpand: func(graph.NodeID) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the frontier discipline.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeDepth, ModeBreadth, ModeShortest:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(id graph.NodeID) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search.
//
//   - Pred[id] is the node id was last reached from, NoNode if never reached
//     (and always NoNode for the start node).
//   - Dist[id] is the number of cells walked from start to id along the
//     recorded predecessor chain, -1 if never reached.
//   - Order lists expanded nodes in expansion order, ending with the end
//     node on success. ModeDepth may list a node more than once.
type Result struct {
	Mode  Mode
	Start graph.NodeID
	End   graph.NodeID
	Pred  []graph.NodeID
	Dist  []int
	Order []graph.NodeID
	Found bool
}

// Predecessor returns the node id was reached from, or NoNode.
func (r *Result) Predecessor(id graph.NodeID) graph.NodeID {
	if id < 0 || int(id) >= len(r.Pred) {
		return graph.NoNode
	}
	return r.Pred[id]
}

// Distance returns the walked cells to id and whether id was reached.
func (r *Result) Distance(id graph.NodeID) (int, bool) {
	if id < 0 || int(id) >= len(r.Dist) || r.Dist[id] < 0 {
		return 0, false
	}
	return r.Dist[id], true
}

// PathTo reconstructs the node sequence start → … → id.
// Returns ErrUnreached if id was never reached, or ErrInvariant if the
// predecessor chain does not lead back to the start.
func (r *Result) PathTo(id graph.NodeID) ([]graph.NodeID, error) {
	if _, ok := r.Distance(id); !ok {
		return nil, fmt.Errorf("%w: node %d", ErrUnreached, id)
	}
	// build reversed path
	path := []graph.NodeID{}
	for cur := id; ; cur = r.Predecessor(cur) {
		if len(path) > len(r.Pred) {
			return nil, fmt.Errorf("%w: predecessor cycle at node %d", ErrInvariant, cur)
		}
		if cur == graph.NoNode {
			return nil, fmt.Errorf("%w: chain from node %d breaks before start", ErrInvariant, id)
		}
		path = append(path, cur)
		if cur == r.Start {
			break
		}
	}
	// reverse to get start → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

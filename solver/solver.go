package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/route"
	"github.com/katalvlaran/mazebot/search"
)

var (
	// ErrMalformedInput marks boards that cannot be solved as given.
	ErrMalformedInput = errors.New("solver: malformed input")

	// ErrDisconnected marks boards whose end cannot be reached from start.
	ErrDisconnected = errors.New("solver: start and end are disconnected")

	// ErrInvariant marks internal consistency failures.
	ErrInvariant = errors.New("solver: invariant violation")
)

// Solution is a solved maze.
type Solution struct {
	Directions string        // compass letters, "" when start == end
	Steps      int           // len(Directions)
	Nodes      int           // decision points in the compacted graph
	Edges      int           // undirected links in the compacted graph
	Expanded   int           // nodes popped and expanded by the search
	Mode       search.Mode   // frontier discipline used
	Elapsed    time.Duration // wall time of Solve
}

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	Mode   search.Mode
	Verify bool // validate the graph and replay the answer before returning
}

// DefaultOptions returns ModeDepth with verification on.
func DefaultOptions() Options {
	return Options{Mode: search.ModeDepth, Verify: true}
}

// WithMode selects the search frontier.
func WithMode(m search.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithVerify toggles graph validation and answer replay.
func WithVerify(on bool) Option {
	return func(o *Options) { o.Verify = on }
}

// Solve finds a route from g.Start() to g.End() and returns it as a
// direction string.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (*Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrMalformedInput)
	}

	log := ctxlog.FromContext(ctx)
	began := time.Now()

	if g.Start() == g.End() {
		log.DebugContext(ctx, "start equals end, nothing to search", "at", g.Start().String())
		return &Solution{Mode: o.Mode, Elapsed: time.Since(began)}, nil
	}

	gr, err := graph.Build(g, graph.WithContext(ctx))
	if err != nil {
		return nil, classify(err)
	}
	if o.Verify {
		if err := gr.Validate(g); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
	}
	stats := gr.Stats()

	res, err := search.Search(gr, search.WithContext(ctx), search.WithMode(o.Mode))
	if err != nil {
		return nil, classify(err)
	}

	dirs, err := route.Encode(gr, res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if o.Verify {
		end, err := route.Replay(g, dirs)
		if err != nil {
			return nil, fmt.Errorf("%w: replay: %w", ErrInvariant, err)
		}
		if end != g.End() {
			return nil, fmt.Errorf("%w: replay ends at %v, want %v", ErrInvariant, end, g.End())
		}
	}

	sol := &Solution{
		Directions: dirs,
		Steps:      route.Length(dirs),
		Nodes:      stats.Nodes,
		Edges:      stats.Edges,
		Expanded:   len(res.Order),
		Mode:       o.Mode,
		Elapsed:    time.Since(began),
	}
	log.DebugContext(ctx, "maze solved",
		"size", g.Size(),
		"mode", sol.Mode.String(),
		"nodes", sol.Nodes,
		"edges", sol.Edges,
		"expanded", sol.Expanded,
		"steps", sol.Steps,
		"elapsed", sol.Elapsed,
	)
	return sol, nil
}

// classify wraps a stage error in the matching taxonomy sentinel.
func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, search.ErrExhausted):
		return fmt.Errorf("%w: %w", ErrDisconnected, err)
	case errors.Is(err, graph.ErrGridNil):
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	case errors.Is(err, search.ErrOptionViolation):
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvariant, err)
}

// Malformed wraps a board construction error as ErrMalformedInput. Callers
// that build a grid from external input use it so all input failures share
// one sentinel.
func Malformed(err error) error {
	if err == nil || errors.Is(err, ErrMalformedInput) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedInput, err)
}

// Classify names the taxonomy class of err for logs and metrics:
// "malformed", "disconnected", "invariant", "canceled" or "other".
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedInput), isGridError(err):
		return "malformed"
	case errors.Is(err, ErrDisconnected):
		return "disconnected"
	case errors.Is(err, ErrInvariant):
		return "invariant"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "other"
}

func isGridError(err error) bool {
	for _, target := range []error{
		grid.ErrEmptyGrid, grid.ErrNonSquare, grid.ErrBadCell,
		grid.ErrOutOfBounds, grid.ErrWallEndpoint,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

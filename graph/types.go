package graph

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazebot/grid"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrGridNil is returned when Build receives a nil grid.
	ErrGridNil = errors.New("graph: grid is nil")

	// ErrAsymmetricLink indicates a link whose reverse slot does not point back.
	ErrAsymmetricLink = errors.New("graph: asymmetric link")

	// ErrMisalignedLink indicates a link that does not follow a straight run of
	// open, node-free cells in its direction.
	ErrMisalignedLink = errors.New("graph: misaligned link")
)

// NodeID is a handle into a Graph's node arena.
type NodeID int

// NoNode marks an absent neighbour or predecessor.
const NoNode NodeID = -1

// Direction selects one of a node's four neighbour slots.
type Direction uint8

const (
	// Left is the neighbour with the same row and a smaller column.
	Left Direction = iota
	// Right is the neighbour with the same row and a larger column.
	Right
	// Up is the neighbour with the same column and a smaller row.
	Up
	// Down is the neighbour with the same column and a larger row.
	Down
)

// Directions is the canonical neighbour order. Search visits slots in this
// order, which decides which path is found when several exist.
var Directions = [4]Direction{Left, Right, Up, Down}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Delta returns the (dRow, dCol) of a single step in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "invalid"
}

// Node is a decision point of the maze.
//
// Row and Col are its board position, unique within a Graph.
// Links holds one neighbour handle per Direction, NoNode when absent.
type Node struct {
	Row   int
	Col   int
	Links [4]NodeID
}

// Point returns the node position as a grid.Point.
func (n Node) Point() grid.Point {
	return grid.Point{Row: n.Row, Col: n.Col}
}

// Neighbor returns the handle linked in direction d, or NoNode.
func (n Node) Neighbor(d Direction) NodeID {
	return n.Links[d]
}

// Degree counts the present links.
func (n Node) Degree() int {
	deg := 0
	for _, id := range n.Links {
		if id != NoNode {
			deg++
		}
	}
	return deg
}

// Graph is the compacted maze: an arena of Nodes plus the Start and End
// handles. It is built once by Build and is read-only afterwards, so a single
// Graph may be searched any number of times.
type Graph struct {
	size  int      // board side length
	nodes []Node   // arena; NodeID indexes into it
	index []NodeID // row-major board index → NodeID or NoNode
	start NodeID
	end   NodeID
}

// Stats summarises a Graph's shape.
type Stats struct {
	Nodes     int // total nodes
	Edges     int // undirected links
	DeadEnds  int // nodes with exactly one link
	Junctions int // nodes with three or four links
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds hooks and limits for Build.
type Options struct {
	// Ctx allows cancellation of very large builds; checked once per row.
	Ctx context.Context

	// OnNode is called right after a node is created and linked backwards.
	// Its Down and Right slots are not final yet at that moment.
	OnNode func(id NodeID, n Node)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnNode: func(NodeID, Node) {},
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

// WithOnNode registers a callback invoked for every created node.
func WithOnNode(fn func(id NodeID, n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

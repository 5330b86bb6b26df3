package route

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/mazebot/graph"
	"github.com/katalvlaran/mazebot/search"
)

var (
	// ErrBrokenChain is returned when the predecessor chain from end does not
	// lead back to start.
	ErrBrokenChain = errors.New("route: broken predecessor chain")

	// ErrDegenerateSegment is returned when consecutive route nodes are not
	// on one row or one column.
	ErrDegenerateSegment = errors.New("route: degenerate segment")

	// ErrNilInput is returned when the graph or result is nil.
	ErrNilInput = errors.New("route: nil graph or result")
)

// Heading is a compass direction on the board. North is towards row 0.
type Heading byte

const (
	North Heading = 'N'
	South Heading = 'S'
	East  Heading = 'E'
	West  Heading = 'W'
)

// Letter returns the single-letter code.
func (h Heading) Letter() byte { return byte(h) }

// String returns the letter as a string.
func (h Heading) String() string { return string(rune(h)) }

// Delta returns the (dRow, dCol) of one step.
func (h Heading) Delta() (int, int) {
	switch h {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// ParseHeading maps a letter to a Heading.
func ParseHeading(r rune) (Heading, bool) {
	switch h := Heading(r); h {
	case North, South, East, West:
		return h, true
	}
	return 0, false
}

// Run is one straight hop: Steps cells walked towards Heading.
type Run struct {
	Heading Heading
	Steps   int
}

// String renders the run as its letter repeated Steps times.
func (r Run) String() string {
	if r.Steps <= 0 {
		return ""
	}
	return strings.Repeat(r.Heading.String(), r.Steps)
}

// Runs returns the hops from start to end recorded in res, one Run per
// graph edge. Adjacent runs may share a heading when the route passes
// straight through a junction.
//
// A result whose start and end coincide yields no runs.
func Runs(g *graph.Graph, res *search.Result) ([]Run, error) {
	if g == nil || res == nil {
		return nil, ErrNilInput
	}
	if res.Start == res.End {
		return nil, nil
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: end node %d was not reached", ErrBrokenChain, res.End)
	}

	var rev []Run
	for cur, hops := res.End, 0; cur != res.Start; hops++ {
		if hops > g.Len() {
			return nil, fmt.Errorf("%w: cycle through node %d", ErrBrokenChain, cur)
		}
		prev := res.Predecessor(cur)
		if prev == graph.NoNode {
			return nil, fmt.Errorf("%w: node %d has no predecessor", ErrBrokenChain, cur)
		}
		run, err := segment(g, prev, cur)
		if err != nil {
			return nil, err
		}
		rev = append(rev, run)
		cur = prev
	}

	// chain was walked end → start
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}

// segment describes the hop from node a to node b.
func segment(g *graph.Graph, a, b graph.NodeID) (Run, error) {
	from, okA := g.Node(a)
	to, okB := g.Node(b)
	if !okA || !okB {
		return Run{}, fmt.Errorf("%w: invalid handle in hop %d→%d", ErrBrokenChain, a, b)
	}

	switch {
	case from.Col == to.Col && from.Row < to.Row:
		return Run{Heading: South, Steps: to.Row - from.Row}, nil
	case from.Col == to.Col && from.Row > to.Row:
		return Run{Heading: North, Steps: from.Row - to.Row}, nil
	case from.Row == to.Row && from.Col < to.Col:
		return Run{Heading: East, Steps: to.Col - from.Col}, nil
	case from.Row == to.Row && from.Col > to.Col:
		return Run{Heading: West, Steps: from.Col - to.Col}, nil
	}
	return Run{}, fmt.Errorf("%w: %v → %v", ErrDegenerateSegment, from.Point(), to.Point())
}

// Encode returns the direction string for res: the concatenation of Runs.
// It returns "" when start and end coincide. On error no partial string is
// returned.
func Encode(g *graph.Graph, res *search.Result) (string, error) {
	runs, err := Runs(g, res)
	if err != nil {
		return "", err
	}
	return Join(runs), nil
}

// Join concatenates runs.
func Join(runs []Run) string {
	n := 0
	for _, r := range runs {
		if r.Steps > 0 {
			n += r.Steps
		}
	}
	var b strings.Builder
	b.Grow(n)
	for _, r := range runs {
		for i := 0; i < r.Steps; i++ {
			b.WriteByte(r.Heading.Letter())
		}
	}
	return b.String()
}

// Length returns the number of steps in a direction string.
func Length(directions string) int {
	return utf8.RuneCountInString(directions)
}

package search

import (
	"container/heap"

	"github.com/katalvlaran/mazebot/graph"
)

// Frontier holds discovered but not yet expanded nodes. Implementations
// differ only in which entry Pop returns.
type Frontier interface {
	// Push adds id with the walked cost that reached it.
	Push(id graph.NodeID, cost int)
	// Pop removes and returns the next entry. Callers check Len first.
	Pop() graph.NodeID
	// Len returns the number of pending entries.
	Len() int
}

// NewStack returns a last-in-first-out Frontier. Cost is ignored.
func NewStack() Frontier {
	return &stack{}
}

// NewQueue returns a first-in-first-out Frontier. Cost is ignored.
func NewQueue() Frontier {
	return &queue{}
}

// NewPriority returns a Frontier that pops the lowest cost first; equal
// costs pop in push order.
func NewPriority() Frontier {
	return &priority{}
}

// newFrontier picks the Frontier for a mode.
func newFrontier(m Mode) Frontier {
	switch m {
	case ModeBreadth:
		return NewQueue()
	case ModeShortest:
		return NewPriority()
	default:
		return NewStack()
	}
}

type stack struct {
	items []graph.NodeID
}

func (s *stack) Push(id graph.NodeID, _ int) { s.items = append(s.items, id) }

func (s *stack) Pop() graph.NodeID {
	n := len(s.items)
	id := s.items[n-1]
	s.items = s.items[:n-1]
	return id
}

func (s *stack) Len() int { return len(s.items) }

// queue is a slice with a moving head; the backing array is compacted once
// the consumed prefix outgrows the live part.
type queue struct {
	items []graph.NodeID
	head  int
}

func (q *queue) Push(id graph.NodeID, _ int) { q.items = append(q.items, id) }

func (q *queue) Pop() graph.NodeID {
	id := q.items[q.head]
	q.head++
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return id
}

func (q *queue) Len() int { return len(q.items) - q.head }

// priority wraps itemPQ behind the Frontier interface.
type priority struct {
	pq  itemPQ
	seq int
}

func (p *priority) Push(id graph.NodeID, cost int) {
	heap.Push(&p.pq, &item{id: id, cost: cost, seq: p.seq})
	p.seq++
}

func (p *priority) Pop() graph.NodeID {
	return heap.Pop(&p.pq).(*item).id
}

func (p *priority) Len() int { return p.pq.Len() }

// item is a heap entry: node, walked cost and push sequence for tie-breaks.
type item struct {
	id   graph.NodeID
	cost int
	seq  int
}

// itemPQ is a min-heap of *item ordered by cost, then by seq. Stale entries
// are left in place and skipped by the walker once their node is expanded.
type itemPQ []*item

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by cost ascending, then by push order.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

package search

import (
	"container/heap"
	"fmt"
)

// Strategy selects which frontier node is expanded next.
type Strategy int

// The closed set of queuing disciplines.
const (
	BreadthFirst Strategy = iota // oldest node first (FIFO)
	DepthFirst                   // newest node first (LIFO)
	UniformCost                  // minimum PathCost
	Greedy                       // minimum HeuristicCost
	AStar                        // minimum PathCost + HeuristicCost
)

var strategyNames = [...]string{
	BreadthFirst: "breadth-first",
	DepthFirst:   "depth-first",
	UniformCost:  "uniform-cost",
	Greedy:       "greedy",
	AStar:        "a-star",
}

// String returns the strategy's human-readable name.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= BreadthFirst && s <= AStar
}

// frontier is the set of generated but not yet expanded nodes.
// pop is never called on an empty frontier.
type frontier[S any] interface {
	push(n Node[S])
	pop() NodeID
	len() int
}

// newFrontier returns the frontier implementing s.
func newFrontier[S any](s Strategy) (frontier[S], error) {
	switch s {
	case BreadthFirst:
		return &fifo[S]{}, nil
	case DepthFirst:
		return &lifo[S]{}, nil
	case UniformCost:
		return newPriority[S](func(n Node[S]) int { return n.PathCost }), nil
	case Greedy:
		return newPriority[S](func(n Node[S]) int { return n.HeuristicCost }), nil
	case AStar:
		return newPriority[S](Node[S].TotalCost), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// fifo is a queue; head advances instead of reslicing from the front so
// popped slots are reclaimed when the backing array is compacted.
type fifo[S any] struct {
	ids  []NodeID
	head int
}

func (q *fifo[S]) push(n Node[S]) { q.ids = append(q.ids, n.ID) }

func (q *fifo[S]) pop() NodeID {
	id := q.ids[q.head]
	q.head++
	if q.head > 1024 && q.head*2 > len(q.ids) {
		q.ids = append(q.ids[:0], q.ids[q.head:]...)
		q.head = 0
	}
	return id
}

func (q *fifo[S]) len() int { return len(q.ids) - q.head }

// lifo is a stack.
type lifo[S any] struct {
	ids []NodeID
}

func (s *lifo[S]) push(n Node[S]) { s.ids = append(s.ids, n.ID) }

func (s *lifo[S]) pop() NodeID {
	last := len(s.ids) - 1
	id := s.ids[last]
	s.ids = s.ids[:last]
	return id
}

func (s *lifo[S]) len() int { return len(s.ids) }

// priority keeps a persistent min-heap over the frontier instead of
// rebuilding one per selection. Equal keys pop in insertion order.
type priority[S any] struct {
	key  func(Node[S]) int
	pq   entryPQ
	next uint64
}

func newPriority[S any](key func(Node[S]) int) *priority[S] {
	return &priority[S]{key: key}
}

func (p *priority[S]) push(n Node[S]) {
	heap.Push(&p.pq, entry{id: n.ID, key: p.key(n), seq: p.next})
	p.next++
}

func (p *priority[S]) pop() NodeID {
	return heap.Pop(&p.pq).(entry).id
}

func (p *priority[S]) len() int { return p.pq.Len() }

// entry is a frontier node with its priority and insertion sequence.
type entry struct {
	id  NodeID
	key int
	seq uint64
}

// entryPQ is a min-heap of entry ordered by (key, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package frontier

// store is the bookkeeping shared by both policies: the node slice and a
// per-state count of how many stored nodes carry that state.
type store[S comparable, L any] struct {
	nodes []*Node[S, L]
	count map[S]int
}

func newStore[S comparable, L any]() store[S, L] {
	return store[S, L]{count: make(map[S]int)}
}

func (s *store[S, L]) Add(n *Node[S, L]) {
	s.nodes = append(s.nodes, n)
	s.count[n.state]++
}

func (s *store[S, L]) ContainsState(state S) bool {
	return s.count[state] > 0
}

// forget drops one reference to state.
func (s *store[S, L]) forget(state S) {
	if c := s.count[state]; c > 1 {
		s.count[state] = c - 1
		return
	}
	delete(s.count, state)
}

// Stack is a LIFO frontier: Remove returns the most recently added node.
type Stack[S comparable, L any] struct {
	store[S, L]
}

// NewStack returns an empty LIFO frontier.
func NewStack[S comparable, L any]() *Stack[S, L] {
	return &Stack[S, L]{store: newStore[S, L]()}
}

// Empty reports whether the stack holds no nodes.
func (s *Stack[S, L]) Empty() bool { return len(s.nodes) == 0 }

// Len returns the number of stored nodes.
func (s *Stack[S, L]) Len() int { return len(s.nodes) }

// Remove pops the most recently added node.
func (s *Stack[S, L]) Remove() (*Node[S, L], error) {
	if s.Empty() {
		return nil, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes[last] = nil
	s.nodes = s.nodes[:last]
	s.forget(n.state)
	return n, nil
}

// Queue is a FIFO frontier: Remove returns the earliest added node.
//
// Removed slots before head are reclaimed once they make up at least half of
// the backing slice, keeping Remove O(1) amortized.
type Queue[S comparable, L any] struct {
	store[S, L]
	head int
}

// NewQueue returns an empty FIFO frontier.
func NewQueue[S comparable, L any]() *Queue[S, L] {
	return &Queue[S, L]{store: newStore[S, L]()}
}

// Empty reports whether the queue holds no nodes.
func (q *Queue[S, L]) Empty() bool { return q.head == len(q.nodes) }

// Len returns the number of stored nodes.
func (q *Queue[S, L]) Len() int { return len(q.nodes) - q.head }

// Remove dequeues the earliest added node.
func (q *Queue[S, L]) Remove() (*Node[S, L], error) {
	if q.Empty() {
		return nil, ErrEmptyFrontier
	}
	n := q.nodes[q.head]
	q.nodes[q.head] = nil
	q.head++
	q.forget(n.state)

	if q.head == len(q.nodes) {
		q.nodes = q.nodes[:0]
		q.head = 0
	} else if q.head >= 32 && q.head*2 >= len(q.nodes) {
		k := copy(q.nodes, q.nodes[q.head:])
		clear(q.nodes[k:])
		q.nodes = q.nodes[:k]
		q.head = 0
	}
	return n, nil
}

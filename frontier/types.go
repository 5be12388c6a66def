package frontier

import "errors"

// ErrEmptyFrontier is returned by Remove when the frontier holds no nodes.
var ErrEmptyFrontier = errors.New("frontier: empty frontier")

// Node is one vertex of the search tree: the state it names, the node it was
// discovered from and the edge label used to get here.
//
// The root has no parent, a zero-value action and depth 0. Nodes never change
// after construction; only the search that created them holds references.
type Node[S comparable, L any] struct {
	state  S
	parent *Node[S, L]
	action L
	depth  int
}

// NewRoot returns the root node for a search starting at state.
func NewRoot[S comparable, L any](state S) *Node[S, L] {
	return &Node[S, L]{state: state}
}

// NewChild returns the node reached from parent by following action to state.
// A nil parent produces a root.
func NewChild[S comparable, L any](parent *Node[S, L], state S, action L) *Node[S, L] {
	if parent == nil {
		return NewRoot[S, L](state)
	}
	return &Node[S, L]{state: state, parent: parent, action: action, depth: parent.depth + 1}
}

// State returns the vertex identifier held by the node.
func (n *Node[S, L]) State() S { return n.state }

// Parent returns the node this one was discovered from, nil for the root.
func (n *Node[S, L]) Parent() *Node[S, L] { return n.parent }

// Action returns the edge label used to reach this node.
func (n *Node[S, L]) Action() L { return n.action }

// Depth returns the number of edges between the root and this node.
func (n *Node[S, L]) Depth() int { return n.depth }

// IsRoot reports whether the node has no parent.
func (n *Node[S, L]) IsRoot() bool { return n.parent == nil }

// Frontier holds discovered-but-unexpanded nodes.
type Frontier[S comparable, L any] interface {
	// Add stores n. Adding a second node with the same state is allowed;
	// callers that want uniqueness check ContainsState first.
	Add(n *Node[S, L])

	// ContainsState reports whether any stored node has the given state.
	ContainsState(state S) bool

	// Empty reports whether no nodes are stored.
	Empty() bool

	// Len returns the number of stored nodes.
	Len() int

	// Remove takes one node out according to the frontier's policy.
	// It returns ErrEmptyFrontier when nothing is stored.
	Remove() (*Node[S, L], error)
}

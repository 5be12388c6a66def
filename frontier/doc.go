// Package frontier provides the working set of a graph search: discovered
// nodes that have not been expanded yet, handed out in a fixed removal order.
//
// What
//
//   - Node: an immutable search-tree record {state, parent, action, depth}.
//     Nodes form a reverse-linked tree rooted at the search's start state.
//   - Frontier: Add / ContainsState / Empty / Len / Remove.
//   - Two policies share all bookkeeping and differ only in Remove:
//   - Stack (LIFO): the most recently added node first, depth-first order.
//   - Queue (FIFO): the earliest added node first, breadth-first order.
//
// Why
//
//	A FIFO frontier is what makes breadth-first search optimal on unweighted
//	graphs: the first time a state is reached, it is reached by a minimum
//	number of edges. The LIFO variant keeps the same interface so traversal
//	code can be reused with a different order.
//
// Membership
//
//	ContainsState is O(1). Each frontier keeps a per-state reference count,
//	so a state added twice stays visible until its last copy is removed.
//
// Errors
//
//   - ErrEmptyFrontier  if Remove is called on an empty frontier. This is a
//     caller bug, not a domain outcome: search loops check Empty first.
//
// Complexity
//
//   - Add, ContainsState, Empty, Len: O(1)
//   - Remove: O(1) amortized for both policies
package frontier

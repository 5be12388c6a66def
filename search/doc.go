// Package search finds a shortest chain of edges between two states of an
// implicit, unweighted graph and reconstructs the chain.
//
// What
//
//   - ShortestPath: breadth-first search from source until target is first
//     discovered, returning the ordered (action, state) steps.
//   - FindPath: the same traversal with a caller-supplied frontier, e.g. a
//     frontier.Stack for depth-first discovery (valid path, not necessarily
//     shortest).
//   - The graph is never materialized: a Graph only has to enumerate the
//     labelled neighbors of one state on demand.
//
// Algorithm
//
//  1. source == target returns a found, empty path (zero degrees).
//  2. Seed the frontier with a root node for source; explored is empty.
//  3. While the frontier is not empty, remove one node and mark its state
//     explored before looking at its neighbors.
//  4. Each neighbor already explored or already in the frontier is skipped.
//     Otherwise a child node is created; if it is the target the search
//     stops and the path is rebuilt, else the child joins the frontier.
//  5. The path is rebuilt by following parent links back to the root and
//     reversing the collected steps.
//
// Determinism
//
//	The path length is always the BFS distance. Among several shortest
//	paths the one returned is decided by the order in which Graph.Neighbors
//	enumerates edges; a graph with a stable order yields a stable path.
//
// Errors
//
//   - ErrGraphNil         if g is nil.
//   - ErrOptionViolation  if an option is invalid (e.g. negative MaxDepth).
//   - ErrUnknownState     only with WithStrictStates on a StateIndex graph.
//   - frontier.ErrEmptyFrontier (wrapped) if the frontier breaks its contract.
//   - ctx.Err() when the context passed with WithContext is done.
//
// "No path" is not an error: Result.Found is false.
//
// Complexity (V reachable states, E edges enumerated)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Concurrency
//
//	All traversal state lives in the call. Any number of searches may run
//	in parallel over the same Graph as long as its Neighbors method is
//	read-only.
package search

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/degrees/frontier"
)

// walker encapsulates mutable state of one search.
type walker[S comparable, L any] struct {
	graph    Graph[S, L]
	opts     Options
	ctx      context.Context
	target   S
	frontier frontier.Frontier[S, L]
	explored map[S]struct{}
	res      *Result[S, L]
}

// ShortestPath returns a minimum-edge path from source to target using
// breadth-first search. A path that does not exist is reported through
// Result.Found, not an error.
func ShortestPath[S comparable, L any](g Graph[S, L], source, target S, opts ...Option) (*Result[S, L], error) {
	return FindPath(g, source, target, frontier.NewQueue[S, L](), opts...)
}

// FindPath runs the search with the given frontier, which must be empty.
// With a FIFO frontier the result is a shortest path; with any other
// removal order it is a valid path of unspecified length.
func FindPath[S comparable, L any](g Graph[S, L], source, target S, f frontier.Frontier[S, L], opts ...Option) (*Result[S, L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if f == nil || !f.Empty() {
		return nil, fmt.Errorf("%w: frontier must be non-nil and empty", ErrOptionViolation)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Strict {
		if err := checkStates(g, source, target); err != nil {
			return nil, err
		}
	}

	// zero degrees: the root is never compared against target by the loop
	if source == target {
		return &Result[S, L]{Path: []Step[S, L]{}, Found: true}, nil
	}

	w := &walker[S, L]{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		frontier: f,
		explored: make(map[S]struct{}),
		res:      &Result[S, L]{},
	}
	w.frontier.Add(frontier.NewRoot[S, L](source))

	return w.res, w.loop()
}

// checkStates validates both endpoints when the graph can answer HasState.
func checkStates[S comparable, L any](g Graph[S, L], source, target S) error {
	idx, ok := g.(StateIndex[S])
	if !ok {
		return nil
	}
	if !idx.HasState(source) {
		return fmt.Errorf("%w: source %v", ErrUnknownState, source)
	}
	if !idx.HasState(target) {
		return fmt.Errorf("%w: target %v", ErrUnknownState, target)
	}
	return nil
}

// loop expands nodes until the target is found, the frontier runs dry,
// or the context is done.
func (w *walker[S, L]) loop() error {
	for !w.frontier.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node, err := w.frontier.Remove()
		if err != nil {
			return fmt.Errorf("search: remove after non-empty check: %w", err)
		}
		w.explored[node.State()] = struct{}{}
		w.res.Explored++

		if child := w.expand(node); child != nil {
			w.res.Path = reconstruct(child)
			w.res.Found = true
			return nil
		}
	}
	return nil
}

// expand enqueues the unseen neighbors of node. It returns the child for the
// target as soon as one is created, nil otherwise.
func (w *walker[S, L]) expand(node *frontier.Node[S, L]) *frontier.Node[S, L] {
	if w.opts.MaxDepth > 0 && node.Depth()+1 > w.opts.MaxDepth {
		return nil
	}
	for _, step := range w.graph.Neighbors(node.State()) {
		if _, seen := w.explored[step.State]; seen || w.frontier.ContainsState(step.State) {
			continue
		}
		child := frontier.NewChild(node, step.State, step.Action)
		w.res.Generated++
		if step.State == w.target {
			return child
		}
		w.frontier.Add(child)
	}
	return nil
}

// reconstruct walks parent links from n to the root and returns the steps
// in source→target order, root excluded.
func reconstruct[S comparable, L any](n *frontier.Node[S, L]) []Step[S, L] {
	path := make([]Step[S, L], 0, n.Depth())
	for cur := n; !cur.IsRoot(); cur = cur.Parent() {
		path = append(path, Step[S, L]{Action: cur.Action(), State: cur.State()})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

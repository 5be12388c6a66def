package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownState is returned in strict mode when source or target is
	// absent from the graph.
	ErrUnknownState = errors.New("search: unknown state")
)

// Step is one labelled edge: following Action leads to State.
// Graph.Neighbors returns steps, and a found path is a sequence of them.
type Step[S comparable, L any] struct {
	Action L
	State  S
}

// Graph enumerates the neighbors of a state.
// Unknown states have no neighbors.
type Graph[S comparable, L any] interface {
	Neighbors(state S) []Step[S, L]
}

// NeighborFunc adapts a plain function to Graph.
type NeighborFunc[S comparable, L any] func(state S) []Step[S, L]

// Neighbors calls f(state).
func (f NeighborFunc[S, L]) Neighbors(state S) []Step[S, L] { return f(state) }

// StateIndex is implemented by graphs that can tell whether a state exists.
// It is consulted only when WithStrictStates is set.
type StateIndex[S comparable] interface {
	HasState(state S) bool
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx is checked once per expanded node.
	Ctx context.Context

	// MaxDepth, if > 0, stops generating children deeper than MaxDepth
	// edges from the source. 0 means no limit.
	MaxDepth int

	// Strict rejects unknown source or target with ErrUnknownState when
	// the graph implements StateIndex.
	Strict bool

	err error
}

// DefaultOptions returns background context, no depth limit, lenient states.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the path length.
//
//	d > 0: paths longer than d edges are not explored
//	d == 0: explicit no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStrictStates turns unknown source or target into ErrUnknownState
// instead of a "not found" result.
func WithStrictStates() Option {
	return func(o *Options) { o.Strict = true }
}

// Result is the outcome of a search.
type Result[S comparable, L any] struct {
	// Path holds the steps from source to target, source excluded.
	// It is empty when source == target and nil when Found is false.
	Path []Step[S, L]

	// Found reports whether target was reached.
	Found bool

	// Explored counts expanded nodes.
	Explored int

	// Generated counts child nodes created.
	Generated int
}

// Degrees returns the number of edges on the path, or -1 if none was found.
func (r *Result[S, L]) Degrees() int {
	if !r.Found {
		return -1
	}
	return len(r.Path)
}

// States returns the states along the path, source excluded.
func (r *Result[S, L]) States() []S {
	out := make([]S, len(r.Path))
	for i, st := range r.Path {
		out[i] = st.State
	}
	return out
}

// Package separation answers "how are these two people connected?" over a
// loaded movies.Dataset.
//
// A Finder validates person ids, runs search.ShortestPath, and expands the
// resulting (movie, person) steps into a Chain of readable Links. Chains are
// memoized in an LRU cache keyed by (source, target), and ConnectAll fans a
// batch of pairs out over a bounded errgroup.
//
// A Finder never mutates its Dataset, so one Finder may serve any number of
// goroutines.
package separation

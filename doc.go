// Package degrees finds the shortest chain of shared movies linking two
// actors: the "degrees of separation" between them.
//
// The repository is organized in layers, each usable on its own:
//
//	frontier/   — Stack (LIFO) and Queue (FIFO) frontiers and the immutable search Node
//	search/     — breadth-first ShortestPath over any Graph, with path reconstruction
//	movies/     — people/movies/stars tables, CSV loader and name resolution
//	separation/ — concurrent, memoizing service turning person ids into chains
//	config/     — viper configuration and zap logger construction
//	cmd/degrees — the command-line interface
//
// Quick example:
//
//	Kevin Bacon ──Apollo 13── Tom Hanks ──Forrest Gump── Robin Wright ──The Princess Bride── Cary Elwes
//
// is a chain of 3 degrees. Try it on the bundled sample data:
//
//	go run ./cmd/degrees --dataset small path "Kevin Bacon" "Cary Elwes"
//
// The search core knows nothing about movies: any type with a
// Neighbors(state) []search.Step method can be searched.
package degrees

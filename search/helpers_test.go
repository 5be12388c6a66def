package search_test

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/degrees/search"
)

// castGraph is a tiny bipartite person/movie fixture. Neighbors emits
// (movie, costar) pairs sorted by movie then person, self pairs included.
type castGraph struct {
	movies map[string][]string // movie → people
	roles  map[string][]string // person → movies
}

func newCastGraph(casts map[string][]string) *castGraph {
	g := &castGraph{movies: casts, roles: make(map[string][]string)}
	for m, people := range casts {
		for _, p := range people {
			g.roles[p] = append(g.roles[p], m)
		}
	}
	for p := range g.roles {
		sort.Strings(g.roles[p])
	}
	return g
}

func (g *castGraph) Neighbors(person string) []search.Step[string, string] {
	var out []search.Step[string, string]
	for _, m := range g.roles[person] {
		stars := append([]string(nil), g.movies[m]...)
		sort.Strings(stars)
		for _, s := range stars {
			out = append(out, search.Step[string, string]{Action: m, State: s})
		}
	}
	return out
}

func (g *castGraph) HasState(person string) bool {
	_, ok := g.roles[person]
	return ok
}

// chainCasts returns movies linking p0–p1–…–pn in a line.
func chainCasts(n int) map[string][]string {
	casts := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		casts[fmt.Sprintf("m%d", i)] = []string{fmt.Sprintf("p%d", i), fmt.Sprintf("p%d", i+1)}
	}
	return casts
}

// randomCasts builds a reproducible random cast list over people p0..p(n-1).
func randomCasts(seed int64, people, movies, maxCast int) map[string][]string {
	rnd := rand.New(rand.NewSource(seed))
	casts := make(map[string][]string, movies)
	for m := 0; m < movies; m++ {
		size := 1 + rnd.Intn(maxCast)
		seen := make(map[string]bool, size)
		var cast []string
		for len(cast) < size {
			p := fmt.Sprintf("p%d", rnd.Intn(people))
			if !seen[p] {
				seen[p] = true
				cast = append(cast, p)
			}
		}
		casts[fmt.Sprintf("m%d", m)] = cast
	}
	return casts
}

// distances is a reference single-source BFS over the same neighbor relation.
func distances(g search.Graph[string, string], source string) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, st := range g.Neighbors(cur) {
			if _, ok := dist[st.State]; !ok {
				dist[st.State] = dist[cur] + 1
				queue = append(queue, st.State)
			}
		}
	}
	return dist
}

// validPath reports whether every step follows an edge of g starting at source.
func validPath(g search.Graph[string, string], source string, path []search.Step[string, string]) bool {
	cur := source
	for _, step := range path {
		ok := false
		for _, nb := range g.Neighbors(cur) {
			if nb == step {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
		cur = step.State
	}
	return true
}

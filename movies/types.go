package movies

import (
	"errors"
	"sort"
)

// Sentinel errors for loading and resolution.
var (
	// ErrPersonNotFound is returned when a name or id matches nobody.
	ErrPersonNotFound = errors.New("movies: person not found")

	// ErrAmbiguousName is returned when a name matches several people and
	// no valid choice was made.
	ErrAmbiguousName = errors.New("movies: ambiguous name")

	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("movies: missing column")
)

// IDSet is a set of entity ids.
type IDSet map[string]struct{}

// Add inserts id.
func (s IDSet) Add(id string) { s[id] = struct{}{} }

// Has reports whether id is present.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids.
func (s IDSet) Len() int { return len(s) }

// Sorted returns the ids in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Person is one row of people.csv plus the movies they star in.
type Person struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Birth  string `json:"birth,omitempty" yaml:"birth,omitempty"`
	Movies IDSet  `json:"-" yaml:"-"`
}

// Movie is one row of movies.csv plus its credited people.
type Movie struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Year  string `json:"year,omitempty" yaml:"year,omitempty"`
	Stars IDSet  `json:"-" yaml:"-"`
}

// Stats summarizes what a load kept and dropped.
type Stats struct {
	People       int
	Movies       int
	Stars        int
	SkippedStars int
}

// Chooser picks one person among several sharing a name. It returns the
// chosen id, or an error to abort resolution.
type Chooser func(name string, candidates []Person) (string, error)

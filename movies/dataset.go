package movies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/degrees/search"
)

// Dataset is the immutable lookup context handed to every search.
type Dataset struct {
	people map[string]*Person
	movies map[string]*Movie
	names  map[string]IDSet

	// sorted adjacency, fixed at Build time
	roles map[string][]string // person → movie ids
	casts map[string][]string // movie → person ids

	stats Stats
}

// compile-time checks
var (
	_ search.Graph[string, string] = (*Dataset)(nil)
	_ search.StateIndex[string]    = (*Dataset)(nil)
)

// Builder assembles a Dataset. It is not safe for concurrent use.
type Builder struct {
	people  map[string]*Person
	movies  map[string]*Movie
	names   map[string]IDSet
	stars   int
	skipped int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		people: make(map[string]*Person),
		movies: make(map[string]*Movie),
		names:  make(map[string]IDSet),
	}
}

func nameKey(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// AddPerson registers a person. A repeated id replaces name and birth.
func (b *Builder) AddPerson(id, name, birth string) *Builder {
	if p, ok := b.people[id]; ok {
		b.unindex(p)
		p.Name, p.Birth = name, birth
	} else {
		b.people[id] = &Person{ID: id, Name: name, Birth: birth, Movies: IDSet{}}
	}
	key := nameKey(name)
	if b.names[key] == nil {
		b.names[key] = IDSet{}
	}
	b.names[key].Add(id)
	return b
}

func (b *Builder) unindex(p *Person) {
	key := nameKey(p.Name)
	delete(b.names[key], p.ID)
	if len(b.names[key]) == 0 {
		delete(b.names, key)
	}
}

// AddMovie registers a movie. A repeated id replaces title and year.
func (b *Builder) AddMovie(id, title, year string) *Builder {
	if m, ok := b.movies[id]; ok {
		m.Title, m.Year = title, year
		return b
	}
	b.movies[id] = &Movie{ID: id, Title: title, Year: year, Stars: IDSet{}}
	return b
}

// AddStar credits personID on movieID. It reports false, and records a
// skipped row, when either id is unknown.
func (b *Builder) AddStar(personID, movieID string) bool {
	p, okP := b.people[personID]
	m, okM := b.movies[movieID]
	if !okP || !okM {
		b.skipped++
		return false
	}
	if !p.Movies.Has(movieID) {
		b.stars++
	}
	p.Movies.Add(movieID)
	m.Stars.Add(personID)
	return true
}

// Build freezes the tables into a Dataset and resets the Builder.
func (b *Builder) Build() *Dataset {
	d := &Dataset{
		people: b.people,
		movies: b.movies,
		names:  b.names,
		roles:  make(map[string][]string, len(b.people)),
		casts:  make(map[string][]string, len(b.movies)),
		stats: Stats{
			People:       len(b.people),
			Movies:       len(b.movies),
			Stars:        b.stars,
			SkippedStars: b.skipped,
		},
	}
	for id, p := range d.people {
		if p.Movies.Len() > 0 {
			d.roles[id] = p.Movies.Sorted()
		}
	}
	for id, m := range d.movies {
		if m.Stars.Len() > 0 {
			d.casts[id] = m.Stars.Sorted()
		}
	}
	*b = *NewBuilder()
	return d
}

// Stats reports table sizes and skipped rows.
func (d *Dataset) Stats() Stats { return d.stats }

// Person looks up a person by id.
func (d *Dataset) Person(id string) (Person, bool) {
	p, ok := d.people[id]
	if !ok {
		return Person{}, false
	}
	return *p, true
}

// Movie looks up a movie by id.
func (d *Dataset) Movie(id string) (Movie, bool) {
	m, ok := d.movies[id]
	if !ok {
		return Movie{}, false
	}
	return *m, true
}

// HasState reports whether id names a known person.
func (d *Dataset) HasState(id string) bool {
	_, ok := d.people[id]
	return ok
}

// Neighbors returns (movieID, personID) for every person sharing a movie
// with id, the person themself included. Unknown ids have no neighbors.
func (d *Dataset) Neighbors(id string) []search.Step[string, string] {
	roles := d.roles[id]
	if len(roles) == 0 {
		return nil
	}
	n := 0
	for _, m := range roles {
		n += len(d.casts[m])
	}
	out := make([]search.Step[string, string], 0, n)
	for _, m := range roles {
		for _, star := range d.casts[m] {
			out = append(out, search.Step[string, string]{Action: m, State: star})
		}
	}
	return out
}

// PersonIDsForName returns the ids of everyone called name, ignoring case,
// in ascending order.
func (d *Dataset) PersonIDsForName(name string) []string {
	ids, ok := d.names[nameKey(name)]
	if !ok {
		return nil
	}
	return ids.Sorted()
}

// Candidates returns the people called name, ordered by id.
func (d *Dataset) Candidates(name string) []Person {
	ids := d.PersonIDsForName(name)
	out := make([]Person, 0, len(ids))
	for _, id := range ids {
		out = append(out, *d.people[id])
	}
	return out
}

// Resolve maps name to a single person id.
//
//   - no match: ErrPersonNotFound
//   - one match: its id
//   - several: choose decides; a nil choose, or an answer outside the
//     candidates, yields ErrAmbiguousName
func (d *Dataset) Resolve(name string, choose Chooser) (string, error) {
	candidates := d.Candidates(name)
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrPersonNotFound, name)
	case 1:
		return candidates[0].ID, nil
	}
	if choose == nil {
		return "", fmt.Errorf("%w: %q matches %d people", ErrAmbiguousName, name, len(candidates))
	}
	id, err := choose(name, candidates)
	if err != nil {
		return "", err
	}
	id = strings.TrimSpace(id)
	i := sort.Search(len(candidates), func(i int) bool { return candidates[i].ID >= id })
	if i == len(candidates) || candidates[i].ID != id {
		return "", fmt.Errorf("%w: %q is not one of the %q candidates", ErrAmbiguousName, id, name)
	}
	return id, nil
}

package movies_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/movies"
	"github.com/katalvlaran/degrees/search"
)

// ExampleBuilder builds the three-person scenario by hand and searches it.
func ExampleBuilder() {
	b := movies.NewBuilder()
	b.AddPerson("a", "Alice", "").AddPerson("b", "Bob", "").AddPerson("c", "Carol", "")
	b.AddMovie("m1", "First", "2001").AddMovie("m2", "Second", "2002")
	b.AddStar("a", "m1")
	b.AddStar("b", "m1")
	b.AddStar("b", "m2")
	b.AddStar("c", "m2")
	d := b.Build()

	res, _ := search.ShortestPath[string, string](d, "a", "c")
	for _, st := range res.Path {
		m, _ := d.Movie(st.Action)
		p, _ := d.Person(st.State)
		fmt.Printf("%s in %s\n", p.Name, m.Title)
	}
	// Output:
	// Bob in First
	// Carol in Second
}

// Package movies holds the people/movie tables a separation search runs on
// and adapts them to the search.Graph contract.
//
// Tables
//
//   - Person{ID, Name, Birth, Movies}
//   - Movie{ID, Title, Year, Stars}
//   - a case-insensitive name index: lower(name) → person ids
//
// A Dataset is assembled once, by Load / LoadFS or a Builder, and is
// read-only afterwards. Searches may share one Dataset across goroutines.
//
// Loading
//
//	A dataset directory contains three CSV files addressed by header name:
//
//	  people.csv  id,name,birth
//	  movies.csv  id,title,year
//	  stars.csv   person_id,movie_id
//
//	Star rows that reference an unknown person or movie are skipped and
//	counted (Stats.SkippedStars). A missing file or column is an error.
//
// Graph view
//
//	Dataset.Neighbors(personID) lists (movieID, costarID) steps for every
//	movie the person appears in, sorted by movie id then person id. The
//	person's own pair is included; the search skips it as already explored.
//
// Name resolution
//
//	Resolve maps typed text to exactly one person id. Ambiguous names are
//	handed to a Chooser supplied by the caller, typically an interactive
//	prompt.
package movies

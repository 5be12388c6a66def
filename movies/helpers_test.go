package movies_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/movies"
)

// smallDir is the bundled sample dataset.
const smallDir = "../data/small"

// Sample ids from data/small.
const (
	KevinBacon  = "102"
	TomCruise   = "129"
	CaryElwes   = "144"
	TomHanks    = "158"
	RobinWright = "705"
	EmmaWatson  = "914612"

	AFewGoodMen      = "104257"
	Apollo13         = "112384"
	ForrestGump      = "109830"
	ThePrincessBride = "93779"
)

// castFS builds an in-memory dataset: two people named "Chris Evans",
// a dangling star row on each side, and a quoted title with a comma.
func castFS() fstest.MapFS {
	return fstest.MapFS{
		movies.PeopleFile: {Data: []byte("id,name,birth\n" +
			"1,Chris Evans,1981\n" +
			"2,Chris Evans,1957\n" +
			"3,Scarlett Johansson,1984\n" +
			"4,Lone Actor,\n")},
		movies.MoviesFile: {Data: []byte("id,title,year\n" +
			"10,\"Avengers, The\",2012\n" +
			"11,Lost in Translation,2003\n")},
		movies.StarsFile: {Data: []byte("person_id,movie_id\n" +
			"1,10\n" +
			"3,10\n" +
			"3,11\n" +
			"2,11\n" +
			"99,10\n" +
			"1,99\n" +
			"1,10\n")},
	}
}

// loadCast loads castFS or fails the test.
func loadCast(t *testing.T) *movies.Dataset {
	t.Helper()
	d, err := movies.LoadFS(castFS(), zap.NewNop())
	require.NoError(t, err)
	return d
}

package movies

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// File names inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// Load reads a dataset directory from disk.
func Load(dir string, logger *zap.Logger) (*Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("movies: dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("movies: dataset path %q is not a directory", dir)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d, err := LoadFS(os.DirFS(dir), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Dataset loaded", zap.String("dir", dir))
	return d, nil
}

// LoadFS reads people.csv, movies.csv and stars.csv from fsys, in that
// order. Star rows pointing at unknown ids are skipped.
func LoadFS(fsys fs.FS, logger *zap.Logger) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := NewBuilder()

	err := readTable(fsys, PeopleFile, []string{"id", "name", "birth"}, func(row []string) {
		b.AddPerson(row[0], row[1], row[2])
	})
	if err != nil {
		return nil, err
	}

	err = readTable(fsys, MoviesFile, []string{"id", "title", "year"}, func(row []string) {
		b.AddMovie(row[0], row[1], row[2])
	})
	if err != nil {
		return nil, err
	}

	err = readTable(fsys, StarsFile, []string{"person_id", "movie_id"}, func(row []string) {
		if !b.AddStar(row[0], row[1]) {
			logger.Debug("Skipping star row with unknown reference",
				zap.String("person_id", row[0]),
				zap.String("movie_id", row[1]))
		}
	})
	if err != nil {
		return nil, err
	}

	d := b.Build()
	st := d.Stats()
	logger.Info("Tables built",
		zap.Int("people", st.People),
		zap.Int("movies", st.Movies),
		zap.Int("stars", st.Stars),
		zap.Int("skipped_stars", st.SkippedStars))
	return d, nil
}

// readTable streams name from fsys and calls fn with the requested columns
// of every data row, in the order given by cols. Missing trailing fields
// read as empty strings.
func readTable(fsys fs.FS, name string, cols []string, fn func(row []string)) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("movies: open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s is empty", ErrMissingColumn, name)
		}
		return fmt.Errorf("movies: read %s header: %w", name, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[strings.ToLower(h)] = i
	}
	pos := make([]int, len(cols))
	for i, c := range cols {
		p, ok := index[c]
		if !ok {
			return fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, name, c)
		}
		pos[i] = p
	}

	row := make([]string, len(cols))
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("movies: read %s: %w", name, err)
		}
		for i, p := range pos {
			row[i] = ""
			if p < len(rec) {
				row[i] = rec[p]
			}
		}
		fn(row)
	}
}

package separation

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/movies"
)

// ErrDatasetNil is returned by New when no dataset is given.
var ErrDatasetNil = errors.New("separation: dataset is nil")

// ErrOptionViolation is returned by New for out-of-range options.
var ErrOptionViolation = errors.New("separation: invalid option supplied")

// Pair names a source and a target person by id.
type Pair struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Link is one hop of a chain: From and To both star in Movie.
type Link struct {
	Movie movies.Movie  `json:"movie" yaml:"movie"`
	From  movies.Person `json:"from" yaml:"from"`
	To    movies.Person `json:"to" yaml:"to"`
}

// Chain is the answer for one pair.
type Chain struct {
	Source    movies.Person `json:"source" yaml:"source"`
	Target    movies.Person `json:"target" yaml:"target"`
	Connected bool          `json:"connected" yaml:"connected"`
	Links     []Link        `json:"links,omitempty" yaml:"links,omitempty"`
}

// Degrees returns the number of links, or -1 when not connected.
func (c *Chain) Degrees() int {
	if !c.Connected {
		return -1
	}
	return len(c.Links)
}

// Lines renders the chain the way the command line prints it.
func (c *Chain) Lines() []string {
	if !c.Connected {
		return []string{"Not connected."}
	}
	out := make([]string, 0, len(c.Links)+1)
	out = append(out, fmt.Sprintf("Degrees of separation: %d", len(c.Links)))
	for i, l := range c.Links {
		out = append(out, fmt.Sprintf("%d: %s acted with %s in %s", i+1, l.From.Name, l.To.Name, l.Movie.Title))
	}
	return out
}

// Option configures a Finder.
type Option func(*Options)

// Options holds Finder parameters.
type Options struct {
	Logger    *zap.Logger
	CacheSize int // 0 disables memoization
	Workers   int // parallel searches in ConnectAll, at least 1
	MaxDepth  int // 0 means no limit

	err error
}

// DefaultOptions returns a no-op logger, 1024 cached chains, 4 workers and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		CacheSize: 1024,
		Workers:   4,
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCacheSize sets how many chains are memoized; 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CacheSize = n
	}
}

// WithWorkers bounds ConnectAll parallelism; 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithMaxDepth caps the chain length; 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

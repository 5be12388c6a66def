package separation

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degrees/movies"
	"github.com/katalvlaran/degrees/search"
)

// Finder computes chains over one immutable dataset.
type Finder struct {
	data   *movies.Dataset
	opts   Options
	logger *zap.Logger
	cache  *lru.Cache // Pair → *Chain; nil when disabled
}

// New returns a Finder over data.
func New(data *movies.Dataset, opts ...Option) (*Finder, error) {
	if data == nil {
		return nil, ErrDatasetNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &Finder{data: data, opts: o, logger: o.Logger}
	if o.CacheSize > 0 {
		c, err := lru.New(o.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("separation: create cache: %w", err)
		}
		f.cache = c
	}
	return f, nil
}

// Dataset returns the tables the Finder searches.
func (f *Finder) Dataset() *movies.Dataset { return f.data }

// Connect returns the chain from sourceID to targetID. Both ids must name
// known people. An unreachable target is a Chain with Connected == false.
// Returned chains may be shared with other callers and must not be modified.
func (f *Finder) Connect(ctx context.Context, sourceID, targetID string) (*Chain, error) {
	source, ok := f.data.Person(sourceID)
	if !ok {
		return nil, fmt.Errorf("%w: source id %q", movies.ErrPersonNotFound, sourceID)
	}
	target, ok := f.data.Person(targetID)
	if !ok {
		return nil, fmt.Errorf("%w: target id %q", movies.ErrPersonNotFound, targetID)
	}

	key := Pair{Source: sourceID, Target: targetID}
	if f.cache != nil {
		if v, hit := f.cache.Get(key); hit {
			f.logger.Debug("Chain cache hit", zap.String("source", sourceID), zap.String("target", targetID))
			return v.(*Chain), nil
		}
	}

	start := time.Now()
	res, err := search.ShortestPath[string, string](f.data, sourceID, targetID,
		search.WithContext(ctx),
		search.WithMaxDepth(f.opts.MaxDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("separation: %s → %s: %w", sourceID, targetID, err)
	}
	f.logger.Debug("Search finished",
		zap.String("source", sourceID),
		zap.String("target", targetID),
		zap.Bool("found", res.Found),
		zap.Int("degrees", res.Degrees()),
		zap.Int("explored", res.Explored),
		zap.Int("generated", res.Generated),
		zap.Duration("elapsed", time.Since(start)))

	chain := f.chain(source, target, res)
	if f.cache != nil {
		f.cache.Add(key, chain)
	}
	return chain, nil
}

// chain expands search steps into links between named people.
func (f *Finder) chain(source, target movies.Person, res *search.Result[string, string]) *Chain {
	c := &Chain{Source: source, Target: target, Connected: res.Found}
	if !res.Found {
		return c
	}
	c.Links = make([]Link, 0, len(res.Path))
	from := source
	for _, st := range res.Path {
		m, _ := f.data.Movie(st.Action)
		to, _ := f.data.Person(st.State)
		c.Links = append(c.Links, Link{Movie: m, From: from, To: to})
		from = to
	}
	return c
}

// ConnectAll runs Connect for every pair on up to Workers goroutines.
// Chains come back in input order. The first error cancels the remaining
// searches and is returned.
func (f *Finder) ConnectAll(ctx context.Context, pairs []Pair) ([]*Chain, error) {
	out := make([]*Chain, len(pairs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.Workers)

	for i, p := range pairs {
		g.Go(func() error {
			c, err := f.Connect(gCtx, p.Source, p.Target)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	f.logger.Info("Batch finished", zap.Int("pairs", len(pairs)), zap.Int("workers", f.opts.Workers))
	return out, nil
}

package purefn

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
	"github.com/on-the-ground/functools_ive_go/shared/log"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Target is the positional-argument function a cache wraps.
type Target[R any] func(args ...any) (R, error)

// Stats is a snapshot of a wrapper's counters since its last reset.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
	Since   timespan.TimeSpan
}

// Cached memoizes a Target by its positional arguments.
//
// Every distinct argument tuple invokes the target at most once; later calls
// with an equal tuple return the stored result. The store is unbounded and only
// Clear empties it. Failed calls are never stored.
//
// Pointer arguments key by identity, not by what they point to. A NaN argument
// never equals itself, so every call with one misses and adds an entry that
// cannot be hit again until Clear.
//
// Keyword arguments are not part of the key; Call accepts positional values only.
//
// Cached is NOT safe for concurrent use. Use Shared when calls cross goroutines.
type Cached[R any] struct {
	id      string
	target  Target[R]
	store   *Trie[R]
	meta    fnmodel.Metadata
	logger  *zap.Logger
	verbose bool

	hits   uint64
	misses uint64
	since  time.Time
}

// Wrap returns a memoizing wrapper around target.
// It fails with fnmodel.ErrNotCallable when target is nil.
func Wrap[R any](target Target[R], opts ...Option) (*Cached[R], error) {
	if target == nil {
		return nil, fnmodel.ErrNotCallable
	}
	cfg := newConfig(target, opts)
	return &Cached[R]{
		id:      uuid.New().String(),
		target:  target,
		store:   NewTrie[R](),
		meta:    cfg.meta,
		logger:  cfg.logger,
		verbose: cfg.logger.Core().Enabled(zap.DebugLevel),
		since:   time.Now(),
	}, nil
}

// MustWrap is the panic-on-failure variant of Wrap.
func MustWrap[R any](target Target[R], opts ...Option) *Cached[R] {
	c, err := Wrap(target, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Call returns the stored result for args, computing and storing it on a miss.
//
// An error from the target is returned unchanged and nothing is stored, so the
// next identical call retries. A panicking target propagates the panic and
// stores nothing either. ErrUnhashableKey is returned, before the target
// runs, when an argument cannot be hashed.
func (c *Cached[R]) Call(args ...any) (R, error) {
	key, err := newArgKey(args)
	if err != nil {
		var zero R
		return zero, err
	}

	if v, ok := c.store.Load(key); ok {
		c.hits++
		c.debug("cache hit", key, nil)
		return v, nil
	}

	c.misses++
	v, err := c.target(args...)
	if err != nil {
		c.debug("target failed, result not stored", key, err)
		var zero R
		return zero, err
	}
	c.store.Store(key, v)
	c.debug("cache miss stored", key, nil)
	return v, nil
}

// Clear empties the store and resets the counters.
func (c *Cached[R]) Clear() {
	c.store.Clear()
	c.hits, c.misses = 0, 0
	c.since = time.Now()
	if c.verbose {
		log.Log(c.logger, log.LogDebug, "cache cleared", map[string]interface{}{
			"cacheId": c.id,
			"name":    c.meta.Name,
		})
	}
}

// Len reports the number of stored argument tuples.
func (c *Cached[R]) Len() int {
	return c.store.Len()
}

func (c *Cached[R]) Stats() Stats {
	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: c.store.Len(),
		Since:   timespan.BetweenTimes(c.since, time.Now()),
	}
}

func (c *Cached[R]) Id() string                 { return c.id }
func (c *Cached[R]) Metadata() fnmodel.Metadata { return c.meta }
func (c *Cached[R]) Name() string               { return c.meta.Name }
func (c *Cached[R]) Doc() string                { return c.meta.Doc }
func (c *Cached[R]) Module() string             { return c.meta.Module }

func (c *Cached[R]) debug(msg string, key []any, err error) {
	if !c.verbose {
		return
	}
	fields := map[string]interface{}{
		"cacheId": c.id,
		"name":    c.meta.Name,
		"args":    key,
	}
	if err != nil {
		fields["error"] = err
	}
	log.Log(c.logger, log.LogDebug, msg, fields)
}

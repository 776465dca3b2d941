package purefn

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
	"github.com/on-the-ground/functools_ive_go/shared/log"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// ErrTargetPanic is delivered to callers waiting on a flight whose target panicked.
var ErrTargetPanic = errors.New("panic occurred in cached function")

// ErrTargetExited is delivered to callers waiting on a flight whose target
// called runtime.Goexit.
var ErrTargetExited = errors.New("cached function exited its goroutine")

// Shared is a memoizing wrapper that is safe for concurrent use.
//
// Keys are partitioned over shards by xxhash; each shard guards its own store
// with a mutex. Concurrent callers of the same missing key join one in-flight
// call, so the target still runs at most once per key. A failed flight hands
// its error to every joined caller and stores nothing.
//
// The shard of a key is derived from its values alone, never from its methods,
// so keys equal under == always meet in the same shard.
type Shared[R any] struct {
	id      string
	target  Target[R]
	shards  []*shard[R]
	meta    fnmodel.Metadata
	logger  *zap.Logger
	verbose bool

	hits   atomic.Uint64
	misses atomic.Uint64
	since  atomic.Int64
}

type shard[R any] struct {
	mu         sync.Mutex
	store      *Trie[R]
	inflight   *Trie[*flight[R]]
	generation uint64
}

type flight[R any] struct {
	wg  sync.WaitGroup
	val R
	err error
}

// NewShared returns a concurrency-safe memoizing wrapper around target.
// It fails with fnmodel.ErrNotCallable when target is nil.
func NewShared[R any](target Target[R], opts ...Option) (*Shared[R], error) {
	if target == nil {
		return nil, fnmodel.ErrNotCallable
	}
	cfg := newConfig(target, opts)
	shards := make([]*shard[R], cfg.numShards)
	for i := range shards {
		shards[i] = &shard[R]{
			store:    NewTrie[R](),
			inflight: NewTrie[*flight[R]](),
		}
	}
	s := &Shared[R]{
		id:      uuid.New().String(),
		target:  target,
		shards:  shards,
		meta:    cfg.meta,
		logger:  cfg.logger,
		verbose: cfg.logger.Core().Enabled(zap.DebugLevel),
	}
	s.since.Store(time.Now().UnixNano())
	return s, nil
}

// Call has the semantics of Cached.Call and may be used from many goroutines.
// A panicking target is re-panicked in the goroutine that ran it; joined
// callers receive ErrTargetPanic. A target calling runtime.Goexit still exits
// its goroutine, and joined callers receive ErrTargetExited.
func (s *Shared[R]) Call(args ...any) (R, error) {
	var zero R
	key, err := newArgKey(args)
	if err != nil {
		return zero, err
	}
	sh := s.shardOf(key)

	sh.mu.Lock()
	if v, ok := sh.store.Load(key); ok {
		sh.mu.Unlock()
		s.hits.Add(1)
		return v, nil
	}
	if f, ok := sh.inflight.Load(key); ok {
		sh.mu.Unlock()
		f.wg.Wait()
		if f.err != nil {
			return zero, f.err
		}
		s.hits.Add(1)
		return f.val, nil
	}
	f := &flight[R]{}
	f.wg.Add(1)
	sh.inflight.Store(key, f)
	gen := sh.generation
	sh.mu.Unlock()

	s.misses.Add(1)
	s.run(sh, key, gen, f, args)
	if f.err != nil {
		return zero, f.err
	}
	return f.val, nil
}

func (s *Shared[R]) run(sh *shard[R], key []any, gen uint64, f *flight[R], args []any) {
	completed := false
	defer func() {
		var r any
		if !completed {
			// recover is nil only under runtime.Goexit; panic(nil) recovers a *runtime.PanicNilError.
			if r = recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrTargetPanic, r)
			} else {
				f.err = ErrTargetExited
			}
		}
		sh.mu.Lock()
		sh.inflight.Delete(key)
		stored := f.err == nil && gen == sh.generation
		if stored {
			sh.store.Store(key, f.val)
		}
		sh.mu.Unlock()
		f.wg.Done()

		if s.verbose {
			fields := map[string]interface{}{
				"cacheId": s.id,
				"name":    s.meta.Name,
				"args":    key,
				"stored":  stored,
			}
			if f.err != nil {
				fields["error"] = f.err
			}
			log.Log(s.logger, log.LogDebug, "shared cache flight finished", fields)
		}
		if r != nil {
			panic(r)
		}
	}()
	f.val, f.err = s.target(args...)
	completed = true
}

// Clear empties every shard. Flights started before Clear do not store their result.
func (s *Shared[R]) Clear() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.store.Clear()
		sh.generation++
		sh.mu.Unlock()
	}
	s.hits.Store(0)
	s.misses.Store(0)
	s.since.Store(time.Now().UnixNano())
	if s.verbose {
		log.Log(s.logger, log.LogDebug, "shared cache cleared", map[string]interface{}{
			"cacheId": s.id,
			"name":    s.meta.Name,
		})
	}
}

func (s *Shared[R]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += sh.store.Len()
		sh.mu.Unlock()
	}
	return n
}

func (s *Shared[R]) Stats() Stats {
	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Entries: s.Len(),
		Since:   timespan.BetweenTimes(time.Unix(0, s.since.Load()), time.Now()),
	}
}

func (s *Shared[R]) Id() string                 { return s.id }
func (s *Shared[R]) Metadata() fnmodel.Metadata { return s.meta }
func (s *Shared[R]) Name() string               { return s.meta.Name }
func (s *Shared[R]) Doc() string                { return s.meta.Doc }
func (s *Shared[R]) Module() string             { return s.meta.Module }

func (s *Shared[R]) shardOf(key []any) *shard[R] {
	switch n := len(s.shards); n {
	case 1:
		return s.shards[0]
	default:
		return s.shards[partitionHash(key)%uint64(n)]
	}
}

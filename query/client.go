package query

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/logging/logger"
	"golang.org/x/sync/singleflight"
)

// Infinite stale time, data is fresh until invalidated
const Infinite = time.Duration(math.MaxInt64)

// Options per query
type Options struct {
	StaleTime time.Duration
}

// Config query client settings
type Config struct {
	Retry      int
	RetryDelay time.Duration
}

// EntryState snapshot of a cache entry
type EntryState struct {
	Data      any
	Err       error
	Loading   bool
	FetchedAt time.Time
	Stale     bool
}

type entry struct {
	data      any
	err       error
	fetchedAt time.Time
	staleTime time.Duration
	invalid   bool
	inflight  int
}

// Client keyed query cache
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group

	retry      int
	retryDelay time.Duration
	now        func() time.Time
}

// NewClient creates a query client
func NewClient(cfg *Config) *Client {
	c := &Client{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
		now:     time.Now,
	}
	if cfg != nil {
		c.retry = max(cfg.Retry, 0)
		c.retryDelay = cfg.RetryDelay
	}
	return c
}

// Fetch returns fresh cached data for key or loads it with fn.
// Concurrent fetches of one key share a call. A result is only stored while
// the key's generation is unchanged, so results that settle after an
// invalidation never overwrite the cache. A failed load keeps previous data.
func (c *Client) Fetch(ctx context.Context, key Key, opts Options, fn func(ctx context.Context) (any, error)) (any, error) {
	k := key.String()

	c.mu.Lock()
	e := c.entries[k]
	if e == nil {
		e = &entry{}
		c.entries[k] = e
	}
	// the caller's stale time decides freshness, not the one of the last load
	e.staleTime = opts.StaleTime
	if c.freshLocked(e) {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	gen := c.gens[k]
	e.inflight++
	c.mu.Unlock()

	v, err, _ := c.group.Do(k+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		return c.load(ctx, k, fn)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	e.inflight--
	if c.gens[k] != gen || c.entries[k] != e {
		logger.Debugf(ctx, "query %s superseded, dropping result", k)
		return v, err
	}
	if err != nil {
		e.err = err
		return v, err
	}
	e.data = v
	e.err = nil
	e.fetchedAt = c.now()
	e.invalid = false
	return v, nil
}

// load calls fn, retrying transient failures
func (c *Client) load(ctx context.Context, k string, fn func(ctx context.Context) (any, error)) (any, error) {
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil || attempt >= c.retry || !retryable(err) {
			return v, err
		}
		logger.Debugf(ctx, "query %s attempt %d failed: %v", k, attempt+1, err)
		select {
		case <-ctx.Done():
			return nil, ecode.Wrap(ecode.NetworkErr, ctx.Err())
		case <-time.After(c.retryDelay):
		}
	}
}

// retryable reports whether another attempt could succeed
func retryable(err error) bool {
	switch ecode.CodeOf(err) {
	case ecode.NetworkErr, ecode.ServerErr, ecode.Unknown:
		return true
	}
	return false
}

func (c *Client) freshLocked(e *entry) bool {
	if e.fetchedAt.IsZero() || e.invalid || e.err != nil {
		return false
	}
	if e.staleTime == Infinite {
		return true
	}
	return c.now().Sub(e.fetchedAt) < e.staleTime
}

// Invalidate marks every entry under prefix stale and supersedes its in-flight loads
func (c *Client) Invalidate(prefix Key) {
	p := prefix.Prefix()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if matches(k, p) {
			e.invalid = true
			c.gens[k]++
		}
	}
}

// Remove drops the entry for key
func (c *Client) Remove(key Key) {
	k := key.String()
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, k)
	c.gens[k]++
}

// Clear drops every entry
func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		c.gens[k]++
	}
	c.entries = make(map[string]*entry)
}

// State returns a snapshot of the entry for key
func (c *Client) State(key Key) EntryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return EntryState{Stale: true}
	}
	return EntryState{
		Data:      e.data,
		Err:       e.err,
		Loading:   e.inflight > 0,
		FetchedAt: e.fetchedAt,
		Stale:     !c.freshLocked(e),
	}
}

// Get is the typed form of Fetch
func Get[T any](ctx context.Context, c *Client, key Key, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Fetch(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, ecode.Errorf("query %s: unexpected cached type %T", key, v)
	}
	return t, nil
}

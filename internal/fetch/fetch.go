// Package fetch provides the retrieval caches behind catalog sessions: a
// per-session memoizing group that collapses concurrent loads of the same
// key, and an optional Redis tier shared across sessions.
package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoadFunc retrieves the value for one key.
type LoadFunc func(ctx context.Context) (any, error)

// Group memoizes successful loads by key. Concurrent requests for a key
// already being loaded join the in-flight call instead of starting another.
// A load keeps running even if every caller's context is cancelled, so late
// arrivals can reuse its result.
type Group struct {
	flight singleflight.Group

	mu   sync.Mutex
	done map[string]any
}

func NewGroup() *Group {
	return &Group{done: make(map[string]any)}
}

// Get returns the cached value for key, loading it on first use. A failed
// load is not cached: the error propagates to every waiter and the next Get
// retries.
func (g *Group) Get(ctx context.Context, key string, load LoadFunc) (any, error) {
	g.mu.Lock()
	value, ok := g.done[key]
	g.mu.Unlock()
	if ok {
		return value, nil
	}

	value, err, _ := g.flight.Do(key, func() (any, error) {
		g.mu.Lock()
		value, ok := g.done[key]
		g.mu.Unlock()
		if ok {
			return value, nil
		}
		loaded, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		g.mu.Lock()
		g.done[key] = loaded
		g.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

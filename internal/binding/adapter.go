// Package binding wraps remote-store queries as observable state for
// rendering surfaces: each adapter exposes its result rows, a loading flag
// and an error string, and guarantees that out of overlapping requests only
// the most recently issued one is ever applied.
package binding

import (
	"context"
	"sync"
)

// Snapshot is the observable state of one adapter at a point in time.
type Snapshot[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// FetchFunc runs the adapter's underlying query for one parameter set.
type FetchFunc[P, T any] func(ctx context.Context, params P) ([]T, error)

// Adapter binds one query to observable state. Refetch and SetParams may be
// called from any goroutine; responses are applied in issue order via a
// generation counter, so a stale response never overwrites a newer one.
type Adapter[P comparable, T any] struct {
	mu     sync.Mutex
	fetch  FetchFunc[P, T]
	ready  func(P) bool
	notify func(Snapshot[T])

	gen     uint64
	params  P
	started bool

	data    []T
	loading bool
	err     string
}

// New builds an adapter around fetch. ready may be nil; when set, requests
// are skipped entirely while ready(params) is false and the adapter stays in
// its initial loading state until a valid parameter set arrives.
func New[P comparable, T any](params P, fetch FetchFunc[P, T], ready func(P) bool) *Adapter[P, T] {
	return &Adapter[P, T]{
		fetch:   fetch,
		ready:   ready,
		params:  params,
		data:    []T{},
		loading: true,
	}
}

// OnUpdate registers a callback invoked after every applied response.
// Discarded (superseded) responses do not fire it.
func (a *Adapter[P, T]) OnUpdate(fn func(Snapshot[T])) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notify = fn
}

// Snapshot returns the current state. Data retains its last applied value
// even after a failed refetch.
func (a *Adapter[P, T]) Snapshot() Snapshot[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot[T]{Data: a.data, Loading: a.loading, Err: a.err}
}

// SetParams changes the parameter set and re-runs the query if it differs
// from the current one. The first call always runs the query.
func (a *Adapter[P, T]) SetParams(ctx context.Context, params P) {
	a.mu.Lock()
	if a.started && params == a.params {
		a.mu.Unlock()
		return
	}
	a.params = params
	a.mu.Unlock()

	a.Refetch(ctx)
}

// Refetch runs the query with the current parameters and applies the result,
// unless a newer request was issued while this one was in flight. Callers
// that must not block run it on their own goroutine.
func (a *Adapter[P, T]) Refetch(ctx context.Context) {
	a.mu.Lock()
	params := a.params
	if a.ready != nil && !a.ready(params) {
		// Required parameter missing: skip the request, stay loading.
		a.mu.Unlock()
		return
	}
	a.started = true
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	data, err := a.fetch(ctx, params)

	a.mu.Lock()
	if gen != a.gen {
		// Superseded while in flight; the newer request wins.
		a.mu.Unlock()
		return
	}
	a.loading = false
	if err != nil {
		a.err = err.Error()
	} else {
		a.err = ""
		if data == nil {
			data = []T{}
		}
		a.data = data
	}
	snap := Snapshot[T]{Data: a.data, Loading: a.loading, Err: a.err}
	notify := a.notify
	a.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

// mutate edits the applied rows in place, for optimistic updates after a
// write succeeded.
func (a *Adapter[P, T]) mutate(fn func([]T)) {
	a.mu.Lock()
	fn(a.data)
	snap := Snapshot[T]{Data: a.data, Loading: a.loading, Err: a.err}
	notify := a.notify
	a.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

// setError records a failure from a write path without touching the rows.
func (a *Adapter[P, T]) setError(msg string) {
	a.mu.Lock()
	a.err = msg
	a.mu.Unlock()
}

package binding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAdapter_InitialState(t *testing.T) {
	a := New("p1", func(ctx context.Context, params string) ([]int, error) {
		return []int{1}, nil
	}, nil)

	snap := a.Snapshot()
	if !snap.Loading {
		t.Error("Expected initial state to be loading")
	}
	if snap.Data == nil || len(snap.Data) != 0 {
		t.Errorf("Expected empty non-nil data, got %v", snap.Data)
	}
	if snap.Err != "" {
		t.Errorf("Expected no error, got %q", snap.Err)
	}
}

func TestAdapter_RefetchAppliesData(t *testing.T) {
	a := New("p1", func(ctx context.Context, params string) ([]int, error) {
		return []int{1, 2, 3}, nil
	}, nil)

	a.Refetch(context.Background())

	snap := a.Snapshot()
	if snap.Loading {
		t.Error("Expected loading to be cleared after refetch")
	}
	if len(snap.Data) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(snap.Data))
	}
}

func TestAdapter_NilResultBecomesEmptySlice(t *testing.T) {
	a := New("p1", func(ctx context.Context, params string) ([]int, error) {
		return nil, nil
	}, nil)

	a.Refetch(context.Background())

	if snap := a.Snapshot(); snap.Data == nil {
		t.Error("Expected nil fetch result to be normalized to an empty slice")
	}
}

func TestAdapter_ErrorKeepsLastData(t *testing.T) {
	fail := false
	a := New("p1", func(ctx context.Context, params string) ([]int, error) {
		if fail {
			return nil, errors.New("store unreachable")
		}
		return []int{1, 2}, nil
	}, nil)

	a.Refetch(context.Background())
	fail = true
	a.Refetch(context.Background())

	snap := a.Snapshot()
	if snap.Err != "store unreachable" {
		t.Errorf("Expected fetch error to be exposed, got %q", snap.Err)
	}
	if len(snap.Data) != 2 {
		t.Errorf("Expected stale rows to be retained on error, got %v", snap.Data)
	}

	// A later success clears the error again.
	fail = false
	a.Refetch(context.Background())
	if snap := a.Snapshot(); snap.Err != "" {
		t.Errorf("Expected error to clear after a successful refetch, got %q", snap.Err)
	}
}

// gatedFetch blocks each request until the test releases it, so overlapping
// requests can be resolved in a chosen order.
type gatedFetch struct {
	mu       sync.Mutex
	waiting  map[string]chan []int
	requests []string
}

func newGatedFetch() *gatedFetch {
	return &gatedFetch{waiting: make(map[string]chan []int)}
}

func (g *gatedFetch) fetch(ctx context.Context, params string) ([]int, error) {
	g.mu.Lock()
	ch := make(chan []int, 1)
	g.waiting[params] = ch
	g.requests = append(g.requests, params)
	g.mu.Unlock()

	return <-ch, nil
}

func (g *gatedFetch) release(params string, result []int) {
	g.mu.Lock()
	ch := g.waiting[params]
	g.mu.Unlock()
	ch <- result
}

func TestAdapter_NewestRequestWins(t *testing.T) {
	tests := []struct {
		name         string
		resolveOrder []string
	}{
		{"stale response arrives last", []string{"p2", "p1"}},
		{"stale response arrives first", []string{"p1", "p2"}},
	}

	results := map[string][]int{
		"p1": {1},
		"p2": {2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGatedFetch()
			a := New("p1", g.fetch, nil)

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				a.Refetch(context.Background())
			}()

			// Wait for the first request to be in flight before superseding it.
			waitFor(t, func() bool {
				g.mu.Lock()
				defer g.mu.Unlock()
				return len(g.requests) == 1
			})

			go func() {
				defer wg.Done()
				a.SetParams(context.Background(), "p2")
			}()
			waitFor(t, func() bool {
				g.mu.Lock()
				defer g.mu.Unlock()
				return len(g.requests) == 2
			})

			for _, params := range tc.resolveOrder {
				g.release(params, results[params])
			}
			wg.Wait()

			snap := a.Snapshot()
			if len(snap.Data) != 1 || snap.Data[0] != 2 {
				t.Errorf("Expected the newer request's rows [2], got %v", snap.Data)
			}
		})
	}
}

func TestAdapter_SetParamsSameValueIsNoOp(t *testing.T) {
	calls := 0
	a := New("p1", func(ctx context.Context, params string) ([]int, error) {
		calls++
		return []int{1}, nil
	}, nil)

	a.SetParams(context.Background(), "p1") // first call always fetches
	a.SetParams(context.Background(), "p1")
	a.SetParams(context.Background(), "p1")

	if calls != 1 {
		t.Errorf("Expected exactly one fetch for repeated identical params, got %d", calls)
	}
}

func TestAdapter_NotReadySkipsFetch(t *testing.T) {
	calls := 0
	a := New("", func(ctx context.Context, params string) ([]int, error) {
		calls++
		return []int{1}, nil
	}, func(params string) bool { return params != "" })

	a.Refetch(context.Background())

	if calls != 0 {
		t.Errorf("Expected no fetch while params are not ready, got %d calls", calls)
	}
	if snap := a.Snapshot(); !snap.Loading {
		t.Error("Expected adapter to stay loading while params are not ready")
	}

	// Once the required parameter arrives, the query runs.
	a.SetParams(context.Background(), "ready")
	if calls != 1 {
		t.Errorf("Expected fetch after params became ready, got %d calls", calls)
	}
}

func TestAdapter_NotifyOnlyOnAppliedResponses(t *testing.T) {
	g := newGatedFetch()
	a := New("p1", g.fetch, nil)

	var mu sync.Mutex
	notified := 0
	a.OnUpdate(func(snap Snapshot[int]) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.Refetch(context.Background())
	}()
	waitFor(t, func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return len(g.requests) == 1
	})

	go func() {
		defer wg.Done()
		a.SetParams(context.Background(), "p2")
	}()
	waitFor(t, func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return len(g.requests) == 2
	})

	g.release("p2", []int{2})
	g.release("p1", []int{1})
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if notified != 1 {
		t.Errorf("Expected one notification (discarded response must not fire), got %d", notified)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Timed out waiting for condition")
}

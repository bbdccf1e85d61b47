package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}

// delivery collects dispatcher callbacks so tests can wait on them.
type delivery struct {
	mu      sync.Mutex
	results []*structs.PredictiveSearchResult
	errs    []error
}

func (d *delivery) deliver(result *structs.PredictiveSearchResult, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results = append(d.results, result)
	d.errs = append(d.errs, err)
}

func (d *delivery) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.results)
}

func newTestDispatcher(doer *fakeDoer) *SearchDispatcher {
	d := NewSearchDispatcher(NewSearchService(doer, testLogger()), testLogger())
	d.debounce = 10 * time.Millisecond
	return d
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchDeliversAfterDebounce(t *testing.T) {
	doer := &fakeDoer{payload: `{
		"predictiveSearch": {
			"products": [{"id": "1", "title": "Vista Tower", "handle": "vista-tower"}]
		}
	}`}
	d := newTestDispatcher(doer)
	got := &delivery{}

	d.Dispatch("vista", 4, got.deliver)

	waitFor(t, func() bool { return got.count() == 1 })
	if len(got.results[0].Products) != 1 {
		t.Errorf("got %+v", got.results[0])
	}
}

func TestDispatchSupersedesPendingQuery(t *testing.T) {
	doer := &fakeDoer{payload: `{"predictiveSearch": null}`}
	d := newTestDispatcher(doer)
	got := &delivery{}

	// Keystrokes arriving faster than the debounce window collapse to a
	// single upstream call for the final query.
	d.Dispatch("v", 4, got.deliver)
	d.Dispatch("vi", 4, got.deliver)
	d.Dispatch("vista", 4, got.deliver)

	waitFor(t, func() bool { return got.count() == 1 })

	// Give a stale timer a chance to fire if one survived.
	time.Sleep(50 * time.Millisecond)
	if got.count() != 1 {
		t.Errorf("delivered %d times, want 1", got.count())
	}
	if doer.callCount() != 1 {
		t.Errorf("upstream called %d times, want 1", doer.callCount())
	}
	if q, _ := doer.lastVar("query").(string); q != "vista" {
		t.Errorf("upstream query = %q, want vista", q)
	}
}

func TestDispatchBlankQueryDeliversImmediately(t *testing.T) {
	doer := &fakeDoer{}
	d := newTestDispatcher(doer)
	got := &delivery{}

	d.Dispatch("vista", 4, got.deliver)
	d.Dispatch("", 4, got.deliver)

	// The blank query delivers synchronously and cancels the pending one.
	if got.count() != 1 {
		t.Fatalf("delivered %d times, want 1", got.count())
	}
	if len(got.results[0].Products) != 0 {
		t.Errorf("got %+v", got.results[0])
	}

	time.Sleep(50 * time.Millisecond)
	if got.count() != 1 {
		t.Error("superseded query still delivered")
	}
	if doer.callCount() != 0 {
		t.Errorf("upstream called %d times, want 0", doer.callCount())
	}
}

func TestSubmitBypassesDebounce(t *testing.T) {
	doer := &fakeDoer{payload: `{"predictiveSearch": null}`}
	d := newTestDispatcher(doer)
	d.debounce = time.Hour
	got := &delivery{}

	d.Dispatch("vist", 4, got.deliver)
	d.Submit(context.Background(), "vista", 4, got.deliver)

	// Submit delivers synchronously and supersedes the pending dispatch.
	if got.count() != 1 {
		t.Fatalf("delivered %d times, want 1", got.count())
	}
	if doer.callCount() != 1 {
		t.Errorf("upstream called %d times, want 1", doer.callCount())
	}
	if q, _ := doer.lastVar("query").(string); q != "vista" {
		t.Errorf("upstream query = %q, want vista", q)
	}
}

func TestStaleDeliveryCannotFollowNewerDispatch(t *testing.T) {
	doer := &fakeDoer{payload: `{"predictiveSearch": null}`}
	d := newTestDispatcher(doer)

	var mu sync.Mutex
	var order []string
	record := func(label string) {
		mu.Lock()
		order = append(order, label)
		mu.Unlock()
	}

	started := make(chan struct{})
	d.Dispatch("vista tower", 4, func(*structs.PredictiveSearchResult, error) {
		close(started)
		// A slow consumer: a newer Dispatch arriving now must wait for
		// this delivery instead of slipping its own in first.
		time.Sleep(30 * time.Millisecond)
		record("first")
	})

	<-started
	d.Dispatch("vista wardrobe", 4, func(*structs.PredictiveSearchResult, error) {
		record("second")
	})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 2
	})

	mu.Lock()
	defer mu.Unlock()
	if order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v, want the in-flight delivery first", order)
	}
}

func TestCancelDropsPendingDispatch(t *testing.T) {
	doer := &fakeDoer{payload: `{"predictiveSearch": null}`}
	d := newTestDispatcher(doer)
	got := &delivery{}

	d.Dispatch("vista", 4, got.deliver)
	d.Cancel()

	time.Sleep(50 * time.Millisecond)
	if got.count() != 0 {
		t.Errorf("delivered %d times after Cancel, want 0", got.count())
	}
}

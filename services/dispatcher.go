package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

const defaultSearchDebounce = 300 * time.Millisecond

// SearchDispatcher serializes typeahead queries for one input stream. It
// debounces keystrokes and stamps every dispatch with a generation
// number; a response whose generation is no longer current is dropped,
// so a slow response for an old query can never overwrite results for a
// newer one.
type SearchDispatcher struct {
	search   *SearchService
	logger   *gecho.Logger
	debounce time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	cancel     context.CancelFunc
}

func NewSearchDispatcher(search *SearchService, logger *gecho.Logger) *SearchDispatcher {
	return &SearchDispatcher{
		search:   search,
		logger:   logger,
		debounce: defaultSearchDebounce,
	}
}

// Dispatch schedules a predictive search for the query and invokes
// deliver with the outcome once the debounce window passes, unless a
// newer Dispatch supersedes it first. A blank query cancels anything
// pending and delivers the empty result immediately.
//
// deliver runs with the dispatcher lock held, so the generation check
// and the delivery are one atomic step; it must not call back into the
// dispatcher.
func (d *SearchDispatcher) Dispatch(query string, limit int, deliver func(*structs.PredictiveSearchResult, error)) {
	d.mu.Lock()

	d.generation++
	gen := d.generation

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	if strings.TrimSpace(query) == "" {
		d.mu.Unlock()
		deliver(structs.EmptyPredictiveSearchResult(), nil)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.timer = time.AfterFunc(d.debounce, func() {
		result, err := d.search.PredictiveSearch(ctx, query, limit)

		// Holding the lock across the check and the delivery keeps a
		// newer Dispatch from interleaving between them, so a stale
		// response can never land after a fresh query fires.
		d.mu.Lock()
		defer d.mu.Unlock()

		if d.generation != gen {
			if err == nil {
				d.logger.Debug("Dropping superseded search response", gecho.Field("query", query))
			}
			return
		}

		deliver(result, err)
	})

	d.mu.Unlock()
}

// Submit runs the search immediately, bypassing the debounce window. Any
// pending or in-flight dispatch is superseded first, so the submitted
// query's results are the ones delivered.
func (d *SearchDispatcher) Submit(ctx context.Context, query string, limit int, deliver func(*structs.PredictiveSearchResult, error)) {
	d.mu.Lock()
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	deliver(d.search.PredictiveSearch(ctx, query, limit))
}

// Cancel stops any pending or in-flight dispatch without delivering.
func (d *SearchDispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

// fakeDoer answers every query with a canned JSON payload, recording the
// variables it was called with. It is safe for the dispatcher's timer
// goroutine.
type fakeDoer struct {
	payload string
	err     error

	mu       sync.Mutex
	calls    int
	lastVars map[string]any
}

func (f *fakeDoer) Do(ctx context.Context, query string, vars map[string]any, out any) error {
	f.mu.Lock()
	f.calls++
	f.lastVars = vars
	f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func (f *fakeDoer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeDoer) lastVar(key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastVars == nil {
		return nil
	}
	return f.lastVars[key]
}

func TestPredictiveSearchBlankQuerySkipsUpstream(t *testing.T) {
	doer := &fakeDoer{}
	svc := NewSearchService(doer, testLogger())

	result, err := svc.PredictiveSearch(context.Background(), "   ", 4)
	if err != nil {
		t.Fatal(err)
	}
	if doer.calls != 0 {
		t.Errorf("blank query made %d upstream calls", doer.calls)
	}
	if result.Products == nil || result.Collections == nil || result.Articles == nil {
		t.Error("result arrays must be non-nil")
	}
	if len(result.Products) != 0 || len(result.Collections) != 0 {
		t.Errorf("blank query should be empty, got %+v", result)
	}
}

func TestPredictiveSearchDecodesAndClampsLimit(t *testing.T) {
	doer := &fakeDoer{payload: `{
		"predictiveSearch": {
			"products": [{"id": "gid://shopify/Product/1", "title": "Vista Tower", "handle": "vista-tower"}],
			"collections": [{"id": "gid://shopify/Collection/1", "title": "Vista", "handle": "vista"}]
		}
	}`}
	svc := NewSearchService(doer, testLogger())

	result, err := svc.PredictiveSearch(context.Background(), "vista", 50)
	if err != nil {
		t.Fatal(err)
	}
	if got := doer.lastVars["limit"]; got != 10 {
		t.Errorf("limit = %v, want clamped to 10", got)
	}
	if len(result.Products) != 1 || result.Products[0].Handle != "vista-tower" {
		t.Errorf("products = %+v", result.Products)
	}
	if len(result.Collections) != 1 || result.Collections[0].Handle != "vista" {
		t.Errorf("collections = %+v", result.Collections)
	}
	if result.Articles == nil {
		t.Error("articles must be an empty array, not null")
	}
}

func TestPredictiveSearchDefaultLimit(t *testing.T) {
	doer := &fakeDoer{payload: `{"predictiveSearch": null}`}
	svc := NewSearchService(doer, testLogger())

	result, err := svc.PredictiveSearch(context.Background(), "vista", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := doer.lastVars["limit"]; got != 4 {
		t.Errorf("limit = %v, want default 4", got)
	}
	if len(result.Products) != 0 || result.Products == nil {
		t.Errorf("null upstream result should decode to empty arrays, got %+v", result)
	}
}

func TestPredictiveSearchUpstreamError(t *testing.T) {
	doer := &fakeDoer{err: errors.New("boom")}
	svc := NewSearchService(doer, testLogger())

	if _, err := svc.PredictiveSearch(context.Background(), "vista", 4); err == nil {
		t.Fatal("expected error")
	}
}

func TestSearchProductsPagination(t *testing.T) {
	doer := &fakeDoer{payload: `{
		"search": {
			"totalCount": 42,
			"edges": [
				{"node": {"id": "1", "title": "Vista Tower", "handle": "vista-tower"}},
				{"node": {"id": "2", "title": "Alto Wardrobe", "handle": "alto-wardrobe"}}
			],
			"pageInfo": {"hasNextPage": true, "endCursor": "cursor-2"}
		}
	}`}
	svc := NewSearchService(doer, testLogger())

	page, err := svc.SearchProducts(context.Background(), "closet", 2, "cursor-0")
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalCount != 42 || !page.HasNextPage || page.EndCursor != "cursor-2" {
		t.Errorf("page meta = %+v", page)
	}
	if len(page.Products) != 2 || page.Products[1].Handle != "alto-wardrobe" {
		t.Errorf("products = %+v", page.Products)
	}
	if got := doer.lastVars["after"]; got != "cursor-0" {
		t.Errorf("after = %v", got)
	}
}

func TestSearchProductsFirstClamped(t *testing.T) {
	doer := &fakeDoer{payload: `{"search": {"totalCount": 0, "edges": [], "pageInfo": {}}}`}
	svc := NewSearchService(doer, testLogger())

	if _, err := svc.SearchProducts(context.Background(), "closet", 500, ""); err != nil {
		t.Fatal(err)
	}
	if got := doer.lastVars["first"]; got != 24 {
		t.Errorf("first = %v, want clamped to 24", got)
	}
	if _, ok := doer.lastVars["after"]; ok {
		t.Error("empty cursor should not be sent")
	}
}

func TestSearchProductsBlankQuery(t *testing.T) {
	doer := &fakeDoer{}
	svc := NewSearchService(doer, testLogger())

	page, err := svc.SearchProducts(context.Background(), "", 24, "")
	if err != nil {
		t.Fatal(err)
	}
	if doer.calls != 0 {
		t.Error("blank query should not hit upstream")
	}
	if page.Products == nil || len(page.Products) != 0 {
		t.Errorf("got %+v", page.Products)
	}
}

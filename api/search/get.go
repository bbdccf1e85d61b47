package search

import (
	"encoding/json"
	"net/http"
	"strconv"

	"modularcloset_server/handling"

	"github.com/MonkyMars/gecho"
)

// PredictiveSearch handles GET /api/search?q=&limit=. Unlike the rest of
// the API this endpoint returns the bare result object, not the response
// envelope: the search box consumes {products, collections, articles}
// directly and an {"error": ...} object on failure. A blank query yields
// empty arrays with a 200.
func (srm *SearchRoutesManager) PredictiveSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts := handling.ParseSearchOptions(r)

	result, err := srm.searchService.PredictiveSearch(ctx, opts.Query, opts.Limit)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		srm.logger.Error("Predictive search failed", gecho.Field("query", opts.Query), gecho.Field("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Search is temporarily unavailable"})
		return
	}

	json.NewEncoder(w).Encode(result)
}

// SearchProducts handles GET /search/products?q=&first=&after=, the full
// paginated search page behind the typeahead.
func (srm *SearchRoutesManager) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	first := 0
	if raw := query.Get("first"); raw != "" {
		// Invalid values fall back to the service default.
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			first = val
		}
	}

	page, err := srm.searchService.SearchProducts(ctx, query.Get("q"), first, query.Get("after"))
	if err != nil {
		handling.HandleError(err, "error.search.failed", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

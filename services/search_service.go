package services

import (
	"context"
	"strings"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// SearchService runs predictive (typeahead) and full product searches.
// Predictive results are not cached: queries are too diverse for a
// useful hit rate and the upstream call is already limit-bounded.
type SearchService struct {
	client storefront.Doer
	logger *gecho.Logger
}

func NewSearchService(client storefront.Doer, logger *gecho.Logger) *SearchService {
	return &SearchService{
		client: client,
		logger: logger,
	}
}

// PredictiveSearch returns typeahead suggestions for the query. A blank
// or whitespace-only query short-circuits to an empty result without
// touching the upstream API; the response arrays are always present so
// clients never see null.
func (s *SearchService) PredictiveSearch(ctx context.Context, query string, limit int) (*structs.PredictiveSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return structs.EmptyPredictiveSearchResult(), nil
	}

	if limit <= 0 {
		limit = 4
	}
	if limit > 10 {
		limit = 10
	}

	var resp struct {
		PredictiveSearch *struct {
			Products    []structs.SearchProduct    `json:"products"`
			Collections []structs.SearchCollection `json:"collections"`
		} `json:"predictiveSearch"`
	}
	vars := map[string]any{
		"query": query,
		"limit": limit,
	}
	if err := s.client.Do(ctx, storefront.QueryPredictiveSearch, vars, &resp); err != nil {
		return nil, err
	}

	result := structs.EmptyPredictiveSearchResult()
	if resp.PredictiveSearch != nil {
		if len(resp.PredictiveSearch.Products) > 0 {
			result.Products = resp.PredictiveSearch.Products
		}
		if len(resp.PredictiveSearch.Collections) > 0 {
			result.Collections = resp.PredictiveSearch.Collections
		}
	}

	return result, nil
}

// SearchProducts returns one page of the full search surface.
func (s *SearchService) SearchProducts(ctx context.Context, query string, first int, after string) (*structs.SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &structs.SearchPage{Products: []structs.SearchProduct{}}, nil
	}

	if first <= 0 || first > 100 {
		first = 24
	}

	var resp struct {
		Search struct {
			TotalCount int `json:"totalCount"`
			Edges      []struct {
				Node structs.SearchProduct `json:"node"`
			} `json:"edges"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"search"`
	}

	vars := map[string]any{
		"query": query,
		"first": first,
	}
	if after != "" {
		vars["after"] = after
	}

	if err := s.client.Do(ctx, storefront.QuerySearchProducts, vars, &resp); err != nil {
		return nil, err
	}

	page := &structs.SearchPage{
		Products:    make([]structs.SearchProduct, 0, len(resp.Search.Edges)),
		TotalCount:  resp.Search.TotalCount,
		HasNextPage: resp.Search.PageInfo.HasNextPage,
		EndCursor:   resp.Search.PageInfo.EndCursor,
	}
	for _, edge := range resp.Search.Edges {
		page.Products = append(page.Products, edge.Node)
	}

	return page, nil
}

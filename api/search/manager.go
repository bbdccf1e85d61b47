package search

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SearchRoutesManager struct {
	logger        *gecho.Logger
	searchService *services.SearchService
}

func NewSearchRoutesManager(
	logger *gecho.Logger,
	searchService *services.SearchService,
) *SearchRoutesManager {
	return &SearchRoutesManager{
		logger:        logger,
		searchService: searchService,
	}
}

func (srm *SearchRoutesManager) RegisterRoutes(r chi.Router) {
	// The typeahead endpoint serves the storefront's same-origin search
	// box and keeps its own flat response contract.
	r.Get("/api/search", srm.PredictiveSearch)

	r.Get("/search/products", srm.SearchProducts)
}

package collections

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CollectionRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewCollectionRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
) *CollectionRoutesManager {
	return &CollectionRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (crm *CollectionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/collections/{handle}", crm.FetchCollection)
}

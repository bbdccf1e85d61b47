package products

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products/{handle}", prm.FetchProductDetail)
	r.Get("/products/{handle}/specs", prm.FetchProductSpecs)
}

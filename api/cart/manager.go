package cart

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger      *gecho.Logger
	cartService *services.CartService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:      logger,
		cartService: cartService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/cart", crm.FetchCart)
	r.Post("/cart/items", crm.AddItem)
	r.Patch("/cart/items/{variantID}", crm.UpdateItem)
	r.Delete("/cart/items/{variantID}", crm.RemoveItem)
	r.Delete("/cart", crm.ClearCart)
}

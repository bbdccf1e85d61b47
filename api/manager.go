package api

import (
	"modularcloset_server/api/cart"
	"modularcloset_server/api/collections"
	"modularcloset_server/api/content"
	"modularcloset_server/api/debug"
	"modularcloset_server/api/health"
	"modularcloset_server/api/pages"
	"modularcloset_server/api/products"
	"modularcloset_server/api/search"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes    *products.ProductRoutesManager
	collectionRoutes *collections.CollectionRoutesManager
	searchRoutes     *search.SearchRoutesManager
	cartRoutes       *cart.CartRoutesManager
	contentRoutes    *content.ContentRoutesManager
	pageRoutes       *pages.PageRoutesManager
	healthRoutes     *health.HealthRoutesManager
	debugRoutes      *debug.DebugRoutesManager
}

func NewRouterManager(
	productRoutes *products.ProductRoutesManager,
	collectionRoutes *collections.CollectionRoutesManager,
	searchRoutes *search.SearchRoutesManager,
	cartRoutes *cart.CartRoutesManager,
	contentRoutes *content.ContentRoutesManager,
	pageRoutes *pages.PageRoutesManager,
	healthRoutes *health.HealthRoutesManager,
	debugRoutes *debug.DebugRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes:    productRoutes,
		collectionRoutes: collectionRoutes,
		searchRoutes:     searchRoutes,
		cartRoutes:       cartRoutes,
		contentRoutes:    contentRoutes,
		pageRoutes:       pageRoutes,
		healthRoutes:     healthRoutes,
		debugRoutes:      debugRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.collectionRoutes.RegisterRoutes(r)
	rm.searchRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.contentRoutes.RegisterRoutes(r)
	rm.pageRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}

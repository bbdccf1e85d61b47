package services

import (
	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService      *CacheService
	CatalogService    *CatalogService
	CartService       *CartService
	SearchService     *SearchService
	SearchDispatcher  *SearchDispatcher
	FAQService        *FAQService
	GalleryService    *GalleryService
	MegamenuService   *MegamenuService
	TrustpilotService *TrustpilotService
	LightboxService   *LightboxService
	ClosetsService    *ClosetsService
	PagesService      *PagesService
	EmailService      *EmailService
	HealthService     *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, client storefront.Doer) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	catalogService := NewCatalogService(client, cacheService, logger)
	cartService := NewCartService(client, cacheService, logger)
	searchService := NewSearchService(client, logger)
	searchDispatcher := NewSearchDispatcher(searchService, logger)
	faqService := NewFAQService(client, cacheService, logger)
	galleryService := NewGalleryService(client, cacheService, logger)
	megamenuService := NewMegamenuService(client, cacheService, logger)
	trustpilotService := NewTrustpilotService(client, cacheService, logger)
	lightboxService := NewLightboxService(client, cacheService, logger)
	closetsService := NewClosetsService(client, cacheService, logger)
	pagesService := NewPagesService(trustpilotService, faqService, closetsService, megamenuService, lightboxService, logger)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, cacheService)

	return &ServiceManager{
		CacheService:      cacheService,
		CatalogService:    catalogService,
		CartService:       cartService,
		SearchService:     searchService,
		SearchDispatcher:  searchDispatcher,
		FAQService:        faqService,
		GalleryService:    galleryService,
		MegamenuService:   megamenuService,
		TrustpilotService: trustpilotService,
		LightboxService:   lightboxService,
		ClosetsService:    closetsService,
		PagesService:      pagesService,
		EmailService:      emailService,
		HealthService:     healthService,
	}
}

package content

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContentRoutesManager struct {
	logger            *gecho.Logger
	faqService        *services.FAQService
	galleryService    *services.GalleryService
	megamenuService   *services.MegamenuService
	trustpilotService *services.TrustpilotService
	lightboxService   *services.LightboxService
	closetsService    *services.ClosetsService
}

func NewContentRoutesManager(
	logger *gecho.Logger,
	faqService *services.FAQService,
	galleryService *services.GalleryService,
	megamenuService *services.MegamenuService,
	trustpilotService *services.TrustpilotService,
	lightboxService *services.LightboxService,
	closetsService *services.ClosetsService,
) *ContentRoutesManager {
	return &ContentRoutesManager{
		logger:            logger,
		faqService:        faqService,
		galleryService:    galleryService,
		megamenuService:   megamenuService,
		trustpilotService: trustpilotService,
		lightboxService:   lightboxService,
		closetsService:    closetsService,
	}
}

func (crm *ContentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/content", func(r chi.Router) {
		r.Get("/faqs", crm.FetchFAQs)
		r.Get("/gallery", crm.FetchGallery)
		r.Get("/megamenu", crm.FetchMegamenu)
		r.Get("/trustpilot", crm.FetchTrustpilot)
		r.Get("/lightbox", crm.FetchLightboxComparison)
		r.Get("/customer-closets", crm.FetchCustomerClosets)
	})
}

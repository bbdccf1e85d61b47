package pages

import (
	"modularcloset_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type PageRoutesManager struct {
	logger       *gecho.Logger
	pagesService *services.PagesService
	emailService *services.EmailService
}

func NewPageRoutesManager(
	logger *gecho.Logger,
	pagesService *services.PagesService,
	emailService *services.EmailService,
) *PageRoutesManager {
	return &PageRoutesManager{
		logger:       logger,
		pagesService: pagesService,
		emailService: emailService,
	}
}

func (prm *PageRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/pages", func(r chi.Router) {
		r.Get("/home", prm.FetchHomePage)
		r.Get("/contractors", prm.FetchContractorsPage)
		r.Post("/contractors/inquiry", prm.SubmitContractorInquiry)
	})
}

package services

import (
	"context"
	"fmt"

	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/errgroup"
)

// PagesService composes multi-source page payloads. Section fetches run
// concurrently; a failed required section fails the whole page so the
// caller can render an error view instead of a partial one, while
// decorative sections (reviews, navigation) degrade to their fallbacks.
type PagesService struct {
	trustpilot *TrustpilotService
	faqs       *FAQService
	closets    *ClosetsService
	megamenu   *MegamenuService
	lightbox   *LightboxService
	logger     *gecho.Logger
}

func NewPagesService(
	trustpilot *TrustpilotService,
	faqs *FAQService,
	closets *ClosetsService,
	megamenu *MegamenuService,
	lightbox *LightboxService,
	logger *gecho.Logger,
) *PagesService {
	return &PagesService{
		trustpilot: trustpilot,
		faqs:       faqs,
		closets:    closets,
		megamenu:   megamenu,
		lightbox:   lightbox,
		logger:     logger,
	}
}

// HomePage bundles the sections rendered on the landing page.
type HomePage struct {
	Trustpilot      *structs.TrustpilotResult `json:"trustpilot,omitempty"`
	FAQs            []structs.FAQItem         `json:"faqs"`
	CustomerClosets []structs.CustomerCloset  `json:"customerClosets"`
}

// ContractorsPage bundles the sections of the contractor landing page.
type ContractorsPage struct {
	Trustpilot *structs.TrustpilotResult `json:"trustpilot,omitempty"`
	FAQs       []structs.FAQItem         `json:"faqs"`
	Megamenu   []structs.MegamenuItem    `json:"megamenu"`
	Comparison []structs.LightboxFeature `json:"comparison"`
}

// Home loads the landing page sections concurrently. FAQs and customer
// closets are required: if either fails the whole page fails, never a
// partially rendered one. The review wall is decorative and degrades
// inside its service.
func (s *PagesService) Home(ctx context.Context) (*HomePage, error) {
	page := &HomePage{
		FAQs:            []structs.FAQItem{},
		CustomerClosets: []structs.CustomerCloset{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.trustpilot.Reviews(gctx)
		if err != nil {
			s.logger.Warn("Home page rendering without reviews", gecho.Field("error", err))
			return nil
		}
		page.Trustpilot = result
		return nil
	})

	g.Go(func() error {
		items, err := s.faqs.FAQs(gctx, "Homepage")
		if err != nil {
			return fmt.Errorf("home page faqs: %w", err)
		}
		page.FAQs = items
		return nil
	})

	g.Go(func() error {
		closets, err := s.closets.CustomerClosets(gctx)
		if err != nil {
			return fmt.Errorf("home page customer closets: %w", err)
		}
		page.CustomerClosets = closets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

// Contractors loads the contractor landing page sections concurrently.
// FAQs and the comparison table are required; the menu and review wall
// degrade inside their services.
func (s *PagesService) Contractors(ctx context.Context) (*ContractorsPage, error) {
	page := &ContractorsPage{
		FAQs:       []structs.FAQItem{},
		Megamenu:   []structs.MegamenuItem{},
		Comparison: []structs.LightboxFeature{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page.Megamenu = s.megamenu.Megamenu(gctx)
		return nil
	})

	g.Go(func() error {
		rows, err := s.lightbox.Comparison(gctx)
		if err != nil {
			return fmt.Errorf("contractors page comparison: %w", err)
		}
		page.Comparison = rows
		return nil
	})

	g.Go(func() error {
		result, err := s.trustpilot.Reviews(gctx)
		if err != nil {
			s.logger.Warn("Contractors page rendering without reviews", gecho.Field("error", err))
			return nil
		}
		page.Trustpilot = result
		return nil
	})

	g.Go(func() error {
		items, err := s.faqs.FAQs(gctx, "Contractors")
		if err != nil {
			return fmt.Errorf("contractors page faqs: %w", err)
		}
		page.FAQs = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

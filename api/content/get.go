package content

import (
	"net/http"

	"modularcloset_server/handling"

	"github.com/MonkyMars/gecho"
)

// FetchFAQs handles GET /content/faqs?category=. Without a category every
// question is returned.
func (crm *ContentRoutesManager) FetchFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := crm.faqService.FAQs(ctx, r.URL.Query().Get("category"))
	if err != nil {
		handling.HandleError(err, "error.content.faqsFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"faqs":  items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}

// FetchGallery handles GET /content/gallery.
func (crm *ContentRoutesManager) FetchGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := crm.galleryService.Gallery(ctx)
	if err != nil {
		handling.HandleError(err, "error.content.galleryFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// FetchMegamenu handles GET /content/megamenu. Menu load failures already
// degrade to an empty list inside the service.
func (crm *ContentRoutesManager) FetchMegamenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := crm.megamenuService.Megamenu(ctx)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items": items,
		}),
		gecho.Send(),
	)
}

// FetchTrustpilot handles GET /content/trustpilot.
func (crm *ContentRoutesManager) FetchTrustpilot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := crm.trustpilotService.Reviews(ctx)
	if err != nil {
		handling.HandleError(err, "error.content.trustpilotFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// FetchLightboxComparison handles GET /content/lightbox.
func (crm *ContentRoutesManager) FetchLightboxComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	features, err := crm.lightboxService.Comparison(ctx)
	if err != nil {
		handling.HandleError(err, "error.content.lightboxFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"features": features,
		}),
		gecho.Send(),
	)
}

// FetchCustomerClosets handles GET /content/customer-closets.
func (crm *ContentRoutesManager) FetchCustomerClosets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	closets, err := crm.closetsService.CustomerClosets(ctx)
	if err != nil {
		handling.HandleError(err, "error.content.closetsFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"closets": closets,
		}),
		gecho.Send(),
	)
}

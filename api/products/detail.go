package products

import (
	"net/http"

	"modularcloset_server/catalog"
	"modularcloset_server/handling"
	"modularcloset_server/lib"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// productDetailPayload is everything the product page needs for first
// render: the product, the resolved variant, the per-option availability
// matrix, the gallery selection and the specification table.
type productDetailPayload struct {
	Product         *structs.Product           `json:"product"`
	DisplayTitle    string                     `json:"displayTitle"`
	MetaDescription string                     `json:"metaDescription"`
	Variant         *structs.Variant           `json:"variant,omitempty"`
	SelectedOpts    catalog.SelectedOptions    `json:"selectedOptions"`
	Availability    map[string]map[string]bool `json:"availability"`
	DisplayImages   []structs.Image            `json:"displayImages"`
	SpecSections    []catalog.SpecSection      `json:"specSections"`
}

// detailPayload assembles the page payload for a fetched product. The
// detail header shows the short title with the line-name prefix
// stripped; the meta description is the plain-text description clipped
// for search snippets.
func detailPayload(product *structs.Product, requestedVariant string) productDetailPayload {
	variant := catalog.InitialVariant(product.Variants, requestedVariant)
	selected := catalog.OptionsOf(variant)

	return productDetailPayload{
		Product:         product,
		DisplayTitle:    lib.ShortProductTitle(product.Title),
		MetaDescription: lib.TruncateText(lib.StripHTML(product.DescriptionHTML), 160),
		Variant:         variant,
		SelectedOpts:    selected,
		Availability:    catalog.AvailabilityMatrix(product.Options, product.Variants, selected),
		DisplayImages:   catalog.SelectDisplayImages(product, variant, selected),
		SpecSections:    catalog.BuildSpecSections(variant),
	}
}

// FetchProductDetail handles GET /products/{handle}. An optional
// ?variant= parameter (raw id or full gid) picks the initial variant;
// otherwise the first available variant wins. Products carrying a
// redirect metafield short-circuit to the redirect target.
func (prm *ProductRoutesManager) FetchProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	handle := chi.URLParam(r, "handle")
	if handle == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.handleRequired"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.ProductByHandle(ctx, handle)
	if err != nil {
		handling.HandleError(err, "error.products.notFound", prm.logger, w)
		return
	}

	if product.Redirect != nil && product.Redirect.Value != "" {
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"redirect": product.Redirect.Value,
			}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(detailPayload(product, r.URL.Query().Get("variant"))),
		gecho.Send(),
	)
}

// FetchProductSpecs handles GET /products/{handle}/specs, returning just
// the specification table for a variant. Used when the page swaps
// variants without a full reload.
func (prm *ProductRoutesManager) FetchProductSpecs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	handle := chi.URLParam(r, "handle")
	product, err := prm.catalogService.ProductByHandle(ctx, handle)
	if err != nil {
		handling.HandleError(err, "error.products.notFound", prm.logger, w)
		return
	}

	variant := catalog.InitialVariant(product.Variants, r.URL.Query().Get("variant"))
	if variant == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.noVariants"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"variantId":    catalog.NormalizeVariantID(variant.ID),
			"specSections": catalog.BuildSpecSections(variant),
		}),
		gecho.Send(),
	)
}

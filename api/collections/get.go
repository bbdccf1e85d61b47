package collections

import (
	"net/http"

	"modularcloset_server/handling"
	"modularcloset_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchCollection handles GET /collections/{handle} with cursor
// pagination (?first=&after=) and the public sort parameter (?sort=).
func (crm *CollectionRoutesManager) FetchCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	handle := chi.URLParam(r, "handle")
	if handle == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.collections.handleRequired"),
			gecho.Send(),
		)
		return
	}

	opts, err := handling.ParseCollectionOptions(r)
	if err != nil {
		crm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	collection, err := crm.catalogService.CollectionWithProducts(ctx, handle, *opts)
	if err != nil {
		handling.HandleError(err, "error.collections.notFound", crm.logger, w)
		return
	}

	// Some collections carry no explicit title upstream; the handle
	// doubles as one for breadcrumbs and the page header.
	displayTitle := collection.Title
	if displayTitle == "" {
		displayTitle = lib.FormatHandle(handle)
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"collection": collection,
			"meta": map[string]any{
				"displayTitle": displayTitle,
				"count":        len(collection.Products),
				"hasNextPage":  collection.HasNextPage,
			},
		}),
		gecho.Send(),
	)
}

package cart

import (
	"net/http"
	"strconv"

	"modularcloset_server/api/middleware"
	"modularcloset_server/handling"
	"modularcloset_server/lib"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// addItemRequest is the body of POST /cart/items.
type addItemRequest struct {
	VariantID string `json:"variantId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1,lte=99"`
}

// updateItemRequest is the body of PATCH /cart/items/{variantID}. Zero
// removes the line.
type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}

func cartPayload(snapshot *structs.CartSnapshot) map[string]any {
	totalPrice := snapshot.TotalPrice()
	return map[string]any{
		"cart":                snapshot,
		"totalItems":          snapshot.TotalItems(),
		"totalPrice":          totalPrice,
		"totalPriceFormatted": lib.FormatPrice(strconv.FormatFloat(totalPrice, 'f', 2, 64)),
	}
}

// FetchCart handles GET /cart, returning the snapshot for the caller's
// cart token. Unknown tokens get an empty cart, never an error.
func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := middleware.GetCartToken(ctx)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.tokenMissing"),
			gecho.Send(),
		)
		return
	}

	refresh := r.URL.Query().Get("refresh") == "true"

	var snapshot *structs.CartSnapshot
	var err error
	if refresh {
		snapshot, err = crm.cartService.Refresh(ctx, token)
	} else {
		snapshot, err = crm.cartService.Get(ctx, token)
	}
	if err != nil {
		handling.HandleError(err, "error.cart.fetchFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cartPayload(snapshot)),
		gecho.Send(),
	)
}

// AddItem handles POST /cart/items. The first add creates the remote
// cart; repeated adds of the same variant merge into one line.
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := middleware.GetCartToken(ctx)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.tokenMissing"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[addItemRequest](r)
	if err != nil {
		handling.HandleError(err, "error.cart.invalidBody", crm.logger, w)
		return
	}

	snapshot, err := crm.cartService.AddItem(ctx, token, body.VariantID, body.Quantity)
	if err != nil {
		handling.HandleError(err, "error.cart.addFailed", crm.logger, w)
		return
	}

	crm.logger.Info("Cart item added",
		gecho.Field("variant_id", body.VariantID),
		gecho.Field("total_items", snapshot.TotalItems()),
	)

	gecho.Success(w,
		gecho.WithData(cartPayload(snapshot)),
		gecho.Send(),
	)
}

// UpdateItem handles PATCH /cart/items/{variantID}.
func (crm *CartRoutesManager) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := middleware.GetCartToken(ctx)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.tokenMissing"),
			gecho.Send(),
		)
		return
	}

	variantID := chi.URLParam(r, "variantID")
	if variantID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.variantIdRequired"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[updateItemRequest](r)
	if err != nil {
		handling.HandleError(err, "error.cart.invalidBody", crm.logger, w)
		return
	}

	snapshot, err := crm.cartService.UpdateQuantity(ctx, token, variantID, body.Quantity)
	if err != nil {
		handling.HandleError(err, "error.cart.updateFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cartPayload(snapshot)),
		gecho.Send(),
	)
}

// RemoveItem handles DELETE /cart/items/{variantID}.
func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := middleware.GetCartToken(ctx)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.tokenMissing"),
			gecho.Send(),
		)
		return
	}

	variantID := chi.URLParam(r, "variantID")
	if variantID == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.variantIdRequired"),
			gecho.Send(),
		)
		return
	}

	snapshot, err := crm.cartService.RemoveItem(ctx, token, variantID)
	if err != nil {
		handling.HandleError(err, "error.cart.removeFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cartPayload(snapshot)),
		gecho.Send(),
	)
}

// ClearCart handles DELETE /cart, emptying every line.
func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := middleware.GetCartToken(ctx)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.cart.tokenMissing"),
			gecho.Send(),
		)
		return
	}

	snapshot, err := crm.cartService.Clear(ctx, token)
	if err != nil {
		handling.HandleError(err, "error.cart.clearFailed", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(cartPayload(snapshot)),
		gecho.Send(),
	)
}

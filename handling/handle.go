package handling

import (
	"errors"
	"net/http"

	"modularcloset_server/lib"
	"modularcloset_server/services"
	"modularcloset_server/storefront"

	"github.com/MonkyMars/gecho"
)

// HandleError translates service errors into the response envelope.
// Missing entities become genuine 404s; user errors from cart mutations
// surface as 400s with the per-field messages; anything upstream-shaped
// renders a retryable 500 without leaking the raw error to the client.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) error {
	var validationErr *lib.ValidationError
	var userErrs *storefront.UserErrorsError

	switch {
	case errors.Is(err, storefront.ErrNotFound):
		return gecho.NotFound(w,
			gecho.WithMessage(msg),
		).Send()

	case errors.As(err, &validationErr):
		return gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(validationErr.Errors),
		).Send()

	case errors.As(err, &userErrs):
		return gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(userErrs.Errors),
		).Send()

	case errors.Is(err, services.ErrNoCart), errors.Is(err, services.ErrLineNotFound):
		return gecho.NotFound(w,
			gecho.WithMessage(msg),
		).Send()
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	return gecho.InternalServerError(w,
		gecho.WithMessage("error.upstream.retry"),
	).Send()
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const CartTokenContextKey contextKey = "cart_token"

// CartTokenHeader identifies the caller's cart across requests. There is
// no authentication: the token is an opaque random key to a cart
// snapshot, issued here on first contact and echoed back so the client
// can persist it.
const CartTokenHeader = "X-Cart-Token"

// CartToken ensures every request carries a cart token. Requests without
// one get a fresh UUID; the token is always echoed in the response so
// clients can store whichever token ended up in use.
func (mw *Middleware) CartToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(CartTokenHeader)
			if token == "" || uuid.Validate(token) != nil {
				token = uuid.NewString()
			}

			w.Header().Set(CartTokenHeader, token)

			ctx := context.WithValue(r.Context(), CartTokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCartToken extracts the cart token placed in context by CartToken.
func GetCartToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(CartTokenContextKey).(string)
	return token, ok && token != ""
}

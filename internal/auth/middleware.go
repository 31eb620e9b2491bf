package auth

import (
	"context"
	"net/http"

	"github.com/edualcrd/invoicemaker/internal/httpx"
)

// TokenHeader is the custom header the SPA sends the session token in.
const TokenHeader = "X-Auth-Token"

type ctxKey string

const userIDCtxKey = ctxKey("userID")

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext extracts the authenticated user id.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDCtxKey).(uint)
	return id, ok
}

// Require wraps a handler so it only runs for requests carrying a valid
// token. Missing and invalid tokens are both 401; the client reacts by
// discarding its stored token and returning to login.
func Require(tm *TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			httpx.JSONError(w, http.StatusUnauthorized, ErrMissingToken.Error(), nil)
			return
		}
		userID, err := tm.Verify(token)
		if err != nil {
			httpx.JSONError(w, http.StatusUnauthorized, ErrInvalidToken.Error(), nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

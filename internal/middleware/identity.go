// Package middleware carries the request-scoped identity plumbing: the
// engine trusts the account id resolved here completely and never
// re-derives it.
package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/Aorux01/Neodyme-sub003/internal/logger"
)

type contextKey string

// accountIDKey stores the resolved account id on the request context.
const accountIDKey contextKey = "account_id"

// accountIDPattern bounds what the engine accepts as an account id. The
// id is used as a storage key, so shape validation is a security check.
var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// AccountIDFromContext returns the account id resolved for this request.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// WithAccountID stamps an account id onto a context. Test helper.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountContext validates the accountId route parameter and publishes it
// on the request context. Requests with a malformed id are rejected before
// any handler runs.
func AccountContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountId")
		if !accountIDPattern.MatchString(accountID) {
			log := logger.FromContext(r.Context())
			log.Warn(LogMsgMalformedAccountID, "path", r.URL.Path)
			http.Error(w, ErrMsgInvalidAccountID, http.StatusBadRequest)
			return
		}

		ctx := WithAccountID(r.Context(), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middlewares

import (
	"net/http"

	"askboard/internal/session"
)

// IdentityResolver resolves the identity carried by a request's session
// cookie. Resolution never fails; anonymous requests yield a zero identity.
type IdentityResolver interface {
	Identity(r *http.Request) session.Identity
}

// IdentityMiddleware resolves the request's identity once and stores it
// in the context, so every handler reads the same explicit value instead
// of re-parsing the cookie.
func IdentityMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := resolver.Identity(r)
			ctx := session.NewContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

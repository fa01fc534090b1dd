package httpx

import "net/http"

// RequireOwner is the resource-ownership check. The caller must be the account
// the route targets: the authenticated id (from AuthnMiddleware) and the
// loaded profile id (from the resource loader) must both be present and equal.
// Anything else is a 403 and the pipeline stops.
func RequireOwner() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authID := UserIDFromCtx(ctx)
			profileID := ProfileIDFromCtx(ctx)

			if authID == "" || profileID == "" || authID != profileID {
				WriteError(w, http.StatusForbidden, "You are not authorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

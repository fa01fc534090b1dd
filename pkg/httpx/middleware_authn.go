package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/starterhq/accounts/pkg/jwtx"
	"github.com/starterhq/accounts/pkg/slogx"
)

// TokenCookieName is the cookie the single-page client stores the identity
// token in after sign-in.
const TokenCookieName = "t"

// AuthnMiddleware is the authentication gate. It resolves the caller's token
// from the Authorization header or the session cookie, verifies it, and
// attaches the verified account id to the request context. On any failure the
// pipeline short-circuits with a 401 naming the underlying reason.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := extractToken(r)
			if !ok {
				writeSigninError(w, "no token provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeSigninError(w, err.Error())
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeSigninError(w, err.Error())
				return
			}

			if claims.Subject == "" {
				writeSigninError(w, "token has no subject")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers an Authorization bearer token and falls back to the
// session cookie set at sign-in.
func extractToken(r *http.Request) (string, bool) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
		if raw != "" {
			return raw, true
		}
	}

	if c, err := r.Cookie(TokenCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	return "", false
}

func writeSigninError(w http.ResponseWriter, reason string) {
	WriteError(w, http.StatusUnauthorized, "You need to sign in! "+reason)
}

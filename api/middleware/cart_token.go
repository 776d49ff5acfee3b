package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bencom-ar/storefront-backend/pkg/logger"
)

const (
	cartTokenHeader = "X-Cart-Token"
	cartTokenCookie = "bencom_cart"

	// cartCookieMaxAge matches the default slot TTL of thirty days.
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

// CartToken resolves the visitor's cart token from the request and mints one
// when absent. The token travels back on both the response header and a
// cookie so SPA and plain-browser clients stay on the same slot.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := resolveCartToken(r)
			if token == "" {
				token = uuid.NewString()
			}

			w.Header().Set(cartTokenHeader, token)
			http.SetCookie(w, &http.Cookie{
				Name:     cartTokenCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   cartCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithCartToken(r.Context(), token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveCartToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(cartTokenHeader)); token != "" {
		return token
	}
	if cookie, err := r.Cookie(cartTokenCookie); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

type sessionResolver interface {
	ParseSession(ctx context.Context, token string) (ctxutil.Session, error)
}

// Auth resolves the caller from the session cookie or a Bearer token. Requests
// without either pass through anonymously; a token that fails validation is
// rejected with 401.
func Auth(sessions sessionResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				token = extractCookieToken(r, cookieName)
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			session, err := sessions.ParseSession(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid session")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSession(r.Context(), session)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func extractCookieToken(r *http.Request, name string) string {
	if name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

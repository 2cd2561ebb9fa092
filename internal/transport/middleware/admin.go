package middleware

import (
	"net/http"

	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests without a session with 401 and non-admin
// sessions with 403. It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.SessionFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

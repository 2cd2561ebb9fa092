package dataloader

import (
	"net/http"

	"github.com/heartmarshall/srs-review-backend/pkg/ctxutil"
)

// Middleware attaches fresh loaders to requests that carry a session. Other
// requests fall through to the repository via Source. Must run after Auth.
func Middleware(items itemRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				r = r.WithContext(WithLoaders(r.Context(), NewLoaders(items)))
			}
			next.ServeHTTP(w, r)
		})
	}
}

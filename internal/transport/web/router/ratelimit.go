package router

import (
	"net/http"

	"github.com/jbeshir/promptly-mcp/internal/domain"
	"golang.org/x/time/rate"
)

// rateLimitMiddleware sheds load beyond the limiter's rate with 429. A nil
// limiter disables it.
func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger := domain.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "rate limit exceeded", "path", r.URL.Path)

				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

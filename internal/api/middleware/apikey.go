package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/benefit-cards/internal/api/shared"
)

// APIKeyHeader is the header companies authenticate with.
const APIKeyHeader = "x-api-key"

// RequireAPIKey rejects requests without an x-api-key header and stores the
// key in the request context. The key itself is checked by the card service.
func RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := strings.TrimSpace(r.Header.Get(APIKeyHeader))
		if apiKey == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "API key is required")
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithAPIKey(r.Context(), apiKey)))
	})
}
